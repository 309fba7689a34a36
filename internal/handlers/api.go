package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Arbaznazir/shehjar-sub001/internal/models"
)

// OrderUpdater is the slice of the store the API handler needs.
type OrderUpdater interface {
	UpdateOrder(orderRef string, upd models.OrderUpdate) error
}

// APIHandler serves the JSON endpoints under /api.
type APIHandler struct {
	Orders OrderUpdater
}

// UpdateOrder handles PUT /api/orders/{orderId}. Only fields present in the
// body reach the store; a body with none of them (or one that fails to
// decode) still issues a no-op update rather than being rejected. Success is
// 204 with no body, a store failure is 500 with the store's message.
func (h *APIHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")

	var upd models.OrderUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		slog.Debug("Order update body did not decode, proceeding as empty update", "order_id", orderID, "error", err)
		upd = models.OrderUpdate{}
	}

	if err := h.Orders.UpdateOrder(orderID, upd); err != nil {
		slog.Error("Failed to update order", "order_id", orderID, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
