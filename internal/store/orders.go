package store

import (
	"strings"

	"github.com/Arbaznazir/shehjar-sub001/internal/models"
)

func (s *Store) CreateOrder(order *models.Order) error {
	query := `
		INSERT INTO orders (order_ref, customer_name, is_paid, status, created_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	`
	_, err := s.DB.Exec(query, order.OrderRef, order.CustomerName, order.IsPaid, order.Status)
	return err
}

// UpdateOrder applies a sparse update to the row whose order_ref matches.
// Only the fields present in upd appear in the SET clause, so absent fields
// never overwrite stored values. An update with no fields is still issued as
// a self-assignment so the write path is exercised either way.
func (s *Store) UpdateOrder(orderRef string, upd models.OrderUpdate) error {
	var set []string
	var args []interface{}
	if upd.CustomerName != nil {
		set = append(set, "customer_name = ?")
		args = append(args, *upd.CustomerName)
	}
	if upd.IsPaid != nil {
		set = append(set, "is_paid = ?")
		args = append(args, *upd.IsPaid)
	}
	if upd.Status != nil {
		set = append(set, "status = ?")
		args = append(args, *upd.Status)
	}
	if len(set) == 0 {
		set = append(set, "order_ref = order_ref")
	}

	query := `UPDATE orders SET ` + strings.Join(set, ", ") + ` WHERE order_ref = ?`
	args = append(args, orderRef)
	_, err := s.DB.Exec(query, args...)
	return err
}

func (s *Store) GetOrderByRef(orderRef string) (*models.Order, error) {
	query := `SELECT id, order_ref, customer_name, is_paid, COALESCE(status, 'pending') as status, created_at FROM orders WHERE order_ref = ?`
	row := s.DB.QueryRow(query, orderRef)

	var o models.Order
	if err := row.Scan(&o.ID, &o.OrderRef, &o.CustomerName, &o.IsPaid, &o.Status, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) GetAllOrders(limit, offset int) ([]models.Order, error) {
	query := `
		SELECT id, order_ref, customer_name, is_paid, COALESCE(status, 'pending') as status, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	rows, err := s.DB.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderRef, &o.CustomerName, &o.IsPaid, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (s *Store) GetTotalOrdersCount() (int, error) {
	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM orders").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
