package handlers

import (
	"net/http"

	"github.com/Arbaznazir/shehjar-sub001/internal/catalog"
	"github.com/Arbaznazir/shehjar-sub001/internal/models"
)

// PublicHandler serves the visitor-facing pages. They render straight from
// the static catalog; the admin editing session never feeds them.
type PublicHandler struct {
	Templates *TemplateCache
}

// Index serves the home page, and the 404 page for any path the mux's "/"
// pattern swallowed.
func (h *PublicHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}

	tmpl := h.Templates.Get("home.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	tmpl.Execute(w, nil)
}

// Menu renders the full menu grouped by category.
func (h *PublicHandler) Menu(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("menu.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	grouped := make(map[string][]models.MenuItem)
	for _, it := range catalog.Flatten() {
		grouped[it.Category] = append(grouped[it.Category], it)
	}
	data := map[string]interface{}{
		"Categories": catalog.Categories(),
		"Items":      grouped,
	}
	tmpl.Execute(w, data)
}

// Gallery lists every dish photo in the catalog, skipping placeholders.
func (h *PublicHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("gallery.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	var photos []models.MenuItem
	for _, it := range catalog.Flatten() {
		if it.Image != "" && it.Image != catalog.PlaceholderImage {
			photos = append(photos, it)
		}
	}
	tmpl.Execute(w, map[string]interface{}{"Photos": photos})
}

func (h *PublicHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("404.html")
	if tmpl == nil {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNotFound)
	tmpl.Execute(w, nil)
}
