package handlers

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/nfnt/resize"
)

// ListMenu renders the menu manager: the session's items under the active
// category filter, with the derived filter bar. A ?category= query switches
// the filter before rendering.
func (h *AdminHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	if cat := r.URL.Query().Get("category"); cat != "" {
		h.Menu.SelectCategory(cat)
	}

	tmpl := h.Templates.Get("admin_menu.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Items":            h.Menu.Visible(),
		"Categories":       h.Menu.Categories(),
		"SelectedCategory": h.Menu.SelectedCategory(),
		"CsrfField":        csrf.TemplateField(r),
		"Flashes":          GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// NewItemForm opens the editor in create mode and shows the fresh draft.
func (h *AdminHandler) NewItemForm(w http.ResponseWriter, r *http.Request) {
	h.Menu.BeginCreate()
	h.renderItemForm(w, r, "Add Menu Item")
}

// EditItemForm opens the editor with a copy of the chosen item.
func (h *AdminHandler) EditItemForm(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if !h.Menu.BeginEdit(id) {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	h.renderItemForm(w, r, "Edit Menu Item")
}

func (h *AdminHandler) renderItemForm(w http.ResponseWriter, r *http.Request, title string) {
	tmpl := h.Templates.Get("admin_menu_form.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Title":      title,
		"Item":       h.Menu.Draft(),
		"Categories": h.Menu.Categories(),
		"CsrfField":  csrf.TemplateField(r),
		"Flashes":    GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// SubmitItem closes the editor: form fields go onto the draft, an optional
// photo is resized and saved, then the draft is committed (append for
// create, replace-by-id for edit).
func (h *AdminHandler) SubmitItem(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	if editing, _ := h.Menu.Editing(); !editing {
		http.Redirect(w, r, "/admin/menu", http.StatusSeeOther)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10MB
		session.AddFlash(FlashMessage{Type: "error", Message: "File too large. Max 10MB."})
		http.Redirect(w, r, "/admin/menu", http.StatusSeeOther)
		return
	}

	h.Menu.SetName(r.FormValue("name"))
	h.Menu.SetDescription(r.FormValue("description"))
	h.Menu.SetPrice(r.FormValue("price"))
	if cat := r.FormValue("category"); cat != "" {
		h.Menu.SetCategory(cat)
	}
	switch r.FormValue("is_veg") {
	case "yes":
		veg := true
		h.Menu.SetVeg(&veg)
	case "no":
		veg := false
		h.Menu.SetVeg(&veg)
	}

	if imageURL, err := h.saveUploadedImage(r); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: err.Error()})
		http.Redirect(w, r, "/admin/menu", http.StatusSeeOther)
		return
	} else if imageURL != "" {
		h.Menu.SetImage(imageURL)
	}

	h.Menu.Submit()
	session.AddFlash(FlashMessage{Type: "success", Message: "Menu item saved!"})
	http.Redirect(w, r, "/admin/menu", http.StatusSeeOther)
}

// CancelEdit discards the draft.
func (h *AdminHandler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	h.Menu.Cancel()
	http.Redirect(w, r, "/admin/menu", http.StatusSeeOther)
}

// DeleteItemConfirm shows the yes/no prompt before anything is removed.
func (h *AdminHandler) DeleteItemConfirm(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	tmpl := h.Templates.Get("admin_menu_delete.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"ID":        id,
		"CsrfField": csrf.TemplateField(r),
	}
	tmpl.Execute(w, data)
}

// DeleteItem removes the item only when the prompt was answered yes.
func (h *AdminHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	idStr := r.FormValue("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid ID."})
		http.Redirect(w, r, "/admin/menu", http.StatusSeeOther)
		return
	}

	removed := h.Menu.Delete(id, func() bool {
		return r.FormValue("confirm") == "yes"
	})
	if removed {
		session.AddFlash(FlashMessage{Type: "success", Message: "Menu item deleted."})
	}
	http.Redirect(w, r, "/admin/menu", http.StatusSeeOther)
}

// saveUploadedImage handles the optional photo field: decode, shrink to
// 800px wide, write under static/uploads with a UUID name. Returns "" when
// no file was attached.
func (h *AdminHandler) saveUploadedImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", nil // no upload
	}
	defer file.Close()

	var img image.Image
	ext := filepath.Ext(header.Filename)
	switch ext {
	case ".png":
		img, err = png.Decode(file)
	case ".jpeg", ".jpg":
		img, err = jpeg.Decode(file)
	default:
		return "", fmt.Errorf("unsupported image format: only PNG, JPG, JPEG are allowed")
	}
	if err != nil {
		return "", fmt.Errorf("failed to decode image")
	}

	// Resize image (max width 800px, preserve aspect ratio)
	newImage := resize.Resize(800, 0, img, resize.Lanczos3)

	filename := fmt.Sprintf("%s.jpg", uuid.New().String())
	uploadPath := filepath.Join("static/uploads", filename)

	out, err := os.Create(uploadPath)
	if err != nil {
		return "", fmt.Errorf("error saving image file")
	}
	defer out.Close()

	if err := jpeg.Encode(out, newImage, &jpeg.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("error encoding image")
	}

	return "/static/uploads/" + filename, nil
}
