// Package catalog holds the static menu used to seed the admin editing
// session and to render the public menu page. It is read-only reference
// data; nothing in the application writes back to it.
package catalog

import (
	"github.com/Arbaznazir/shehjar-sub001/internal/models"
)

// PlaceholderImage is used whenever a menu item has no photo of its own.
const PlaceholderImage = "/static/img/placeholder.jpg"

func boolPtr(b bool) *bool { return &b }

// Items maps category name to the dishes in that category, in display order.
var Items = map[string][]models.MenuItem{
	"Starters": {
		{ID: 1, Name: "Nadru Monje", Description: "Crisp-fried lotus stem fritters with walnut chutney", Price: 220, Category: "Starters", Image: "/static/img/nadru-monje.jpg", IsVeg: boolPtr(true)},
		{ID: 2, Name: "Tabak Maaz", Description: "Twice-cooked lamb ribs, saffron and fennel crust", Price: 380, Category: "Starters", Image: "/static/img/tabak-maaz.jpg", IsVeg: boolPtr(false)},
		{ID: 3, Name: "Haak Pakora", Description: "Collard green fritters, seasonal", Price: 180, Category: "Starters", IsVeg: boolPtr(true)},
	},
	"Mains": {
		{ID: 4, Name: "Rogan Josh", Description: "Slow-braised lamb in Kashmiri chilli and ratan jot", Price: 460, Category: "Mains", Image: "/static/img/rogan-josh.jpg", IsVeg: boolPtr(false)},
		{ID: 5, Name: "Dum Aloo", Description: "Baby potatoes simmered in fennel-yoghurt gravy", Price: 320, Category: "Mains", Image: "/static/img/dum-aloo.jpg", IsVeg: boolPtr(true)},
		{ID: 6, Name: "Gushtaba", Description: "Pounded lamb meatballs in a cardamom yoghurt curry", Price: 520, Category: "Mains", Image: "/static/img/gushtaba.jpg", IsVeg: boolPtr(false)},
		{ID: 7, Name: "Haak Saag", Description: "Kashmiri collard greens tempered with dried chillies", Price: 260, Category: "Mains", IsVeg: boolPtr(true)},
	},
	"Breads": {
		{ID: 8, Name: "Sheermal", Description: "Saffron-glazed sweet flatbread", Price: 90, Category: "Breads", IsVeg: boolPtr(true)},
		{ID: 9, Name: "Kashmiri Kulcha", Description: "Bakery-style crisp kulcha", Price: 60, Category: "Breads", IsVeg: boolPtr(true)},
	},
	"Desserts": {
		{ID: 10, Name: "Phirni", Description: "Ground rice pudding set in clay bowls", Price: 160, Category: "Desserts", Image: "/static/img/phirni.jpg", IsVeg: boolPtr(true)},
		{ID: 11, Name: "Shufta", Description: "Dry fruits and paneer tossed in spiced sugar syrup", Price: 210, Category: "Desserts", IsVeg: boolPtr(true)},
	},
	"Beverages": {
		{ID: 12, Name: "Kahwa", Description: "Green tea with saffron, almonds and cinnamon", Price: 120, Category: "Beverages", Image: "/static/img/kahwa.jpg", IsVeg: boolPtr(true)},
		{ID: 13, Name: "Noon Chai", Description: "Pink salted tea, served in the afternoon", Price: 100, Category: "Beverages", IsVeg: boolPtr(true)},
	},
}

// categoryOrder fixes the display order of categories on the public menu and
// in the admin filter bar. Flatten and Categories both follow it so the
// seeded collection has a stable order.
var categoryOrder = []string{"Starters", "Mains", "Breads", "Desserts", "Beverages"}

// Categories returns the known category names in display order.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Flatten returns every catalog item as one slice, category by category in
// display order. Each call returns a fresh copy so callers may mutate the
// result freely.
func Flatten() []models.MenuItem {
	var items []models.MenuItem
	for _, cat := range categoryOrder {
		items = append(items, Items[cat]...)
	}
	for i := range items {
		if items[i].Image == "" {
			items[i].Image = PlaceholderImage
		}
	}
	return items
}
