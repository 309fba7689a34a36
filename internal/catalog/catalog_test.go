package catalog

import (
	"testing"
)

func TestFlattenOrderAndPlaceholders(t *testing.T) {
	items := Flatten()
	if len(items) == 0 {
		t.Fatal("catalog is empty")
	}

	seen := map[int64]bool{}
	for _, it := range items {
		if seen[it.ID] {
			t.Errorf("duplicate catalog id %d", it.ID)
		}
		seen[it.ID] = true
		if it.Image == "" {
			t.Errorf("%s: image should fall back to the placeholder", it.Name)
		}
		if it.Category == "" {
			t.Errorf("%s: category is required", it.Name)
		}
	}

	// Flatten follows the display order of categories
	cats := Categories()
	idx := 0
	for _, cat := range cats {
		for range Items[cat] {
			if items[idx].Category != cat {
				t.Fatalf("item %d is %q, want category %q", idx, items[idx].Category, cat)
			}
			idx++
		}
	}
}

func TestFlattenReturnsCopies(t *testing.T) {
	a := Flatten()
	a[0].Name = "mutated"
	b := Flatten()
	if b[0].Name == "mutated" {
		t.Error("Flatten must return a fresh copy each call")
	}
}
