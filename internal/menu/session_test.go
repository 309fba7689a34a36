package menu

import (
	"reflect"
	"testing"

	"github.com/Arbaznazir/shehjar-sub001/internal/models"
)

func seedItems() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, Name: "Nadru Monje", Price: 220, Category: "Starters"},
		{ID: 2, Name: "Rogan Josh", Price: 460, Category: "Mains"},
		{ID: 3, Name: "Kahwa", Price: 120, Category: "Beverages"},
	}
}

func TestCreateAssignsFreshIDs(t *testing.T) {
	s := NewSession(seedItems())

	seen := map[int64]bool{1: true, 2: true, 3: true}
	for i := 0; i < 5; i++ {
		s.BeginCreate()
		d := s.Draft()
		if seen[d.ID] {
			t.Fatalf("create %d reused id %d", i, d.ID)
		}
		seen[d.ID] = true
		s.SetName("Soup")
		s.Submit()
	}
	if got := len(s.Items()); got != 8 {
		t.Errorf("expected 8 items after 5 creates, got %d", got)
	}
}

func TestCreateDraftDefaults(t *testing.T) {
	s := NewSession(seedItems())
	s.BeginCreate()
	d := s.Draft()
	if d.Category != "Starters" {
		t.Errorf("draft category = %q, want first real category %q", d.Category, "Starters")
	}
	if d.Image == "" {
		t.Error("draft should start with the placeholder image")
	}
}

func TestSubmitUpdateReplacesOnlyMatchingItem(t *testing.T) {
	s := NewSession(seedItems())

	if !s.BeginEdit(2) {
		t.Fatal("BeginEdit(2) should find the item")
	}
	s.SetName("Rogan Josh (special)")
	s.SetPrice("499")
	s.Submit()

	items := s.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	// Relative order preserved, neighbours untouched
	if items[0].ID != 1 || items[0].Name != "Nadru Monje" {
		t.Errorf("item 1 changed: %+v", items[0])
	}
	if items[1].ID != 2 || items[1].Name != "Rogan Josh (special)" || items[1].Price != 499 {
		t.Errorf("item 2 not replaced: %+v", items[1])
	}
	if items[2].ID != 3 || items[2].Name != "Kahwa" {
		t.Errorf("item 3 changed: %+v", items[2])
	}
}

func TestBeginEditUnknownID(t *testing.T) {
	s := NewSession(seedItems())
	if s.BeginEdit(99) {
		t.Error("BeginEdit(99) should report false")
	}
	if editing, _ := s.Editing(); editing {
		t.Error("session should stay idle after a failed BeginEdit")
	}
}

func TestCancelDiscardsDraft(t *testing.T) {
	s := NewSession(seedItems())
	s.BeginEdit(1)
	s.SetName("Changed")
	s.Cancel()

	items := s.Items()
	if items[0].Name != "Nadru Monje" {
		t.Errorf("cancel should not apply the draft, got %q", items[0].Name)
	}
	if editing, _ := s.Editing(); editing {
		t.Error("session should be idle after cancel")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	tests := []struct {
		name      string
		confirm   bool
		wantCount int
		wantGone  bool
	}{
		{"declined", false, 3, false},
		{"confirmed", true, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(seedItems())
			removed := s.Delete(2, func() bool { return tt.confirm })
			if removed != tt.wantGone {
				t.Errorf("Delete returned %v, want %v", removed, tt.wantGone)
			}
			items := s.Items()
			if len(items) != tt.wantCount {
				t.Errorf("collection has %d items, want %d", len(items), tt.wantCount)
			}
			for _, it := range items {
				if tt.wantGone && it.ID == 2 {
					t.Error("item 2 should have been removed")
				}
			}
		})
	}
}

func TestFilteringDoesNotMutateCollection(t *testing.T) {
	s := NewSession(seedItems())
	before := s.Items()

	s.SelectCategory("Mains")
	visible := s.Visible()
	if len(visible) != 1 || visible[0].ID != 2 {
		t.Errorf("Mains filter returned %+v", visible)
	}

	s.SelectCategory(AllCategory)
	after := s.Visible()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("filter round-trip changed the collection:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestSetPriceParseFailureDefaultsToZero(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"5.5", 5.5},
		{"220", 220},
		{"abc", 0},
		{"", 0},
		{"12,50", 0},
	}
	s := NewSession(seedItems())
	for _, tt := range tests {
		s.BeginCreate()
		s.SetPrice(tt.raw)
		if got := s.Draft().Price; got != tt.want {
			t.Errorf("SetPrice(%q) draft price = %v, want %v", tt.raw, got, tt.want)
		}
		s.Cancel()
	}
}

func TestCategoriesDerivedWithAllFirst(t *testing.T) {
	s := NewSession(seedItems())
	got := s.Categories()
	want := []string{"All", "Starters", "Mains", "Beverages"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}

	// A new category appears after a create, "All" stays first
	s.BeginCreate()
	s.SetName("Phirni")
	s.SetCategory("Desserts")
	s.Submit()
	got = s.Categories()
	if got[0] != "All" || got[len(got)-1] != "Desserts" {
		t.Errorf("Categories() after create = %v", got)
	}
}

func TestSettersIgnoredWhenIdle(t *testing.T) {
	s := NewSession(seedItems())
	s.SetName("ghost")
	s.SetPrice("123")
	if d := s.Draft(); d.Name != "" || d.Price != 0 {
		t.Errorf("idle setters should not build a draft, got %+v", d)
	}
}
