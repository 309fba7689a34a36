// Package menu implements the admin menu manager's editing session: an
// in-memory collection of menu items seeded from the static catalog, with a
// small modal state machine for create/update/delete. Nothing here persists;
// the collection lives exactly as long as the session.
package menu

import (
	"strconv"
	"sync"
	"time"

	"github.com/Arbaznazir/shehjar-sub001/internal/catalog"
	"github.com/Arbaznazir/shehjar-sub001/internal/models"
)

// Mode tags what the open editor is doing, so Submit's terminal transition
// (append vs. replace-by-id) is explicit.
type Mode int

const (
	ModeCreate Mode = iota + 1
	ModeUpdate
)

// AllCategory is the filter-only pseudo-category. It is never stored on an
// item.
const AllCategory = "All"

// Session owns one in-memory menu collection and the editor state on top of
// it. HTTP handlers run concurrently, so mutations are serialized with a
// mutex even though each session belongs to a single admin.
type Session struct {
	mu sync.Mutex

	items            []models.MenuItem
	selectedCategory string

	editing    bool
	mode       Mode
	draft      models.MenuItem
	originalID int64 // valid when mode == ModeUpdate

	lastID int64
}

// NewSession seeds a session from the given items. Pass catalog.Flatten()
// for the real catalog.
func NewSession(seed []models.MenuItem) *Session {
	items := make([]models.MenuItem, len(seed))
	copy(items, seed)
	s := &Session{
		items:            items,
		selectedCategory: AllCategory,
	}
	for _, it := range items {
		if it.ID > s.lastID {
			s.lastID = it.ID
		}
	}
	return s
}

// Items returns a copy of the full collection, ignoring the active filter.
func (s *Session) Items() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

// Categories derives the filter bar: "All" first, then each distinct
// category in order of first appearance in the collection.
func (s *Session) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	cats := []string{AllCategory}
	seen := map[string]bool{}
	for _, it := range s.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			cats = append(cats, it.Category)
		}
	}
	return cats
}

// SelectCategory changes which subset Visible returns. It never touches the
// collection itself.
func (s *Session) SelectCategory(cat string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = cat
}

func (s *Session) SelectedCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCategory
}

// Visible returns the items under the active filter, rederived from the full
// collection on every call so switching filters cannot drop items.
func (s *Session) Visible() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedCategory == "" || s.selectedCategory == AllCategory {
		out := make([]models.MenuItem, len(s.items))
		copy(out, s.items)
		return out
	}
	var out []models.MenuItem
	for _, it := range s.items {
		if it.Category == s.selectedCategory {
			out = append(out, it)
		}
	}
	return out
}

// BeginCreate opens the editor with a fresh draft: new id, placeholder
// image, category defaulted to the first real category in the filter bar.
func (s *Session) BeginCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = true
	s.mode = ModeCreate
	s.originalID = 0
	s.draft = models.MenuItem{
		ID:       s.nextIDLocked(),
		Image:    catalog.PlaceholderImage,
		Category: s.firstCategoryLocked(),
	}
}

// BeginEdit opens the editor with a copy of item id's current fields. It
// reports false and stays Idle when no such item exists.
func (s *Session) BeginEdit(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			s.editing = true
			s.mode = ModeUpdate
			s.originalID = id
			s.draft = it
			return true
		}
	}
	return false
}

// Editing reports whether the editor is open and, if so, in which mode.
func (s *Session) Editing() (bool, Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing, s.mode
}

// Draft returns the current working record. Zero value when Idle.
func (s *Session) Draft() models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *Session) SetName(v string)        { s.setDraft(func(d *models.MenuItem) { d.Name = v }) }
func (s *Session) SetDescription(v string) { s.setDraft(func(d *models.MenuItem) { d.Description = v }) }
func (s *Session) SetCategory(v string)    { s.setDraft(func(d *models.MenuItem) { d.Category = v }) }
func (s *Session) SetImage(v string)       { s.setDraft(func(d *models.MenuItem) { d.Image = v }) }
func (s *Session) SetVeg(v *bool)          { s.setDraft(func(d *models.MenuItem) { d.IsVeg = v }) }

// SetPrice parses the raw form value as a float. A value that does not parse
// becomes 0 rather than an error; the edit is never rejected.
func (s *Session) SetPrice(raw string) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		price = 0
	}
	s.setDraft(func(d *models.MenuItem) { d.Price = price })
}

func (s *Session) setDraft(fn func(*models.MenuItem)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return
	}
	fn(&s.draft)
}

// Submit closes the editor and applies the draft: append for Create,
// replace-in-place by id for Update. No-op when Idle.
func (s *Session) Submit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return
	}
	switch s.mode {
	case ModeCreate:
		s.items = append(s.items, s.draft)
	case ModeUpdate:
		for i := range s.items {
			if s.items[i].ID == s.draft.ID {
				s.items[i] = s.draft
				break
			}
		}
	}
	s.reset()
}

// Cancel discards the draft and returns to Idle.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// Delete removes item id if confirm returns true, mirroring the synchronous
// yes/no prompt in the admin UI. It reports whether an item was removed.
func (s *Session) Delete(id int64, confirm func() bool) bool {
	if confirm != nil && !confirm() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Session) reset() {
	s.editing = false
	s.mode = 0
	s.originalID = 0
	s.draft = models.MenuItem{}
}

// nextIDLocked hands out timestamp ids, bumped past the last one handed out
// so back-to-back creates still get distinct ids.
func (s *Session) nextIDLocked() int64 {
	id := time.Now().UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Session) firstCategoryLocked() string {
	for _, it := range s.items {
		if it.Category != "" {
			return it.Category
		}
	}
	return ""
}
