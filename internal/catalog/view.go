package catalog

import (
	"slices"
	"sync"

	"github.com/sparkbazaar/storefront-backend/internal/entity"
)

// DefaultPageSize is the number of products shown per "load more" step.
const DefaultPageSize = 12

// View is a browsing session over the catalog: the current search text,
// the selected categories and a visible-count cursor. Changing either
// criterion recomputes the filtered list and resets the cursor back to
// one page.
type View struct {
	mu         sync.Mutex
	store      *Store
	pageSize   int
	search     string
	categories []string
	filtered   []entity.Product
	visible    int
}

// NewView creates a view over the whole catalog with the cursor at one
// page.
func NewView(store *Store, pageSize int) *View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	v := &View{store: store, pageSize: pageSize}
	v.filtered = store.Products()
	v.visible = pageSize
	return v
}

// SetCriteria applies a search text and category selection. If either
// differs from the current criteria the filtered list is recomputed and
// the cursor resets to one page; identical criteria leave the cursor
// untouched so "load more" survives page refreshes.
func (v *View) SetCriteria(search string, categories []string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if search == v.search && slices.Equal(categories, v.categories) {
		return
	}
	v.search = search
	v.categories = slices.Clone(categories)
	v.filtered = Filter(v.store.Products(), search, categories)
	v.visible = v.pageSize
}

// LoadMore advances the cursor by one page, never past the filtered
// result length.
func (v *View) LoadMore() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible = min(v.visible+v.pageSize, len(v.filtered))
}

// Page returns the currently visible window, the total number of
// filtered results and whether more can be loaded.
func (v *View) Page() (visible []entity.Product, total int, hasMore bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	total = len(v.filtered)
	n := min(v.visible, total)
	return v.filtered[:n], total, n < total
}
