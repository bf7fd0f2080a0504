package store

import (
	"sort"
	"sync"
	"time"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/view"
)

// ViewStore keeps a thread-safe registry of mounted views that have not been
// rendered in a settled state yet, keyed by view id.
type ViewStore struct {
	mu    sync.RWMutex
	views map[string]*view.View
}

// NewViewStore constructs an empty ViewStore.
func NewViewStore() *ViewStore {
	return &ViewStore{
		views: make(map[string]*view.View),
	}
}

// Put registers v under its id. A nil view is ignored.
func (s *ViewStore) Put(v *view.View) {
	if v == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[v.ID()] = v
}

// Get retrieves a view by id.
func (s *ViewStore) Get(id string) (*view.View, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.views[id]
	return v, ok
}

// Delete removes and destroys the view with id. It reports whether one was present.
func (s *ViewStore) Delete(id string) bool {
	s.mu.Lock()
	v, ok := s.views[id]
	delete(s.views, id)
	s.mu.Unlock()

	if ok {
		v.Destroy()
	}
	return ok
}

// Expired lists ids of views created before the cutoff, oldest first.
func (s *ViewStore) Expired(before time.Time) []string {
	s.mu.RLock()
	type entry struct {
		id      string
		created time.Time
	}
	var found []entry
	for id, v := range s.views {
		if v.CreatedAt().Before(before) {
			found = append(found, entry{id: id, created: v.CreatedAt()})
		}
	}
	s.mu.RUnlock()

	sort.Slice(found, func(i, j int) bool { return found[i].created.Before(found[j].created) })
	ids := make([]string, 0, len(found))
	for _, e := range found {
		ids = append(ids, e.id)
	}
	return ids
}

// Len returns the number of registered views.
func (s *ViewStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.views)
}

// DeleteAll destroys every registered view and empties the registry.
func (s *ViewStore) DeleteAll() int {
	s.mu.Lock()
	views := s.views
	s.views = make(map[string]*view.View)
	s.mu.Unlock()

	for _, v := range views {
		v.Destroy()
	}
	return len(views)
}
