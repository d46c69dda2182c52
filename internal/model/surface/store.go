package surface

// Store exposes surface retrieval for HTTP handlers and the conversation
// service.
type Store interface {
	List() []Surface
	FindByID(id string) (Surface, bool)
}

// MemoryStore implements Store with an in-memory slice; the surface set is
// static for the process lifetime.
type MemoryStore struct {
	items []Surface
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied surfaces.
func NewMemoryStore(items []Surface) *MemoryStore {
	return &MemoryStore{items: append([]Surface(nil), items...)}
}

// List returns the configured surface list.
func (s *MemoryStore) List() []Surface {
	return append([]Surface(nil), s.items...)
}

// FindByID looks up a surface by identifier.
func (s *MemoryStore) FindByID(id string) (Surface, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Surface{}, false
}
