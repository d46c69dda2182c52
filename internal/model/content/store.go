package content

// Store exposes read-only portfolio content for HTTP handlers.
type Store interface {
	Projects() []Project
	Experiences() []Experience
	Gallery() []GalleryItem
	Skills() SkillSet
}

// MemoryStore serves a static catalog.
type MemoryStore struct {
	catalog Catalog
}

// NewMemoryStore returns a MemoryStore over the supplied catalog.
func NewMemoryStore(catalog Catalog) *MemoryStore {
	return &MemoryStore{catalog: catalog}
}

func (s *MemoryStore) Projects() []Project {
	return append([]Project(nil), s.catalog.Projects...)
}

func (s *MemoryStore) Experiences() []Experience {
	return append([]Experience(nil), s.catalog.Experiences...)
}

func (s *MemoryStore) Gallery() []GalleryItem {
	return append([]GalleryItem(nil), s.catalog.Gallery...)
}

func (s *MemoryStore) Skills() SkillSet {
	return s.catalog.Skills
}
