package memory

import (
	"sync"

	"quizpad/internal/app"
)

// SurfaceStore is an in-memory implementation of app.SurfaceRepository.
type SurfaceStore struct {
	mu       sync.RWMutex
	surfaces map[string]*app.Workspace
}

func NewSurfaceStore() *SurfaceStore {
	return &SurfaceStore{
		surfaces: make(map[string]*app.Workspace),
	}
}

func (s *SurfaceStore) Register(id string, workspace *app.Workspace) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surfaces[id] = workspace
}

func (s *SurfaceStore) Get(id string) (*app.Workspace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	workspace, ok := s.surfaces[id]
	return workspace, ok
}

func (s *SurfaceStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.surfaces, id)
}

func (s *SurfaceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.surfaces)
}
