package redis

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"quizpad/internal/app"
)

// SurfaceStore is a Redis-aware implementation of app.SurfaceRepository.
// Workspaces stay in a local map; Redis only carries a liveness marker per surface
// so operators can count connected surfaces across instances. Quiz state is never written.
type SurfaceStore struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	surfaces map[string]*app.Workspace
}

func NewSurfaceStore(client *redis.Client, ttl time.Duration) *SurfaceStore {
	return &SurfaceStore{
		client:   client,
		ttl:      ttl,
		surfaces: make(map[string]*app.Workspace),
	}
}

func (s *SurfaceStore) Register(id string, workspace *app.Workspace) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surfaces[id] = workspace
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(id), "1", s.ttl).Err()
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
	if _, ok := s.surfaces[id]; !ok {
		return
	}
	delete(s.surfaces, id)
	_ = s.client.Del(context.Background(), s.key(id)).Err()
}

func (s *SurfaceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.surfaces)
}

func (s *SurfaceStore) key(id string) string {
	return "quizpad:surface:" + id
}
