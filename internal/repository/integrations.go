package repository

import (
	"sync"
	"time"
)

// IntegratedProject is a project pushed by an external management system.
type IntegratedProject struct {
	ProjectID   string
	Data        map[string]interface{}
	LastUpdated time.Time
}

// Integrations remembers integrated projects for the life of the process.
type Integrations struct {
	mu       sync.RWMutex
	projects map[string]IntegratedProject
	now      func() time.Time
}

func NewIntegrations() *Integrations {
	return &Integrations{
		projects: make(map[string]IntegratedProject),
		now:      time.Now,
	}
}

// Save records or replaces a project and returns the stored copy.
func (s *Integrations) Save(projectID string, data map[string]interface{}) IntegratedProject {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := IntegratedProject{
		ProjectID:   projectID,
		Data:        data,
		LastUpdated: s.now().UTC(),
	}
	s.projects[projectID] = p
	return p
}

func (s *Integrations) Get(projectID string) (IntegratedProject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[projectID]
	return p, ok
}

// Sync touches every stored project and returns how many there are.
func (s *Integrations) Sync() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now().UTC()
	for id, p := range s.projects {
		p.LastUpdated = now
		s.projects[id] = p
	}
	return len(s.projects)
}
