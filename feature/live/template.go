package live

import "sync"

// DefaultTemplate is shown until a template is pushed.
const DefaultTemplate = "<p>Default live page content</p>"

// TemplateStore holds the HTML fragment currently shown to viewers.
type TemplateStore struct {
	mu      sync.RWMutex
	content string
}

// NewTemplateStore creates a store holding DefaultTemplate.
func NewTemplateStore() *TemplateStore {
	return &TemplateStore{content: DefaultTemplate}
}

// Get returns the current template.
func (s *TemplateStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// Set replaces the current template.
func (s *TemplateStore) Set(content string) {
	s.mu.Lock()
	s.content = content
	s.mu.Unlock()
}
