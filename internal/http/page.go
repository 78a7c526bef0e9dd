package http

import "sync"

// PageModel holds the current markup of the named page regions the
// cart engine renders into. It is the server-side stand-in for the
// swapped-in page: handlers serve region content from here, and the
// engine overwrites it on every state change.
type PageModel struct {
	mu      sync.RWMutex
	regions map[string]string
}

func NewPageModel() *PageModel {
	return &PageModel{
		regions: make(map[string]string),
	}
}

func (p *PageModel) SetHTML(id, html string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.regions[id] = html
}

func (p *PageModel) SetText(id, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.regions[id] = text
}

func (p *PageModel) Has(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.regions[id]
	return ok
}

// Get returns the current content of a region, if any.
func (p *PageModel) Get(id string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	content, ok := p.regions[id]
	return content, ok
}
