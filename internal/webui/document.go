package webui

import (
	"html/template"
	"sync"
)

// Document is the render surface of a page: a set of named containers whose
// content is replaced wholesale on each load. A loader targeting a container
// the page never declared finds nothing to write into and skips.
//
// The mutex exists because loaders for distinct containers may run
// concurrently during bootstrap.
type Document struct {
	mu         sync.RWMutex
	containers map[string]template.HTML
}

// NewDocument declares the given container anchors, all initially empty.
func NewDocument(ids ...string) *Document {
	d := &Document{containers: make(map[string]template.HTML, len(ids))}
	for _, id := range ids {
		d.containers[id] = ""
	}
	return d
}

func (d *Document) Has(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.containers[id]
	return ok
}

// SetContent replaces the container's content. It reports false, changing
// nothing, when the container was never declared.
func (d *Document) SetContent(id string, content template.HTML) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.containers[id]; !ok {
		return false
	}
	d.containers[id] = content
	return true
}

func (d *Document) Content(id string) template.HTML {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.containers[id]
}
