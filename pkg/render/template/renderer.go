// Package template wraps a pongo2 template set behind the small surface the
// HTML renderer needs.
package template

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Engine renders named templates from an fs.FS.
type Engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

// New builds an engine that loads templates from files.
func New(name string, files fs.FS) (*Engine, error) {
	if files == nil {
		return nil, errors.New("template: fs.FS is required")
	}
	return &Engine{
		set:       pongo2.NewSet(name, pongo2.NewFSLoader(files)),
		templates: make(map[string]*pongo2.Template),
	}, nil
}

// Render executes the named template with data.
func (e *Engine) Render(name string, data map[string]any) ([]byte, error) {
	tmpl, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pongo2.Context(data), &buf); err != nil {
		return nil, fmt.Errorf("template: execute %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (e *Engine) lookup(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[name]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("template: load %q: %w", name, err)
	}
	e.templates[name] = tmpl
	return tmpl, nil
}
