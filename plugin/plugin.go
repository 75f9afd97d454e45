// Package plugin implements the section and tag handler registry that lets
// a host application extend the parser and override-tag sublanguage
// without forking them (spec §4.4). Registration is copy-on-write: readers
// (package parse, for section handlers) never block behind a writer.
package plugin

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/limenime/limeass/ast"
)

// SectionHandler parses the lines belonging to a plugin-owned section
// header into a Section of the plugin's own choosing. Span is left at its
// zero value; package parse fills it in from the section's token range.
type SectionHandler interface {
	HandleSection(headerName string, lines []string) (ast.Section, error)
}

// TagHandler interprets the raw argument text of an override tag that
// package override does not recognize natively, returning a value of the
// plugin's own choosing. Package override does not call TagHandlers; they
// are stored and looked up through Registry.
type TagHandler interface {
	HandleTag(name string, args string) (any, error)
}

type sectionRegistration struct {
	id      uuid.UUID
	handler SectionHandler
}

type tagRegistration struct {
	id      uuid.UUID
	handler TagHandler
}

// snapshot is the immutable state a Registry's atomic.Pointer holds; every
// write installs a freshly copied snapshot rather than mutating this one.
type snapshot struct {
	sections map[string]sectionRegistration
	tags     map[string]tagRegistration
}

// Registry maps section header names and override tag names to
// plugin-supplied handlers. The zero value is not usable; construct with
// New. A nil *Registry is valid wherever callers accept one — it behaves
// as an empty registry (spec §4.4: plugins are optional).
type Registry struct {
	mu    sync.Mutex // serializes writers; readers never take it
	state atomic.Pointer[snapshot]
}

// New returns an empty, ready-to-use Registry.
func New() *Registry {
	r := &Registry{}
	r.state.Store(&snapshot{sections: map[string]sectionRegistration{}, tags: map[string]tagRegistration{}})
	return r
}

func (r *Registry) current() *snapshot {
	if r == nil {
		return &snapshot{}
	}
	s := r.state.Load()
	if s == nil {
		return &snapshot{}
	}
	return s
}

// RegisterSection installs handler for section header name (matched
// case-sensitively against the bracketed header text, spec §4.4).
// Replaced reports whether this call displaced a previously registered
// handler for the same name; callers surface that as an
// ast.KindHandlerReplaced issue if they choose to.
func (r *Registry) RegisterSection(headerName string, handler SectionHandler) (id uuid.UUID, replaced bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.current()
	next := &snapshot{
		sections: make(map[string]sectionRegistration, len(old.sections)+1),
		tags:     old.tags,
	}
	for k, v := range old.sections {
		next.sections[k] = v
	}

	_, replaced = next.sections[headerName]
	id = uuid.New()
	next.sections[headerName] = sectionRegistration{id: id, handler: handler}

	r.state.Store(next)
	return id, replaced
}

// RegisterTag installs handler for override tag name (without its leading
// backslash).
func (r *Registry) RegisterTag(name string, handler TagHandler) (id uuid.UUID, replaced bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.current()
	next := &snapshot{
		sections: old.sections,
		tags:     make(map[string]tagRegistration, len(old.tags)+1),
	}
	for k, v := range old.tags {
		next.tags[k] = v
	}

	_, replaced = next.tags[name]
	id = uuid.New()
	next.tags[name] = tagRegistration{id: id, handler: handler}

	r.state.Store(next)
	return id, replaced
}

// UnregisterSection removes a previously registered section handler,
// reporting whether one was present.
func (r *Registry) UnregisterSection(headerName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.current()
	if _, ok := old.sections[headerName]; !ok {
		return false
	}

	next := &snapshot{
		sections: make(map[string]sectionRegistration, len(old.sections)),
		tags:     old.tags,
	}
	for k, v := range old.sections {
		if k == headerName {
			continue
		}
		next.sections[k] = v
	}
	r.state.Store(next)
	return true
}

// UnregisterTag removes a previously registered tag handler, reporting
// whether one was present.
func (r *Registry) UnregisterTag(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.current()
	if _, ok := old.tags[name]; !ok {
		return false
	}

	next := &snapshot{
		sections: old.sections,
		tags:     make(map[string]tagRegistration, len(old.tags)),
	}
	for k, v := range old.tags {
		if k == name {
			continue
		}
		next.tags[k] = v
	}
	r.state.Store(next)
	return true
}

// Section looks up a registered SectionHandler. Safe to call on a nil
// Registry (reports ok=false).
func (r *Registry) Section(headerName string) (SectionHandler, bool) {
	reg, ok := r.current().sections[headerName]
	if !ok {
		return nil, false
	}
	return reg.handler, true
}

// Tag looks up a registered TagHandler. Safe to call on a nil Registry
// (reports ok=false).
func (r *Registry) Tag(name string) (TagHandler, bool) {
	reg, ok := r.current().tags[name]
	if !ok {
		return nil, false
	}
	return reg.handler, true
}
