// SPDX-License-Identifier: EPL-2.0

package spi

import (
	"fmt"
	"slices"
	"sync"
)

// Domain tags a provider with the layer it belongs to.
type Domain string

const (
	// DomainCodec holds providers that implement formats themselves.
	DomainCodec Domain = "codec"
	// DomainFacade holds providers that aggregate codec providers.
	DomainFacade Domain = "facade"
)

// Named providers report their own name for logs and metrics.
type Named interface {
	Name() string
}

type entry struct {
	id       uint64
	domain   Domain
	name     string
	provider any
	factory  func() any
}

func (e entry) instance() any {
	if e.factory != nil {
		return e.factory()
	}
	return e.provider
}

// Registry holds installed providers in registration order.
type Registry struct {
	entries []entry
	nextID  uint64

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		mtx: &sync.Mutex{},
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry format packages register into
// from their init functions.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register installs p under domain and returns a function removing it again.
func (r *Registry) Register(domain Domain, p any) (unregister func()) {
	if p == nil {
		panic("spi: Register of nil provider")
	}
	return r.add(entry{domain: domain, name: nameOf(p), provider: p})
}

// RegisterFunc installs a provider built by factory. The factory runs on
// every enumeration, so each Discover call sees a new instance.
func (r *Registry) RegisterFunc(domain Domain, name string, factory func() any) (unregister func()) {
	if factory == nil {
		panic("spi: RegisterFunc of nil factory")
	}
	return r.add(entry{domain: domain, name: name, factory: factory})
}

func (r *Registry) add(e entry) func() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.nextID++
	e.id = r.nextID
	r.entries = append(r.entries, e)

	id := e.id
	return func() { r.remove(id) }
}

func (r *Registry) remove(id uint64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.entries = slices.DeleteFunc(r.entries, func(e entry) bool { return e.id == id })
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return len(r.entries)
}

func (r *Registry) snapshot() []entry {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return slices.Clone(r.entries)
}

// Candidate is a discovered provider together with its registration data.
type Candidate[T any] struct {
	Provider T
	Domain   Domain
	Name     string
}

// Discover enumerates every provider in r implementing T, in registration
// order. The table is read again on each call. A nil registry yields no
// candidates.
func Discover[T any](r *Registry) []Candidate[T] {
	if r == nil {
		return []Candidate[T]{}
	}

	entries := r.snapshot()
	out := make([]Candidate[T], 0, len(entries))
	for _, e := range entries {
		p, ok := e.instance().(T)
		if !ok {
			continue
		}
		out = append(out, Candidate[T]{Provider: p, Domain: e.domain, Name: e.name})
	}
	return out
}

func nameOf(p any) string {
	if n, ok := p.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", p)
}
