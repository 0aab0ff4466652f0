// SPDX-License-Identifier: EPL-2.0

package audsys

import (
	"log/slog"
	"slices"
	"sync"

	// Installs every codec and the bridge providers into spi.Default().
	_ "github.com/ik5/audsys/bridge"
	"github.com/ik5/audsys/spi"
)

// System is the facade over a provider registry. Every call enumerates the
// registry again, so providers registered later are seen by the next call.
type System struct {
	registry *spi.Registry
	logger   *slog.Logger
	metrics  *Metrics
	excluded []spi.Domain
}

// Option configures a System.
type Option func(*System)

// WithRegistry makes the System consult r instead of spi.Default().
func WithRegistry(r *spi.Registry) Option {
	return func(s *System) {
		s.registry = r
	}
}

// WithLogger sets the logger dispatch attempts are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(s *System) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics makes the System count operations into m.
func WithMetrics(m *Metrics) Option {
	return func(s *System) {
		s.metrics = m
	}
}

// WithExcludedDomains hides every provider registered under one of domains.
func WithExcludedDomains(domains ...spi.Domain) Option {
	return func(s *System) {
		s.excluded = append(s.excluded, domains...)
	}
}

// New returns a System over spi.Default() unless WithRegistry says
// otherwise. Without WithLogger nothing is logged.
func New(opts ...Option) *System {
	s := &System{
		registry: spi.Default(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	defaultSystem     *System
	defaultSystemOnce sync.Once
)

// Default returns the System used by the package-level functions.
func Default() *System {
	defaultSystemOnce.Do(func() {
		defaultSystem = New()
	})
	return defaultSystem
}

// Registry returns the registry s consults.
func (s *System) Registry() *spi.Registry { return s.registry }

// ExcludedDomains returns the domains s hides.
func (s *System) ExcludedDomains() []spi.Domain { return slices.Clone(s.excluded) }

func candidates[T any](s *System) []spi.Candidate[T] {
	all := spi.Discover[T](s.registry)
	if len(s.excluded) == 0 {
		return all
	}
	return spi.Filter(all, spi.NotInDomain(s.excluded...))
}
