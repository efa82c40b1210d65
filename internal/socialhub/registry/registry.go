// Package registry caches one Publisher per platform for the life of the process.
package registry

import (
	"sync"

	"github.com/blacktop/socialhub/internal/logutil"
	"github.com/blacktop/socialhub/internal/socialhub"
	"github.com/blacktop/socialhub/internal/socialhub/instagram"
	"github.com/blacktop/socialhub/internal/socialhub/linkedin"
	"github.com/blacktop/socialhub/internal/socialhub/twitter"
)

// Constructor builds the adapter for a single platform.
type Constructor func() socialhub.Publisher

// Registry lazily builds and caches adapters, at most one per platform.
type Registry struct {
	mu           sync.Mutex
	constructors map[socialhub.Platform]Constructor
	adapters     map[socialhub.Platform]socialhub.Publisher
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Constructors returns the built-in adapter constructors.
func Constructors() map[socialhub.Platform]Constructor {
	return map[socialhub.Platform]Constructor{
		socialhub.Twitter:   func() socialhub.Publisher { return twitter.New() },
		socialhub.LinkedIn:  func() socialhub.Publisher { return linkedin.New() },
		socialhub.Instagram: func() socialhub.Publisher { return instagram.New() },
	}
}

// New creates an empty registry using the given constructors.
func New(constructors map[socialhub.Platform]Constructor) *Registry {
	copied := make(map[socialhub.Platform]Constructor, len(constructors))
	for p, c := range constructors {
		copied[p] = c
	}
	return &Registry{
		constructors: copied,
		adapters:     make(map[socialhub.Platform]socialhub.Publisher),
	}
}

// Default returns the process-wide registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New(Constructors())
	})
	return defaultRegistry
}

// GetAdapter returns the shared adapter for p from the default registry.
func GetAdapter(p socialhub.Platform) (socialhub.Publisher, error) {
	return Default().Get(p)
}

// Get returns the cached adapter for p, constructing it on first use.
// Construction happens under the registry lock, so concurrent callers
// observe a single instance.
func (r *Registry) Get(p socialhub.Platform) (socialhub.Publisher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if adapter, ok := r.adapters[p]; ok {
		return adapter, nil
	}

	constructor, ok := r.constructors[p]
	if !ok || constructor == nil {
		return nil, socialhub.UnknownPlatformError{Value: p.String()}
	}

	adapter := constructor()
	r.adapters[p] = adapter
	logutil.Debug("adapter created", "platform", p)
	return adapter, nil
}

// Reset drops every cached adapter.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters = make(map[socialhub.Platform]socialhub.Publisher)
}
