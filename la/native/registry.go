// Copyright 2025 go-linalg Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package native

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/ajroetker/go-linalg/la"
)

// ErrUnknownBackend is returned when a backend name is not registered.
var ErrUnknownBackend = errors.New("native: unknown backend")

// Entry is a registered backend.
type Entry struct {
	Backend Backend

	// Priority determines selection order; higher wins. Suggested:
	//   - gonum (pure Go): 0
	//   - netlib (system CBLAS): 10
	//   - accelerate: 20
	Priority int
}

// Name returns the backend name.
func (e Entry) Name() string { return e.Backend.Name() }

// Registry holds the backends available to this binary.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// Global is the registry every backend registers into.
var Global = &Registry{}

// Register adds a backend. Registering a name twice replaces the
// earlier entry. Typically called from init().
func (r *Registry) Register(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = slices.DeleteFunc(r.entries, func(old Entry) bool { return old.Name() == e.Name() })
	r.entries = append(r.entries, e)
	slices.SortStableFunc(r.entries, func(a, b Entry) int { return b.Priority - a.Priority })
}

// Lookup returns the backend registered under name.
func (r *Registry) Lookup(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Name() == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// Best returns the highest priority backend, or false when the registry
// is empty.
func (r *Registry) Best() (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[0], true
}

// List returns a copy of all entries sorted by descending priority.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.entries)
}

var (
	selectOnce sync.Once
	current    atomic.Pointer[Entry]
	enabled    = !la.NoNativeEnv()
)

// selectDefault picks the backend named by LA_BACKEND, falling back to
// the highest priority one.
func selectDefault() {
	if !enabled {
		log.Debug().Str("env", la.EnvNoNative).Msg("native BLAS disabled")
		return
	}
	if name := la.BackendEnv(); name != "" {
		e, err := Global.Lookup(name)
		if err == nil {
			current.Store(&e)
			log.Debug().Str("backend", name).Str("source", la.EnvBackend).Msg("native BLAS selected")
			return
		}
		log.Warn().Err(err).Str("env", la.EnvBackend).Msg("ignoring requested native BLAS backend")
	}
	if e, ok := Global.Best(); ok {
		current.Store(&e)
		log.Debug().Str("backend", e.Name()).Int("priority", e.Priority).Msg("native BLAS selected")
	}
}

// Enabled reports whether native paths may be used at all. It is fixed
// at startup by LA_NO_NATIVE.
func Enabled() bool {
	return enabled
}

// Current returns the selected backend, or nil when native paths are
// disabled.
func Current() Backend {
	selectOnce.Do(selectDefault)
	if e := current.Load(); e != nil {
		return e.Backend
	}
	return nil
}

// Use switches the selected backend by name. It has no effect on which
// kernels take the native path, only on where native calls go.
func Use(name string) error {
	selectOnce.Do(selectDefault)
	if !enabled {
		return fmt.Errorf("native: %s is set", la.EnvNoNative)
	}
	e, err := Global.Lookup(name)
	if err != nil {
		return err
	}
	current.Store(&e)
	log.Debug().Str("backend", name).Msg("native BLAS selected")
	return nil
}
