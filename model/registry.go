package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrUnknownModel indicates a name that resolves to no registered model.
	ErrUnknownModel = errors.New("model: unknown model identifier")

	// ErrDuplicateAlias indicates an alias registered twice.
	ErrDuplicateAlias = errors.New("model: alias already registered")
)

// Registry maps normalised aliases to models. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	aliases map[string]Model
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{aliases: make(map[string]Model)}
}

// Default holds the two built-in exponential forms under their usual names.
var Default = mustBuiltins()

func mustBuiltins() *Registry {
	r := NewRegistry()
	for _, a := range []string{"exp", "exp1", "exponential", "single", "single-exponential", "one-term"} {
		if err := r.Register(a, Single()); err != nil {
			panic(err) // static table; a failure is a programming error
		}
	}
	for _, a := range []string{"exp2", "double", "double-exponential", "biexponential", "two-term"} {
		if err := r.Register(a, Double()); err != nil {
			panic(err)
		}
	}

	return r
}

// Normalize lowercases name and drops '-', '_' and whitespace so that
// "Double_Exponential", "double-exponential" and "DOUBLE EXPONENTIAL"
// share one key.
func Normalize(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch r {
		case '-', '_', ' ', '\t':
			continue
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// Register binds alias to m.
func (r *Registry) Register(alias string, m Model) error {
	key := Normalize(alias)
	if key == "" || m == nil {
		return fmt.Errorf("register %q: %w", alias, ErrUnknownModel)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.aliases[key]; ok {
		return fmt.Errorf("register %q: %w", alias, ErrDuplicateAlias)
	}
	r.aliases[key] = m

	return nil
}

// Lookup resolves name to a model or returns ErrUnknownModel.
func (r *Registry) Lookup(name string) (Model, error) {
	r.mu.RLock()
	m, ok := r.aliases[Normalize(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownModel)
	}

	return m, nil
}

// Aliases returns the registered normalised aliases grouped by kind, sorted.
func (r *Registry) Aliases() map[Kind][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[Kind][]string)
	for a, m := range r.aliases {
		out[m.Kind()] = append(out[m.Kind()], a)
	}
	for k := range out {
		sort.Strings(out[k])
	}

	return out
}

// Lookup resolves name against the Default registry.
func Lookup(name string) (Model, error) { return Default.Lookup(name) }
