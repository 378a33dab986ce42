package udf

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// funcPlaceholder is replaced with the registered name in descriptions
const funcPlaceholder = "_FUNC_"

// Description documents a registered function.
type Description struct {
	Name     string
	Value    string
	Extended string
	// Deterministic functions return the same output for the same input,
	// so hosts may cache or constant-fold calls.
	Deterministic bool
}

// Factory creates a fresh, uninitialized function instance.
type Factory func() GenericUDF

type registration struct {
	desc    Description
	factory Factory
}

// Registry maps function names to factories. Lookups are case-insensitive.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*registration
}

// LongToIPDescription describes LongToIP
var LongToIPDescription = Description{
	Name:          LongToIPName,
	Value:         "_FUNC_(iplong) - returns IP address in string format from long format",
	Extended:      "Example:\n > SELECT _FUNC_(16843009) FROM table\n > 1.1.1.1",
	Deterministic: true,
}

// NewRegistry creates a registry with LongToIP registered. opts apply to every
// LongToIP instance the registry creates.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]*registration),
	}

	r.mustRegister(LongToIPDescription, func() GenericUDF {
		return NewLongToIP(opts...)
	})

	return r
}

// Register adds a function. Registering a name twice is an error.
func (r *Registry) Register(desc Description, factory Factory) error {
	if desc.Name == "" {
		return fmt.Errorf("function name is required")
	}
	if factory == nil {
		return fmt.Errorf("function %s: factory is required", desc.Name)
	}

	key := strings.ToLower(desc.Name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.entries[key]; exists {
		return fmt.Errorf("function %s already registered as %s", desc.Name, existing.desc.Name)
	}

	r.entries[key] = &registration{desc: desc, factory: factory}

	return nil
}

func (r *Registry) mustRegister(desc Description, factory Factory) {
	if err := r.Register(desc, factory); err != nil {
		panic(err)
	}
}

// Lookup returns the description of a registered function.
func (r *Registry) Lookup(name string) (Description, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.entries[strings.ToLower(name)]
	if !ok {
		return Description{}, false
	}

	return reg.desc, true
}

// New creates an independent instance of the named function.
func (r *Registry) New(name string) (GenericUDF, error) {
	r.mu.RLock()
	reg, ok := r.entries[strings.ToLower(name)]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}

	return reg.factory(), nil
}

// Describe renders the help text of the named function.
func (r *Registry) Describe(name string) (string, error) {
	desc, ok := r.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}

	text := desc.Value
	if desc.Extended != "" {
		text += "\n" + desc.Extended
	}

	return strings.ReplaceAll(text, funcPlaceholder, desc.Name), nil
}

// Names returns the registered function names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, reg := range r.entries {
		names = append(names, reg.desc.Name)
	}
	sort.Strings(names)

	return names
}
