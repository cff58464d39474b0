package llm

import "fmt"

// ProviderFactory builds a Provider from its environment configuration.
type ProviderFactory func() (Provider, error)

// registry of provider factories, populated by backend packages at init time.
var registry = make(map[string]ProviderFactory)

// RegisterProvider makes a provider constructible by name. Backends call this
// from init(), so a blank import of the backend package is enough to enable it.
func RegisterProvider(name string, factory ProviderFactory) {
	registry[name] = factory
}

// NewProvider constructs the named provider. It fails when no imported
// backend has registered under that name.
func NewProvider(name string) (Provider, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unsupported provider: %s", name)
	}
	return factory()
}
