package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// The default wildcard set is injected, never read from a package variable.
	return container.Provide(DefaultWildcards)
}
