package repositories

import (
	"fmt"

	"github.com/rios0rios0/mow/internal/domain/entities"
	domainRepos "github.com/rios0rios0/mow/internal/domain/repositories"
)

// ListerRegistry manages all registered file lister implementations.
type ListerRegistry struct {
	listers []domainRepos.FileListerRepository
}

// NewListerRegistry creates an empty lister registry.
func NewListerRegistry() *ListerRegistry {
	return &ListerRegistry{}
}

// Register adds a lister. Earlier registrations win when modes overlap.
func (r *ListerRegistry) Register(l domainRepos.FileListerRepository) {
	r.listers = append(r.listers, l)
}

// Get returns the lister serving the given mode.
func (r *ListerRegistry) Get(mode entities.SelectionMode) (domainRepos.FileListerRepository, error) {
	for _, l := range r.listers {
		if l.Supports(mode) {
			return l, nil
		}
	}
	return nil, fmt.Errorf("no file lister registered for mode %s", mode)
}

// Names returns the registered lister names in registration order.
func (r *ListerRegistry) Names() []string {
	names := make([]string, 0, len(r.listers))
	for _, l := range r.listers {
		names = append(names, l.Name())
	}
	return names
}
