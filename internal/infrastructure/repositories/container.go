package repositories

import (
	domainRepos "github.com/rios0rios0/mow/internal/domain/repositories"
	explicitRepo "github.com/rios0rios0/mow/internal/infrastructure/repositories/explicit"
	fsRepo "github.com/rios0rios0/mow/internal/infrastructure/repositories/filesystem"
	findRepo "github.com/rios0rios0/mow/internal/infrastructure/repositories/find"
	gitRepo "github.com/rios0rios0/mow/internal/infrastructure/repositories/git"
	termRepo "github.com/rios0rios0/mow/internal/infrastructure/repositories/terminal"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// The git lister doubles as the repository detector
	if err := container.Provide(func() domainRepos.VersionControlRepository {
		return gitRepo.NewFileListerRepository()
	}); err != nil {
		return err
	}

	// Register lister registry with all discovery strategies
	if err := container.Provide(func(vcs domainRepos.VersionControlRepository) *ListerRegistry {
		reg := NewListerRegistry()
		reg.Register(explicitRepo.NewFileListerRepository())
		reg.Register(vcs)
		reg.Register(findRepo.NewFileListerRepository())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.StripperRepository {
		return fsRepo.NewStripperRepository()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.PromptRepository {
		return termRepo.NewPromptRepository()
	}); err != nil {
		return err
	}

	return nil
}
