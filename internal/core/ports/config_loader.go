package ports

import "github.com/hackeros/hbuild/internal/core/domain"

// ConfigLoader detects and parses the project's configuration file into the
// normalized build configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load searches the project root for a recognized configuration file and
	// parses it. It returns domain.ErrNoConfig when none exists.
	Load(root string) (*domain.Config, error)
}
