package ports

// SourceLocator expands source glob patterns into concrete file paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type SourceLocator interface {
	// Locate expands the patterns against the project root and returns the
	// deduplicated, sorted list of absolute source paths. It returns
	// domain.ErrNoSources when nothing matches.
	Locate(root string, patterns []string) ([]string, error)
}
