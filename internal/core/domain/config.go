package domain

// Metadata identifies the project being built.
type Metadata struct {
	Name    string
	Version string
	Authors string
	License string
}

// Description carries the human-readable project summary.
type Description struct {
	Summary string
	Long    string
}

// Specs declares the languages to build and the project's source-level
// dependencies. Dependencies are acquired by an external collaborator; the
// engine only consumes the resolved language list.
type Specs struct {
	Languages    []string
	Dependencies map[string]string
}

// Runtime holds optional runtime hints that hbuild records but does not act on.
type Runtime struct {
	Priority    string
	AutoRestart bool
}

// Config is the normalized build configuration, produced by the configuration
// loader from whichever concrete syntax the project uses.
type Config struct {
	Metadata    Metadata
	Description Description
	Specs       Specs
	Build       BuildSpec
	Runtime     *Runtime
}
