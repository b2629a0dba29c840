package domain

import "go.trai.ch/zerr"

var (
	// ErrNoConfig is returned when no recognized configuration file exists in
	// the project folder.
	ErrNoConfig = zerr.New("no configuration file found")

	// ErrNoSources is returned when the source patterns expand to nothing.
	ErrNoSources = zerr.New("no source files matched")

	// ErrToolchain is returned when an external toolchain command is missing
	// or a dependency scan exits non-zero. It aborts the whole build.
	ErrToolchain = zerr.New("toolchain invocation failed")

	// ErrCompile is returned when one or more stale sources failed to compile.
	ErrCompile = zerr.New("compilation failed")

	// ErrLink is returned when the final link step fails.
	ErrLink = zerr.New("link failed")

	// ErrArchive is returned when the archiver fails to produce the static archive.
	ErrArchive = zerr.New("archive failed")

	// ErrUnsupportedLanguage marks a declared language hbuild has no toolchain
	// dispatch for. It is reported as skipped, never as a failure.
	ErrUnsupportedLanguage = zerr.New("unsupported language")

	// ErrFolderNotFound is returned when the project folder argument does not
	// name an existing directory.
	ErrFolderNotFound = zerr.New("folder does not exist")
)
