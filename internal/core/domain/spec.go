// Package domain contains the core domain models for the hbuild engine.
package domain

import "path/filepath"

// BuildKind selects the link/archive strategy and the target extension.
type BuildKind string

const (
	// KindExecutable produces a plain executable with no extension.
	KindExecutable BuildKind = "executable"
	// KindShared produces a shared library (lib<name>.so).
	KindShared BuildKind = "shared"
	// KindStatic produces a static archive (lib<name>.a).
	KindStatic BuildKind = "static"
)

// Valid reports whether the kind is one of the three supported values.
func (k BuildKind) Valid() bool {
	switch k {
	case KindExecutable, KindShared, KindStatic:
		return true
	default:
		return false
	}
}

// BuildSpec describes one native compile-link-archive pipeline.
// It is supplied by the configuration loader and is immutable for the
// duration of a build.
type BuildSpec struct {
	// Target is the base name of the final artifact.
	Target string
	// Kind determines the link/archive strategy.
	Kind BuildKind
	// Sources holds glob patterns relative to the project root.
	Sources []string
	// IncludeDirs are passed as -I search paths to every compiler invocation.
	IncludeDirs []string
	// Compiler is the invocation name of the C/C++ compiler (cc, gcc, clang).
	Compiler string
	// Std is the language standard (c17, c++17, ...).
	Std string
	// Opt is the optimization level appended to -O.
	Opt string
	// CFlags are extra compiler flags.
	CFlags []string
	// LDFlags are extra linker flags.
	LDFlags []string
	// LibDirs are -L library search directories.
	LibDirs []string
	// Libs are -l library names.
	Libs []string
	// PkgConfig lists pkg-config dependency names queried for cflags and libs.
	PkgConfig []string
	// NativeArch enables -march=native tuning.
	NativeArch bool
}

// ObjectPath returns the object file path for a source, derived from the
// source's base name inside the build output directory.
func (s *BuildSpec) ObjectPath(buildDir, source string) string {
	base := filepath.Base(source)
	ext := filepath.Ext(base)
	return filepath.Join(buildDir, base[:len(base)-len(ext)]+".o")
}

// TargetPath returns the final artifact path under the project root, with
// the extension implied by the build kind.
func (s *BuildSpec) TargetPath(root string) string {
	switch s.Kind {
	case KindShared:
		return filepath.Join(root, "lib"+s.Target+".so")
	case KindStatic:
		return filepath.Join(root, "lib"+s.Target+".a")
	default:
		return filepath.Join(root, s.Target)
	}
}
