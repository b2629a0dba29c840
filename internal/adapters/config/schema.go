package config

import (
	"github.com/hackeros/hbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// configFile is the on-disk shape shared by the TOML, YAML, and JSON
// syntaxes. The hk and HCL syntaxes decode through their own representations
// and converge on the same domain.Config.
type configFile struct {
	Metadata    metadataDTO    `yaml:"metadata" json:"metadata" toml:"metadata"`
	Description descriptionDTO `yaml:"description" json:"description" toml:"description"`
	Specs       specsDTO       `yaml:"specs" json:"specs" toml:"specs"`
	Build       *buildDTO      `yaml:"build" json:"build" toml:"build"`
	Runtime     *runtimeDTO    `yaml:"runtime" json:"runtime" toml:"runtime"`
}

type metadataDTO struct {
	Name    string `yaml:"name" json:"name" toml:"name"`
	Version string `yaml:"version" json:"version" toml:"version"`
	Authors string `yaml:"authors" json:"authors" toml:"authors"`
	License string `yaml:"license" json:"license" toml:"license"`
}

type descriptionDTO struct {
	Summary string `yaml:"summary" json:"summary" toml:"summary"`
	Long    string `yaml:"long" json:"long" toml:"long"`
}

type specsDTO struct {
	Languages    []string          `yaml:"languages" json:"languages" toml:"languages"`
	Dependencies map[string]string `yaml:"dependencies" json:"dependencies" toml:"dependencies"`
}

type buildDTO struct {
	Target      string   `yaml:"target" json:"target" toml:"target"`
	Type        string   `yaml:"type" json:"type" toml:"type"`
	Sources     []string `yaml:"sources" json:"sources" toml:"sources"`
	IncludeDirs []string `yaml:"include_dirs" json:"include_dirs" toml:"include_dirs"`
	Compiler    string   `yaml:"compiler" json:"compiler" toml:"compiler"`
	Std         string   `yaml:"std" json:"std" toml:"std"`
	Opt         string   `yaml:"opt" json:"opt" toml:"opt"`
	CFlags      []string `yaml:"cflags" json:"cflags" toml:"cflags"`
	LDFlags     []string `yaml:"ldflags" json:"ldflags" toml:"ldflags"`
	LibDirs     []string `yaml:"lib_dirs" json:"lib_dirs" toml:"lib_dirs"`
	Libs        []string `yaml:"libs" json:"libs" toml:"libs"`
	PkgConfig   []string `yaml:"pkg_config" json:"pkg_config" toml:"pkg_config"`
	NativeArch  bool     `yaml:"native_arch" json:"native_arch" toml:"native_arch"`
}

type runtimeDTO struct {
	Priority    string `yaml:"priority" json:"priority" toml:"priority"`
	AutoRestart bool   `yaml:"auto-restart" json:"auto-restart" toml:"auto-restart"`
}

// toDomain validates the decoded file and applies syntax-independent
// defaults. Language-specific defaults (compiler, standard, source patterns)
// are left to the native engine, which knows whether it is building c or c++.
func (f *configFile) toDomain() (*domain.Config, error) {
	if f.Metadata.Name == "" {
		return nil, zerr.New("missing required key metadata.name")
	}
	if f.Metadata.Version == "" {
		return nil, zerr.New("missing required key metadata.version")
	}

	cfg := &domain.Config{
		Metadata: domain.Metadata{
			Name:    f.Metadata.Name,
			Version: f.Metadata.Version,
			Authors: f.Metadata.Authors,
			License: f.Metadata.License,
		},
		Description: domain.Description{
			Summary: f.Description.Summary,
			Long:    f.Description.Long,
		},
		Specs: domain.Specs{
			Languages:    f.Specs.Languages,
			Dependencies: f.Specs.Dependencies,
		},
	}

	build := f.Build
	if build == nil {
		build = &buildDTO{}
	}

	kind := domain.BuildKind(build.Type)
	if build.Type == "" {
		kind = domain.KindExecutable
	}
	if !kind.Valid() {
		return nil, zerr.With(zerr.New("invalid build type"), "type", build.Type)
	}

	target := build.Target
	if target == "" {
		target = f.Metadata.Name
	}

	opt := build.Opt
	if opt == "" {
		opt = "2"
	}

	cfg.Build = domain.BuildSpec{
		Target:      target,
		Kind:        kind,
		Sources:     build.Sources,
		IncludeDirs: build.IncludeDirs,
		Compiler:    build.Compiler,
		Std:         build.Std,
		Opt:         opt,
		CFlags:      build.CFlags,
		LDFlags:     build.LDFlags,
		LibDirs:     build.LibDirs,
		Libs:        build.Libs,
		PkgConfig:   build.PkgConfig,
		NativeArch:  build.NativeArch,
	}

	if f.Runtime != nil {
		cfg.Runtime = &domain.Runtime{
			Priority:    f.Runtime.Priority,
			AutoRestart: f.Runtime.AutoRestart,
		}
	}

	return cfg, nil
}
