package config

import (
	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.trai.ch/zerr"
)

// hclFile mirrors configFile with HCL block structure:
//
//	metadata { name = "proj" ... }
//	specs    { languages = ["c"] dependencies = { zlib = "1.3" } }
//	build    { type = "static" ... }
type hclFile struct {
	Metadata    *hclMetadata    `hcl:"metadata,block"`
	Description *hclDescription `hcl:"description,block"`
	Specs       *hclSpecs       `hcl:"specs,block"`
	Build       *hclBuild       `hcl:"build,block"`
	Runtime     *hclRuntime     `hcl:"runtime,block"`
}

type hclMetadata struct {
	Name    string `hcl:"name"`
	Version string `hcl:"version"`
	Authors string `hcl:"authors,optional"`
	License string `hcl:"license,optional"`
}

type hclDescription struct {
	Summary string `hcl:"summary,optional"`
	Long    string `hcl:"long,optional"`
}

type hclSpecs struct {
	Languages    []string          `hcl:"languages,optional"`
	Dependencies map[string]string `hcl:"dependencies,optional"`
}

type hclBuild struct {
	Target      string   `hcl:"target,optional"`
	Type        string   `hcl:"type,optional"`
	Sources     []string `hcl:"sources,optional"`
	IncludeDirs []string `hcl:"include_dirs,optional"`
	Compiler    string   `hcl:"compiler,optional"`
	Std         string   `hcl:"std,optional"`
	Opt         string   `hcl:"opt,optional"`
	CFlags      []string `hcl:"cflags,optional"`
	LDFlags     []string `hcl:"ldflags,optional"`
	LibDirs     []string `hcl:"lib_dirs,optional"`
	Libs        []string `hcl:"libs,optional"`
	PkgConfig   []string `hcl:"pkg_config,optional"`
	NativeArch  bool     `hcl:"native_arch,optional"`
}

type hclRuntime struct {
	Priority    string `hcl:"priority,optional"`
	AutoRestart bool   `hcl:"auto-restart,optional"`
}

func parseHCL(data []byte, path string) (*domain.Config, error) {
	parser := hclparse.NewParser()
	parsed, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, zerr.With(zerr.Wrap(diags, "failed to parse config file"), "path", path)
	}

	var raw hclFile
	if diags := gohcl.DecodeBody(parsed.Body, nil, &raw); diags.HasErrors() {
		return nil, zerr.With(zerr.Wrap(diags, "failed to decode config file"), "path", path)
	}

	var file configFile
	if raw.Metadata != nil {
		file.Metadata = metadataDTO{
			Name:    raw.Metadata.Name,
			Version: raw.Metadata.Version,
			Authors: raw.Metadata.Authors,
			License: raw.Metadata.License,
		}
	}
	if raw.Description != nil {
		file.Description = descriptionDTO{
			Summary: raw.Description.Summary,
			Long:    raw.Description.Long,
		}
	}
	if raw.Specs != nil {
		file.Specs = specsDTO{
			Languages:    raw.Specs.Languages,
			Dependencies: raw.Specs.Dependencies,
		}
	}
	if raw.Build != nil {
		file.Build = &buildDTO{
			Target:      raw.Build.Target,
			Type:        raw.Build.Type,
			Sources:     raw.Build.Sources,
			IncludeDirs: raw.Build.IncludeDirs,
			Compiler:    raw.Build.Compiler,
			Std:         raw.Build.Std,
			Opt:         raw.Build.Opt,
			CFlags:      raw.Build.CFlags,
			LDFlags:     raw.Build.LDFlags,
			LibDirs:     raw.Build.LibDirs,
			Libs:        raw.Build.Libs,
			PkgConfig:   raw.Build.PkgConfig,
			NativeArch:  raw.Build.NativeArch,
		}
	}
	if raw.Runtime != nil {
		file.Runtime = &runtimeDTO{
			Priority:    raw.Runtime.Priority,
			AutoRestart: raw.Runtime.AutoRestart,
		}
	}

	return file.toDomain()
}
