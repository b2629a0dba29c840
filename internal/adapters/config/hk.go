package config

import (
	"bufio"
	"bytes"
	"sort"
	"strconv"
	"strings"

	"github.com/hackeros/hbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// The hk syntax is HackerOS's own configuration format:
//
//	! comment
//	[section]
//	-> key => value
//	[section.subsection]
//	-> key => value
//
// There is no ecosystem parser for it, so it is decoded by hand. List-valued
// keys hold comma-separated values. Languages are the keys of the [specs]
// section itself (e.g. "-> c => yes"), matching how projects declare them;
// dependencies live in [specs.dependencies].

type hkSections map[string]map[string]string

func parseHKSections(data []byte) (hkSections, error) {
	sections := make(hkSections)
	current := ""

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "" || strings.HasPrefix(line, "!"):
			continue

		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			current = strings.TrimSpace(line[1 : len(line)-1])
			if current == "" {
				return nil, zerr.With(zerr.New("empty section name"), "line", lineNo)
			}
			if _, ok := sections[current]; !ok {
				sections[current] = make(map[string]string)
			}

		case strings.HasPrefix(line, "->"):
			if current == "" {
				return nil, zerr.With(zerr.New("key outside of section"), "line", lineNo)
			}
			key, value, ok := strings.Cut(strings.TrimPrefix(line, "->"), "=>")
			if !ok {
				return nil, zerr.With(zerr.New("malformed key line"), "line", lineNo)
			}
			sections[current][strings.TrimSpace(key)] = strings.TrimSpace(value)

		default:
			return nil, zerr.With(zerr.New("unrecognized line"), "line", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to scan hk config")
	}

	return sections, nil
}

func parseHK(data []byte) (*domain.Config, error) {
	sections, err := parseHKSections(data)
	if err != nil {
		return nil, err
	}

	var file configFile
	meta := sections["metadata"]
	file.Metadata = metadataDTO{
		Name:    meta["name"],
		Version: meta["version"],
		Authors: meta["authors"],
		License: meta["license"],
	}

	desc := sections["description"]
	file.Description = descriptionDTO{
		Summary: desc["summary"],
		Long:    desc["long"],
	}

	// Every key of [specs] declares a language; its value is ignored.
	for key := range sections["specs"] {
		file.Specs.Languages = append(file.Specs.Languages, key)
	}
	sort.Strings(file.Specs.Languages)
	if deps := sections["specs.dependencies"]; len(deps) > 0 {
		file.Specs.Dependencies = make(map[string]string, len(deps))
		for name, version := range deps {
			file.Specs.Dependencies[name] = version
		}
	}

	if build, ok := sections["build"]; ok {
		file.Build = &buildDTO{
			Target:      build["target"],
			Type:        build["type"],
			Sources:     hkList(build["sources"]),
			IncludeDirs: hkList(build["include_dirs"]),
			Compiler:    build["compiler"],
			Std:         build["std"],
			Opt:         build["opt"],
			CFlags:      hkList(build["cflags"]),
			LDFlags:     hkList(build["ldflags"]),
			LibDirs:     hkList(build["lib_dirs"]),
			Libs:        hkList(build["libs"]),
			PkgConfig:   hkList(build["pkg_config"]),
			NativeArch:  hkBool(build["native_arch"]),
		}
	}

	if run, ok := sections["runtime"]; ok {
		file.Runtime = &runtimeDTO{
			Priority:    run["priority"],
			AutoRestart: hkBool(run["auto-restart"]),
		}
	}

	return file.toDomain()
}

func hkList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func hkBool(value string) bool {
	b, err := strconv.ParseBool(value)
	return err == nil && b
}
