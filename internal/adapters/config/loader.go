// Package config detects and parses the project's configuration file. Five
// concrete syntaxes are recognized, each bound to its own file name, and all
// of them normalize into the same domain.Config.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/hackeros/hbuild/internal/core/ports"
	"github.com/pelletier/go-toml"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Format identifies one of the recognized configuration syntaxes.
type Format string

const (
	FormatHK   Format = "hk"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// candidates is the detection order; the first existing file wins.
var candidates = []struct {
	filename string
	format   Format
}{
	{"hbuild.config", FormatHK},
	{"hbuilt.config", FormatTOML},
	{"hbuily.config", FormatYAML},
	{"hbuilj.config", FormatJSON},
	{"hbuilh.config", FormatHCL},
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load searches the project root for a recognized configuration file and
// parses it into the normalized configuration.
func (l *Loader) Load(root string) (*domain.Config, error) {
	path, format, err := Detect(root)
	if err != nil {
		return nil, err
	}

	l.logger.Info("using config " + filepath.Base(path))

	return Parse(path, format)
}

// Detect returns the path and format of the project's configuration file.
func Detect(root string) (string, Format, error) {
	for _, c := range candidates {
		path := filepath.Join(root, c.filename)
		if _, err := os.Stat(path); err == nil {
			return path, c.format, nil
		}
	}
	return "", "", zerr.With(zerr.Wrap(domain.ErrNoConfig, "no recognized file in project folder"), "root", root)
}

// Parse reads and decodes a configuration file of a known format.
func Parse(path string, format Format) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from Detect
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	switch format {
	case FormatHK:
		return parseHK(data)
	case FormatTOML:
		return parseWith(data, path, toml.Unmarshal)
	case FormatYAML:
		return parseWith(data, path, yaml.Unmarshal)
	case FormatJSON:
		return parseWith(data, path, json.Unmarshal)
	case FormatHCL:
		return parseHCL(data, path)
	default:
		return nil, zerr.With(zerr.New("unknown config format"), "format", string(format))
	}
}

func parseWith(data []byte, path string, unmarshal func([]byte, interface{}) error) (*domain.Config, error) {
	var file configFile
	if err := unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}
	return file.toDomain()
}
