package preset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFromTOML parses a custom layout preset from TOML data.
func LoadFromTOML(data []byte) (Preset, error) {
	var p Preset
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Preset{}, fmt.Errorf("preset: unknown TOML key %q", undecoded[0].String())
	}
	return prCheck(p)
}

// SaveToTOML serializes a preset to TOML format.
func SaveToTOML(p Preset) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return nil, fmt.Errorf("preset: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadFromYAML parses a custom layout preset from YAML data.
func LoadFromYAML(data []byte) (Preset, error) {
	var p Preset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Preset{}, fmt.Errorf("preset: parse YAML: %w", err)
	}
	return prCheck(p)
}

// SaveToYAML serializes a preset to YAML format.
func SaveToYAML(p Preset) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("preset: encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("preset: encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadFile reads a preset from path, choosing the format by extension
// (.toml, .yaml or .yml).
func LoadFile(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadFromTOML(data)
	case ".yaml", ".yml":
		return LoadFromYAML(data)
	default:
		return Preset{}, fmt.Errorf("preset: unsupported file type %q", path)
	}
}

// LoadDir loads every preset file in dir into r. Files with other
// extensions are ignored. A missing directory is not an error.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".toml", ".yaml", ".yml":
		default:
			continue
		}
		p, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name(), err)
		}
		r.Add(p)
	}
	return nil
}

// prCheck validates a decoded preset by compiling it once.
func prCheck(p Preset) (Preset, error) {
	if p.Name == "" {
		return Preset{}, fmt.Errorf("preset: missing required field 'name'")
	}
	if _, err := p.Node(); err != nil {
		return Preset{}, err
	}
	return p, nil
}
