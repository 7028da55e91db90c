package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/masked/mask"
)

// Preset is a named mask the demo can switch to.
type Preset struct {
	Name            string `toml:"name"`
	Mask            string `toml:"mask"`
	Value           string `toml:"value"`
	PlaceholderChar string `toml:"placeholder_char"`
	Placeholder     string `toml:"placeholder"`
}

// presetFile is the layout of a --config file:
//
//	[[preset]]
//	name = "iban"
//	mask = "AA11 1111 1111 1111 1111 11"
type presetFile struct {
	Presets []Preset `toml:"preset"`
}

func builtinPresets() []Preset {
	return []Preset{
		{Name: "phone", Mask: "(111) 111-1111", Placeholder: "(555) 555-5555"},
		{Name: "date", Mask: "11/11/1111", Placeholder: "MM/DD/YYYY"},
		{Name: "card", Mask: "1111 1111 1111 1111"},
		{Name: "amex", Mask: "1111 111111 11111"},
	}
}

func (p Preset) validate() error {
	if p.Name == "" {
		return errors.New("preset without a name")
	}
	_, err := mask.New(mask.Options{
		Pattern:         p.Mask,
		Value:           p.Value,
		PlaceholderChar: p.PlaceholderChar,
	})
	if err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return nil
}

// loadPresets returns the built-in presets merged with the ones in path.
// A file preset replaces a built-in of the same name.
func loadPresets(path string) ([]Preset, error) {
	presets := builtinPresets()
	if path == "" {
		return presets, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	extra, err := decodePresets(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mergePresets(presets, extra), nil
}

func decodePresets(data []byte) ([]Preset, error) {
	var f presetFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	seen := make(map[string]bool, len(f.Presets))
	for _, p := range f.Presets {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}
		seen[p.Name] = true
	}
	return f.Presets, nil
}

func mergePresets(base, extra []Preset) []Preset {
	out := append([]Preset(nil), base...)
	for _, p := range extra {
		if i, err := findPreset(out, p.Name); err == nil {
			out[i] = p
			continue
		}
		out = append(out, p)
	}
	return out
}

func findPreset(presets []Preset, name string) (int, error) {
	for i, p := range presets {
		if p.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("unknown preset %q", name)
}
