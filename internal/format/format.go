// Package format encodes the final variable bindings of a program run.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ltungv/calc/internal/calc"
)

// Format is an output encoding for an environment
type Format int

const (
	// Text writes one "name = value" line per binding, in assignment order
	Text Format = iota
	// YAML writes a mapping in assignment order
	YAML
	// TOML writes a table with sorted keys
	TOML
	// JSON writes an object with sorted keys
	JSON
)

// Names lists the accepted format names.
var Names = []string{"text", "yaml", "toml", "json"}

// ParseFormat returns the format with the given name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "":
		return Text, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "json":
		return JSON, nil
	}
	return Text, fmt.Errorf("unknown output format %q (want one of %s)", name, strings.Join(Names, ", "))
}

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	case JSON:
		return "json"
	}
	return "unknown"
}

// Encode writes the bindings of env to w.
func Encode(w io.Writer, env *calc.Environment, f Format) error {
	switch f {
	case Text:
		return encodeText(w, env)
	case YAML:
		return encodeYAML(w, env)
	case TOML:
		return toml.NewEncoder(w).Encode(env.Values())
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(env.Values())
	}
	return fmt.Errorf("unknown output format %d", int(f))
}

func encodeText(w io.Writer, env *calc.Environment) error {
	for _, name := range env.Names() {
		value, _ := env.Get(name)
		if _, err := fmt.Fprintf(w, "%s = %d\n", name, value); err != nil {
			return err
		}
	}
	return nil
}

func encodeYAML(w io.Writer, env *calc.Environment) error {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range env.Names() {
		value, _ := env.Get(name)
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(value, 10)},
		)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
