// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package harness

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/discrex"
)

// Sentinel errors for harness input.
var (
	// ErrInvalidLists indicates malformed word lists input.
	ErrInvalidLists = errors.New("invalid word lists")
	// ErrUnknownList indicates a list name missing from WordLists.
	ErrUnknownList = errors.New("unknown word list")
)

// Config is the harness YAML file layout.
//
// Example:
//
//	options:
//	  rewrite: fixed-point
//	lists:
//	  fruits: [apple, pear]
//	  colors: [red, green]
type Config struct {
	// Lists are named word lists, benchmarked pairwise in file order.
	Lists *WordLists `yaml:"lists"`
	// Options are pattern options applied to every pair.
	Options discrex.Options `yaml:"options"`
}

// WordLists is an ordered set of named word lists.
type WordLists struct {
	words map[string][]string
	names []string
}

// NewWordLists returns empty word lists.
func NewWordLists() *WordLists {
	return &WordLists{words: make(map[string][]string)}
}

// Add appends one named list. Names must be unique and non-empty.
func (l *WordLists) Add(name string, words []string) error {
	if name == "" {
		return fmt.Errorf("%w: empty list name", ErrInvalidLists)
	}

	if l.words == nil {
		l.words = make(map[string][]string)
	}

	if _, ok := l.words[name]; ok {
		return fmt.Errorf("%w: duplicate list %q", ErrInvalidLists, name)
	}

	l.names = append(l.names, name)
	l.words[name] = slices.Clone(words)
	return nil
}

// Names returns list names in insertion order.
func (l *WordLists) Names() []string {
	return slices.Clone(l.names)
}

// Get returns words of one named list.
func (l *WordLists) Get(name string) ([]string, error) {
	words, ok := l.words[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, name)
	}

	return words, nil
}

// Len returns number of lists.
func (l *WordLists) Len() int {
	return len(l.names)
}

// UnmarshalYAML decodes a mapping of list name to word sequence, keeping mapping order.
func (l *WordLists) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: lists must be a mapping", ErrInvalidLists, value.Line)
	}

	*l = *NewWordLists()
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, node := value.Content[i], value.Content[i+1]

		var words []string
		if err := node.Decode(&words); err != nil {
			return fmt.Errorf("%w: list %q: %v", ErrInvalidLists, key.Value, err)
		}

		if err := l.Add(key.Value, words); err != nil {
			return fmt.Errorf("line %d: %w", key.Line, err)
		}
	}

	return nil
}

// ParseConfig parses harness YAML config.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Lists == nil || cfg.Lists.Len() < 2 {
		return nil, fmt.Errorf("%w: at least two lists are required", ErrInvalidLists)
	}

	return &cfg, nil
}

// LoadConfig reads and parses harness YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}
