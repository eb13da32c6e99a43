// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus loads the entity registry and the ordered text list that a
// graph build runs over. A corpus is read once at startup and never mutated.
package corpus

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/trait-graph/internal/extract"
	"github.com/pdiddy/trait-graph/internal/traits"
	"github.com/pdiddy/trait-graph/pkg/types"
)

//go:embed default.yaml
var defaultCorpus []byte

// ErrInvalidRegistry wraps every validation failure reported by Validate.
var ErrInvalidRegistry = errors.New("invalid registry")

// Corpus is the on-disk representation of a registry plus its texts.
type Corpus struct {
	types.Registry `yaml:",inline"`

	// Texts are processed in order.
	Texts []string `json:"texts" yaml:"texts"`
}

// Default returns the built-in corpus.
func Default() (*Corpus, error) {
	c, err := Parse(defaultCorpus)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in corpus: %w", err)
	}
	return c, nil
}

// Load reads and validates a corpus file. An empty path selects Default.
func Load(path string) (*Corpus, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("corpus %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML corpus data, collapses whitespace in every text, and
// validates the registry.
func Parse(data []byte) (*Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing corpus: %w", err)
	}
	for i, t := range c.Texts {
		c.Texts[i] = extract.Preprocess(t)
	}
	if err := Validate(&c.Registry); err != nil {
		return nil, err
	}
	return &c, nil
}

// WriteFile saves c as YAML.
func WriteFile(path string, c *Corpus) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling corpus: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks that people have unique non-empty names, trait tables use
// taxonomy categories and known levels, and keyword entries name a category
// that normalizes into the taxonomy.
func Validate(r *types.Registry) error {
	var problems []string

	seen := make(map[string]bool)
	for i, p := range r.People {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			problems = append(problems, fmt.Sprintf("person %d: empty name", i))
			continue
		}
		if seen[name] {
			problems = append(problems, fmt.Sprintf("person %q: duplicate name", name))
		}
		seen[name] = true
		for c, lvl := range p.Traits {
			if !traits.IsCategory(string(c)) {
				problems = append(problems, fmt.Sprintf("person %q: unknown trait category %q", name, c))
			}
			if !lvl.Valid() {
				problems = append(problems, fmt.Sprintf("person %q: trait %q has invalid level %q", name, c, lvl))
			}
		}
	}

	for i, tk := range r.TraitKeywords {
		if _, ok := traits.Canonical(string(tk.Category)); !ok {
			problems = append(problems, fmt.Sprintf("trait_keywords %d: category %q is not an OCEAN trait", i, tk.Category))
		}
		if len(tk.Keywords) == 0 {
			problems = append(problems, fmt.Sprintf("trait_keywords %d: no keywords", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRegistry, strings.Join(problems, "; "))
	}
	return nil
}
