// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TraitCategory is one of the five OCEAN personality factors.
type TraitCategory string

const (
	Openness          TraitCategory = "openness"
	Conscientiousness TraitCategory = "conscientiousness"
	Extraversion      TraitCategory = "extraversion"
	Agreeableness     TraitCategory = "agreeableness"
	Neuroticism       TraitCategory = "neuroticism"
)

// TraitLevel is the qualitative strength of a trait in a ground-truth profile.
type TraitLevel string

const (
	LevelLow    TraitLevel = "low"
	LevelMedium TraitLevel = "medium"
	LevelHigh   TraitLevel = "high"
)

// Valid reports whether l is one of low, medium, or high.
func (l TraitLevel) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// Expressed reports whether the level claims the person exhibits the trait.
// Only medium and high count; low is not a claim.
func (l TraitLevel) Expressed() bool {
	return l == LevelMedium || l == LevelHigh
}

// KnownEntity is a person from the static registry.
type KnownEntity struct {
	// Name is the canonical surface name matched against text (e.g. "Sarah Chen").
	Name string `json:"name" yaml:"name"`

	// Role is the person's job title.
	Role string `json:"role,omitempty" yaml:"role,omitempty"`

	// Organization is the person's employer.
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`

	// Location is the person's home office.
	Location string `json:"location,omitempty" yaml:"location,omitempty"`

	// Traits maps each OCEAN category to a qualitative level. A nil map means
	// the person has no ground-truth profile.
	Traits map[TraitCategory]TraitLevel `json:"traits,omitempty" yaml:"traits,omitempty"`
}

// HasProfile reports whether the entity carries a trait-level table.
func (e KnownEntity) HasProfile() bool {
	return len(e.Traits) > 0
}

// TraitKeywords lists the keywords that signal one trait category. Keyword
// order is significant: the first keyword found in a text wins.
type TraitKeywords struct {
	Category TraitCategory `json:"category" yaml:"category"`
	Keywords []string      `json:"keywords" yaml:"keywords"`
}

// Registry is the immutable set of known entities and keyword tables that
// extraction matches text against. It is loaded once and shared by reference.
type Registry struct {
	// People are the known persons, in match order.
	People []KnownEntity `json:"people" yaml:"people"`

	// Organizations are the known organization names.
	Organizations []string `json:"organizations" yaml:"organizations"`

	// Locations are the known location names.
	Locations []string `json:"locations" yaml:"locations"`

	// TraitKeywords is the ordered keyword table, one entry per category.
	TraitKeywords []TraitKeywords `json:"trait_keywords" yaml:"trait_keywords"`
}

// PersonNames returns the names of all known people in registry order.
func (r Registry) PersonNames() []string {
	names := make([]string, len(r.People))
	for i, p := range r.People {
		names[i] = p.Name
	}
	return names
}
