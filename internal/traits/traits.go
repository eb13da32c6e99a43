// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package traits maps free-form trait adjectives onto the five OCEAN
// categories and derives trait node identifiers.
package traits

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/trait-graph/pkg/types"
)

// NodePrefix is prepended to a category to form its trait node identifier.
const NodePrefix = "trait_"

// categories lists the taxonomy in canonical order.
var categories = []types.TraitCategory{
	types.Openness,
	types.Conscientiousness,
	types.Extraversion,
	types.Agreeableness,
	types.Neuroticism,
}

// lexicon maps lowercase synonyms to exactly one category.
var lexicon = map[string]types.TraitCategory{
	// openness
	"creative": types.Openness, "innovative": types.Openness, "curious": types.Openness,
	"imaginative": types.Openness, "visionary": types.Openness, "artistic": types.Openness,
	"aesthetic": types.Openness, "adventurous": types.Openness, "explorer": types.Openness,
	"intellectual": types.Openness, "open-minded": types.Openness, "unconventional": types.Openness,
	"progressive": types.Openness, "dreamer": types.Openness,

	// conscientiousness
	"organized": types.Conscientiousness, "meticulous": types.Conscientiousness,
	"responsible": types.Conscientiousness, "reliable": types.Conscientiousness,
	"competent": types.Conscientiousness, "effective": types.Conscientiousness,
	"neat": types.Conscientiousness, "systematic": types.Conscientiousness,
	"dutiful": types.Conscientiousness, "ambitious": types.Conscientiousness,
	"driven": types.Conscientiousness, "goal-oriented": types.Conscientiousness,
	"disciplined": types.Conscientiousness, "focused": types.Conscientiousness,
	"persistent": types.Conscientiousness, "cautious": types.Conscientiousness,
	"deliberate": types.Conscientiousness, "careful": types.Conscientiousness,

	// extraversion
	"outgoing": types.Extraversion, "sociable": types.Extraversion, "friendly": types.Extraversion,
	"gregarious": types.Extraversion, "assertive": types.Extraversion, "confident": types.Extraversion,
	"forceful": types.Extraversion, "energetic": types.Extraversion, "active": types.Extraversion,
	"dynamic": types.Extraversion, "excitement-seeking": types.Extraversion,
	"thrill-seeking": types.Extraversion, "cheerful": types.Extraversion,
	"optimistic": types.Extraversion, "positive": types.Extraversion,

	// agreeableness
	"cooperative": types.Agreeableness, "collaborative": types.Agreeableness,
	"empathetic": types.Agreeableness, "trusting": types.Agreeableness,
	"believing": types.Agreeableness, "accepting": types.Agreeableness,
	"moral": types.Agreeableness, "ethical": types.Agreeableness,
	"principled": types.Agreeableness, "altruistic": types.Agreeableness,
	"helpful": types.Agreeableness, "generous": types.Agreeableness,
	"accommodating": types.Agreeableness, "flexible": types.Agreeableness,
	"modest": types.Agreeableness, "humble": types.Agreeableness,
	"unassuming": types.Agreeableness, "sympathetic": types.Agreeableness,
	"compassionate": types.Agreeableness, "caring": types.Agreeableness,

	// neuroticism; calm, resilient and stable describe the low pole
	"anxious": types.Neuroticism, "worried": types.Neuroticism, "nervous": types.Neuroticism,
	"angry": types.Neuroticism, "irritable": types.Neuroticism, "frustrated": types.Neuroticism,
	"sad": types.Neuroticism, "depressed": types.Neuroticism, "unhappy": types.Neuroticism,
	"self-conscious": types.Neuroticism, "insecure": types.Neuroticism, "shy": types.Neuroticism,
	"impulsive": types.Neuroticism, "indulgent": types.Neuroticism, "immoderate": types.Neuroticism,
	"vulnerable": types.Neuroticism, "sensitive": types.Neuroticism, "fragile": types.Neuroticism,
	"calm": types.Neuroticism, "resilient": types.Neuroticism, "stable": types.Neuroticism,
}

// Normalize returns the category token maps to, or token unchanged when the
// lexicon has no entry. Lookup is exact and case-insensitive.
func Normalize(token string) string {
	if c, ok := lexicon[strings.ToLower(token)]; ok {
		return string(c)
	}
	return token
}

// Canonical normalizes token and reports whether the result is one of the
// five categories. Category names themselves are accepted in any case.
func Canonical(token string) (types.TraitCategory, bool) {
	n := strings.ToLower(Normalize(token))
	if IsCategory(n) {
		return types.TraitCategory(n), true
	}
	return "", false
}

// IsCategory reports whether s is exactly one of the five category values.
func IsCategory(s string) bool {
	for _, c := range categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Categories returns the taxonomy in canonical order.
func Categories() []types.TraitCategory {
	out := make([]types.TraitCategory, len(categories))
	copy(out, categories)
	return out
}

// NodeID returns the graph identifier shared by every mention of c.
func NodeID(c types.TraitCategory) string {
	return NodePrefix + string(c)
}

// Label returns the display label for c's trait node (e.g. "Openness").
func Label(c types.TraitCategory) string {
	// A Caser holds state, so each call gets its own.
	return cases.Title(language.English).String(string(c))
}
