// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract detects known entities, trait mentions, and typed
// relationships in a single text unit by dictionary and keyword matching.
package extract

import (
	"strings"

	"github.com/pdiddy/trait-graph/internal/traits"
	"github.com/pdiddy/trait-graph/pkg/types"
)

// Vocabularies that trigger relation inference. Matched as lowercase
// substrings of the text.
var (
	workVocabulary  = []string{"work", "employed", "company"}
	eventVocabulary = []string{"meeting", "conference", "event"}
)

// eventMarkers must additionally appear verbatim (case-sensitive) for an
// attended_event_at relation to be inferred.
var eventMarkers = []string{"conference", "meeting"}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRelations enables or disables works_at / attended_event_at inference.
func WithRelations(on bool) Option {
	return func(e *Extractor) { e.relations = on }
}

// keywordSet is a TraitKeywords entry with its category resolved and its
// keywords lowercased, in original order.
type keywordSet struct {
	category types.TraitCategory
	keywords []string
}

// Extractor turns text units into ExtractionRecords. It never mutates the
// registry and keeps no per-call state, so one Extractor serves a whole run.
type Extractor struct {
	reg       *types.Registry
	relations bool
	keywords  []keywordSet
}

// New returns an Extractor over reg. Relation inference is on by default.
// Keyword entries whose category does not normalize into the OCEAN taxonomy
// are ignored.
func New(reg *types.Registry, opts ...Option) *Extractor {
	e := &Extractor{reg: reg, relations: true}
	for _, opt := range opts {
		opt(e)
	}

	// Entries that normalize to the same category are merged into the first
	// one, so a category yields at most one mention per text unit.
	index := make(map[types.TraitCategory]int)
	for _, tk := range reg.TraitKeywords {
		c, ok := traits.Canonical(string(tk.Category))
		if !ok {
			continue
		}
		i, seen := index[c]
		if !seen {
			i = len(e.keywords)
			index[c] = i
			e.keywords = append(e.keywords, keywordSet{category: c})
		}
		for _, k := range tk.Keywords {
			if k = strings.ToLower(k); k != "" {
				e.keywords[i].keywords = append(e.keywords[i].keywords, k)
			}
		}
	}
	return e
}

// Registry returns the registry the extractor matches against.
func (e *Extractor) Registry() *types.Registry {
	return e.reg
}

// Extract scans one text unit. It has no failure path: any string yields a
// (possibly empty) record.
func (e *Extractor) Extract(text string) types.ExtractionRecord {
	lower := strings.ToLower(text)

	rec := types.ExtractionRecord{
		Text:          text,
		People:        matchNames(lower, e.reg.PersonNames()),
		Organizations: matchNames(lower, e.reg.Organizations),
		Locations:     matchNames(lower, e.reg.Locations),
	}

	confidence := types.ConfidenceMedium
	if len(rec.People) > 0 {
		confidence = types.ConfidenceHigh
	}

	for _, ks := range e.keywords {
		kw, ok := firstMatch(lower, ks.keywords)
		if !ok {
			continue
		}
		related := make([]string, len(rec.People))
		copy(related, rec.People)
		rec.Traits = append(rec.Traits, types.TraitMention{
			Category:      ks.category,
			Confidence:    confidence,
			Keyword:       kw,
			Evidence:      text,
			RelatedPeople: related,
		})
	}

	if e.relations {
		rec.Relations = inferRelations(text, lower, rec)
	}
	return rec
}

// inferRelations emits the full person × organization and person × location
// cross products when the corresponding vocabularies are present.
func inferRelations(text, lower string, rec types.ExtractionRecord) []types.Relation {
	var rels []types.Relation

	if containsAny(lower, workVocabulary) {
		for _, p := range rec.People {
			for _, o := range rec.Organizations {
				rels = append(rels, types.Relation{From: p, To: o, Type: types.EdgeWorksAt, Evidence: text})
			}
		}
	}

	if containsAny(lower, eventVocabulary) && containsAny(text, eventMarkers) {
		for _, p := range rec.People {
			for _, l := range rec.Locations {
				rels = append(rels, types.Relation{From: p, To: l, Type: types.EdgeAttendedEventAt, Evidence: text})
			}
		}
	}

	return rels
}

// matchNames returns each name contained (case-insensitively) in lower, once,
// in the order given.
func matchNames(lower string, names []string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		if strings.Contains(lower, strings.ToLower(name)) {
			found = append(found, name)
			seen[name] = true
		}
	}
	return found
}

// firstMatch returns the first of subs, in order, that s contains.
func firstMatch(s string, subs []string) (string, bool) {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return sub, true
		}
	}
	return "", false
}

// containsAny reports whether s contains any of the substrings.
func containsAny(s string, subs []string) bool {
	_, ok := firstMatch(s, subs)
	return ok
}

// Preprocess collapses runs of whitespace to a single space and trims the
// result, so names split across line breaks still match.
func Preprocess(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
