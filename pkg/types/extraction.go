// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Confidence is the qualitative certainty attached to a trait mention.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
)

// NodeType tags a graph node with its entity kind.
type NodeType string

const (
	NodePerson       NodeType = "person"
	NodeOrganization NodeType = "organization"
	NodeLocation     NodeType = "location"
	NodeTrait        NodeType = "personality_trait"
)

// EdgeType tags a graph edge with its relationship kind.
type EdgeType string

const (
	EdgeHasTrait        EdgeType = "has_trait"
	EdgeWorksAt         EdgeType = "works_at"
	EdgeAttendedEventAt EdgeType = "attended_event_at"
)

// TraitMention records one trait category detected in a text unit.
type TraitMention struct {
	// Category is the normalized OCEAN category.
	Category TraitCategory `json:"category" yaml:"category"`

	// Confidence is high when the unit mentions at least one known person.
	Confidence Confidence `json:"confidence" yaml:"confidence"`

	// Keyword is the table keyword that triggered the mention.
	Keyword string `json:"keyword" yaml:"keyword"`

	// Evidence is the full text unit the mention came from.
	Evidence string `json:"evidence" yaml:"evidence"`

	// RelatedPeople is the snapshot of people detected in the same unit.
	RelatedPeople []string `json:"related_people" yaml:"related_people"`
}

// Relation is an inferred typed relationship between two detected entities.
type Relation struct {
	From     string   `json:"from" yaml:"from"`
	To       string   `json:"to" yaml:"to"`
	Type     EdgeType `json:"type" yaml:"type"`
	Evidence string   `json:"evidence" yaml:"evidence"`
}

// ExtractionRecord holds everything detected in one text unit.
type ExtractionRecord struct {
	// Text is the source text unit.
	Text string `json:"text" yaml:"text"`

	// People, Organizations, and Locations hold each matched name once, in
	// registry order.
	People        []string `json:"people" yaml:"people"`
	Organizations []string `json:"organizations" yaml:"organizations"`
	Locations     []string `json:"locations" yaml:"locations"`

	// Traits holds at most one mention per category, in keyword-table order.
	Traits []TraitMention `json:"traits" yaml:"traits"`

	// Relations is empty unless relation inference is enabled.
	Relations []Relation `json:"relations,omitempty" yaml:"relations,omitempty"`
}
