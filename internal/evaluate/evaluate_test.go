// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/trait-graph/internal/corpus"
	"github.com/pdiddy/trait-graph/internal/extract"
	"github.com/pdiddy/trait-graph/internal/graph"
	"github.com/pdiddy/trait-graph/pkg/types"
)

// --- helpers ---

func personWithTraits(g *graph.Graph, person string, cats ...types.TraitCategory) {
	g.AddNode(person, types.NodePerson, person)
	for _, c := range cats {
		id := "trait_" + string(c)
		g.AddNode(id, types.NodeTrait, id)
		g.AddEdge(graph.Edge{From: person, To: id, Type: types.EdgeHasTrait, Confidence: types.ConfidenceHigh})
	}
}

func assertBounded(t *testing.T, m types.Metrics) {
	t.Helper()
	for name, v := range map[string]float64{"precision": m.Precision, "recall": m.Recall, "f1": m.F1} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 1.0, name)
	}
}

// --- GroundTruth ---

func TestGroundTruthExcludesLowLevels(t *testing.T) {
	people := []types.KnownEntity{
		{Name: "Mark Thompson", Traits: map[types.TraitCategory]types.TraitLevel{
			types.Openness:          types.LevelLow,
			types.Conscientiousness: types.LevelHigh,
			types.Extraversion:      types.LevelMedium,
			types.Agreeableness:     types.LevelLow,
			types.Neuroticism:       types.LevelMedium,
		}},
		{Name: "No Profile"},
	}

	truth := GroundTruth(people)
	require.Len(t, truth, 1)
	assert.Equal(t, "Mark Thompson", truth[0].Person)
	assert.Equal(t, []string{"trait_conscientiousness", "trait_extraversion", "trait_neuroticism"}, truth[0].Traits)
	assert.NotContains(t, truth[0].Traits, "trait_openness")
	assert.NotContains(t, truth[0].Traits, "trait_agreeableness")
}

func TestGroundTruthDefaultCorpusNeverContainsLow(t *testing.T) {
	c, err := corpus.Default()
	require.NoError(t, err)

	truth := GroundTruth(c.People)
	require.Len(t, truth, len(c.People))
	for i, p := range c.People {
		for cat, lvl := range p.Traits {
			if lvl == types.LevelLow {
				assert.NotContains(t, truth[i].Traits, "trait_"+string(cat), p.Name)
			}
		}
	}
}

// --- Compute ---

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		counts types.Counts
		want   types.Metrics
	}{
		{"perfect", types.Counts{TP: 3}, types.Metrics{Precision: 1, Recall: 1, F1: 1}},
		{"all zero", types.Counts{}, types.Metrics{}},
		{"only false negatives", types.Counts{FN: 2}, types.Metrics{}},
		{"only false positives", types.Counts{FP: 2}, types.Metrics{}},
		{"mixed", types.Counts{TP: 1, FP: 1, FN: 2}, types.Metrics{Precision: 0.5, Recall: 1.0 / 3, F1: 0.4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.counts)
			assert.InDelta(t, tt.want.Precision, got.Precision, 1e-9)
			assert.InDelta(t, tt.want.Recall, got.Recall, 1e-9)
			assert.InDelta(t, tt.want.F1, got.F1, 1e-9)
			assertBounded(t, got)
			if tt.counts.TP == 0 {
				assert.Zero(t, got.F1)
			}
		})
	}
}

// --- Score ---

func TestScore(t *testing.T) {
	g := graph.New()
	personWithTraits(g, "Emily Watson", types.Openness, types.Extraversion)

	results := Score(g, []Truth{
		{Person: "Emily Watson", Traits: []string{"trait_agreeableness", "trait_conscientiousness", "trait_openness"}},
	})
	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, types.Counts{TP: 1, FP: 1, FN: 2}, r.Counts)
	assert.Equal(t, []string{"trait_extraversion", "trait_openness"}, r.Predicted)
	assert.Equal(t, []string{"trait_agreeableness", "trait_conscientiousness", "trait_openness"}, r.Expected)
}

func TestScoreIgnoresNonTraitNeighbors(t *testing.T) {
	g := graph.New()
	personWithTraits(g, "Emily Watson", types.Openness)
	g.AddNode("Seattle", types.NodeLocation, "Seattle")
	g.AddEdge(graph.Edge{From: "Emily Watson", To: "Seattle", Type: types.EdgeAttendedEventAt})

	r := Score(g, []Truth{{Person: "Emily Watson", Traits: []string{"trait_openness"}}})[0]
	assert.Equal(t, []string{"trait_openness"}, r.Predicted)
	assert.Equal(t, types.Counts{TP: 1}, r.Counts)
}

func TestScoreMissingPersonNode(t *testing.T) {
	g := graph.New()
	personWithTraits(g, "Sarah Chen", types.Openness)

	r := Score(g, []Truth{{Person: "Alex Kim", Traits: []string{"trait_openness", "trait_conscientiousness"}}})[0]
	assert.Empty(t, r.Predicted)
	assert.Equal(t, types.Counts{FN: 2}, r.Counts)
	assert.Equal(t, types.Metrics{}, r.Metrics)
}

// --- reducers ---

func TestMicroAndMacroDiverge(t *testing.T) {
	g := graph.New()
	personWithTraits(g, "A", types.Openness)
	personWithTraits(g, "B")
	truth := []Truth{
		{Person: "A", Traits: []string{"trait_openness"}},     // TP=1 FP=0 FN=0
		{Person: "B", Traits: []string{"trait_neuroticism"}}, // TP=0 FP=0 FN=1
	}

	results := Score(g, truth)
	macro := MacroAverage(results)
	micro := MicroAverage(results)

	assert.InDelta(t, 0.5, macro.F1, 1e-9)
	assert.InDelta(t, 0.5, macro.Precision, 1e-9)
	assert.InDelta(t, 0.5, macro.Recall, 1e-9)

	assert.Equal(t, types.Counts{TP: 1, FN: 1}, micro.Counts)
	assert.InDelta(t, 2.0/3.0, micro.F1, 1e-9)
	assert.InDelta(t, 1.0, micro.Precision, 1e-9)
	assert.InDelta(t, 0.5, micro.Recall, 1e-9)
}

func TestReducersOnNoResults(t *testing.T) {
	assert.Equal(t, types.Metrics{}, MacroAverage(nil))
	assert.Equal(t, types.Aggregate{}, MicroAverage(nil))
}

// --- Evaluate ---

func TestEvaluateNilGraph(t *testing.T) {
	for _, mode := range []types.EvaluationMode{types.ModeDetailed, types.ModeAggregated} {
		t.Run(string(mode), func(t *testing.T) {
			r := Evaluate(nil, []Truth{{Person: "A", Traits: []string{"trait_openness"}}}, mode)
			assert.Equal(t, ErrNoGraph.Error(), r.Error)
			assert.Empty(t, r.People)
			assert.Nil(t, r.MacroAverage)
			assert.Nil(t, r.Aggregated)
		})
	}
}

func TestEvaluateEmptyCorpus(t *testing.T) {
	c, err := corpus.Default()
	require.NoError(t, err)

	g := graph.NewBuilder(extract.New(&c.Registry)).Build([]string{})
	require.Equal(t, 0, g.NodeCount())
	require.Equal(t, 0, g.EdgeCount())
	truth := GroundTruth(c.People)

	detailed := Detailed(g, truth)
	assert.True(t, detailed.Empty)
	assert.Empty(t, detailed.Error)
	require.Len(t, detailed.People, len(truth))
	for _, r := range detailed.People {
		assert.Equal(t, types.Metrics{}, r.Metrics, r.Person)
		assert.Zero(t, r.TP)
		assert.Zero(t, r.FP)
		assert.Equal(t, len(r.Expected), r.FN)
	}
	require.NotNil(t, detailed.MacroAverage)
	assert.Equal(t, types.Metrics{}, *detailed.MacroAverage)

	aggregated := Aggregated(g, truth)
	assert.True(t, aggregated.Empty)
	require.NotNil(t, aggregated.Aggregated)
	assert.Equal(t, types.Metrics{}, aggregated.Aggregated.Metrics)
	assert.Nil(t, aggregated.MacroAverage)
}

func TestEvaluateUnknownModeIsDetailed(t *testing.T) {
	r := Evaluate(graph.New(), nil, "fancy")
	assert.Equal(t, types.ModeDetailed, r.Mode)
	assert.Nil(t, r.MacroAverage)
}

func TestEvaluateDefaultCorpus(t *testing.T) {
	c, err := corpus.Default()
	require.NoError(t, err)

	g := graph.NewBuilder(extract.New(&c.Registry)).Build(c.Texts)
	truth := GroundTruth(c.People)

	detailed := Detailed(g, truth)
	require.Len(t, detailed.People, 6)
	for _, r := range detailed.People {
		assertBounded(t, r.Metrics)
	}

	sarah := detailed.People[0]
	assert.Equal(t, "Sarah Chen", sarah.Person)
	assert.Equal(t, types.Counts{TP: 2, FP: 0, FN: 2}, sarah.Counts)
	assert.Equal(t, []string{"trait_agreeableness", "trait_conscientiousness"}, sarah.Predicted)

	mark := detailed.People[3]
	assert.Equal(t, "Mark Thompson", mark.Person)
	assert.Equal(t, types.Counts{TP: 1, FP: 1, FN: 2}, mark.Counts)

	require.NotNil(t, detailed.MacroAverage)
	assert.InDelta(t, 5.0/6.0, detailed.MacroAverage.Precision, 1e-9)
	assert.InDelta(t, 0.4583333333, detailed.MacroAverage.Recall, 1e-9)
	assert.InDelta(t, 0.5777777778, detailed.MacroAverage.F1, 1e-9)

	aggregated := Aggregated(g, truth)
	require.NotNil(t, aggregated.Aggregated)
	assert.Equal(t, types.Counts{TP: 9, FP: 2, FN: 11}, aggregated.Aggregated.Counts)
	assert.InDelta(t, 9.0/11.0, aggregated.Aggregated.Precision, 1e-9)
	assert.InDelta(t, 0.45, aggregated.Aggregated.Recall, 1e-9)
	assertBounded(t, aggregated.Aggregated.Metrics)
}

func TestEvaluateDoesNotMutateGraph(t *testing.T) {
	g := graph.New()
	personWithTraits(g, "A", types.Openness)
	nodes, edges := g.NodeCount(), g.EdgeCount()

	Detailed(g, []Truth{{Person: "A"}, {Person: "Z", Traits: []string{"trait_openness"}}})
	Aggregated(g, []Truth{{Person: "A"}})

	assert.Equal(t, nodes, g.NodeCount())
	assert.Equal(t, edges, g.EdgeCount())
	assert.False(t, g.HasNode("Z"))
}
