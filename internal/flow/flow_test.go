// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flow

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/interview-engine/internal/questions"
	"github.com/pdiddy/interview-engine/pkg/types"
)

func q(id string, timing types.Timing, level types.Level, minutes int) types.InterviewQuestion {
	return types.InterviewQuestion{
		ID: id, Question: id + "?", Timing: timing, Sensitivity: level,
		ExpectedDuration: minutes, FollowUps: []string{"more?"},
	}
}

func ids(qs []types.InterviewQuestion) []string {
	out := make([]string, len(qs))
	for i, x := range qs {
		out[i] = x.ID
	}
	return out
}

func TestAssembleEmpty(t *testing.T) {
	for name, in := range map[string][]types.InterviewQuestion{"nil": nil, "empty": {}} {
		t.Run(name, func(t *testing.T) {
			f := Assemble(in)
			assert.Empty(t, f.Questions)
			assert.NotNil(t, f.Questions)
			assert.Empty(t, f.Transitions)
			assert.Zero(t, f.EstimatedDuration)
			assert.Zero(t, f.DifficultyLevel)
			assert.Len(t, f.EmotionalArc, 4)
		})
	}
}

func TestAssembleSingle(t *testing.T) {
	f := Assemble([]types.InterviewQuestion{q("only", types.TimingLate, types.LevelMedium, 7)})
	require.Len(t, f.Questions, 1)
	assert.Empty(t, f.Transitions)
	assert.Equal(t, 7, f.EstimatedDuration)
	assert.InDelta(t, 0.5, f.DifficultyLevel, 1e-9)
}

func TestAssembleTransitionCount(t *testing.T) {
	for n := 0; n <= 6; n++ {
		qs := make([]types.InterviewQuestion, n)
		for i := range qs {
			qs[i] = q(fmt.Sprintf("q%d", i), types.TimingMiddle, types.LevelLow, 1)
		}
		f := Assemble(qs)
		want := n - 1
		if want < 0 {
			want = 0
		}
		assert.Len(t, f.Transitions, want, "n=%d", n)
	}
}

func TestAssembleStableSort(t *testing.T) {
	in := []types.InterviewQuestion{
		q("late-a", types.TimingLate, types.LevelLow, 1),
		q("mid-a", types.TimingMiddle, types.LevelLow, 1),
		q("early-a", types.TimingEarly, types.LevelLow, 1),
		q("mid-b", types.TimingMiddle, types.LevelLow, 1),
		q("late-b", types.TimingLate, types.LevelLow, 1),
		q("early-b", types.TimingEarly, types.LevelLow, 1),
	}
	f := Assemble(in)
	assert.Equal(t, []string{"early-a", "early-b", "mid-a", "mid-b", "late-a", "late-b"}, ids(f.Questions))

	// Swapping two questions in one bucket swaps them in the output only.
	in[1], in[3] = in[3], in[1]
	f = Assemble(in)
	assert.Equal(t, []string{"early-a", "early-b", "mid-b", "mid-a", "late-a", "late-b"}, ids(f.Questions))

	for i := 1; i < len(f.Questions); i++ {
		assert.LessOrEqual(t, f.Questions[i-1].Timing.Rank(), f.Questions[i].Timing.Rank())
	}
}

func TestAssembleTransitionsFollowOrder(t *testing.T) {
	f := Assemble([]types.InterviewQuestion{
		q("b", types.TimingLate, types.LevelLow, 1),
		q("a", types.TimingEarly, types.LevelLow, 1),
		q("c", types.TimingLate, types.LevelLow, 1),
	})
	require.Len(t, f.Transitions, 2)
	assert.Equal(t, "a", f.Transitions[0].FromID)
	assert.Equal(t, "b", f.Transitions[0].ToID)
	assert.Equal(t, "b", f.Transitions[1].FromID)
	assert.Equal(t, "c", f.Transitions[1].ToID)
	for _, tr := range f.Transitions {
		assert.Equal(t, "natural", tr.Type)
		assert.Equal(t, transitionScript, tr.Script)
		assert.NotEmpty(t, tr.Trigger)
	}
}

func TestAssembleDurationAndDifficulty(t *testing.T) {
	in := []types.InterviewQuestion{
		q("a", types.TimingEarly, types.LevelLow, 3),
		q("b", types.TimingMiddle, types.LevelHigh, 5),
		q("c", types.TimingMiddle, types.LevelLow, 4),
		q("d", types.TimingLate, types.LevelLow, 6),
	}
	f := Assemble(in)
	assert.Equal(t, 18, f.EstimatedDuration)
	assert.Equal(t, 0.8, f.DifficultyLevel)
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name   string
		levels []types.Level
		want   float64
	}{
		{name: "empty", want: 0},
		{name: "all low", levels: []types.Level{types.LevelLow, types.LevelLow}, want: 0.2},
		{name: "medium wins", levels: []types.Level{types.LevelLow, types.LevelMedium}, want: 0.5},
		{name: "high wins", levels: []types.Level{types.LevelMedium, types.LevelHigh, types.LevelLow}, want: 0.8},
		{name: "unknown ignored", levels: []types.Level{"extreme", types.LevelLow}, want: 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var qs []types.InterviewQuestion
			for i, l := range tt.levels {
				qs = append(qs, q(fmt.Sprint(i), types.TimingEarly, l, 1))
			}
			assert.Equal(t, tt.want, DifficultyLevel(qs))
		})
	}
}

func TestAssembleDoesNotModifyInput(t *testing.T) {
	in := []types.InterviewQuestion{
		q("late", types.TimingLate, types.LevelLow, 1),
		q("early", types.TimingEarly, types.LevelLow, 1),
	}
	f := Assemble(in)
	f.Questions[0].FollowUps[0] = "changed"

	assert.Equal(t, []string{"late", "early"}, ids(in))
	assert.Equal(t, "more?", in[1].FollowUps[0])
}

func TestEmotionalArcIsFixed(t *testing.T) {
	arc := EmotionalArc()
	require.Len(t, arc, 4)

	positions := []float64{0, 0.3, 0.7, 1.0}
	emotions := []string{"comfortable", "engaged", "reflective", "closure"}
	for i, cp := range arc {
		assert.Equal(t, positions[i], cp.Position)
		assert.Equal(t, emotions[i], cp.TargetEmotion)
		assert.NotEmpty(t, cp.Techniques)
	}

	arc[0].Techniques[0] = "mutated"
	assert.NotEqual(t, "mutated", EmotionalArc()[0].Techniques[0])
}

func TestAssemblerConfig(t *testing.T) {
	orig := newFlowID
	newFlowID = func() string { return "flow-test" }
	t.Cleanup(func() { newFlowID = orig })

	f := New(types.FlowConfig{Title: "Oral history: Rose"}).Assemble(nil)
	assert.Equal(t, "flow-test", f.ID)
	assert.Equal(t, "Oral history: Rose", f.Title)
	assert.Equal(t, defaultDescription, f.Description)
}

func TestFlowIDsAreUnique(t *testing.T) {
	a, b := Assemble(nil), Assemble(nil)
	assert.True(t, strings.HasPrefix(a.ID, "flow-"))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGenerateThenAssemble(t *testing.T) {
	analysis := types.DocumentAnalysis{
		Themes:         []types.Theme{{ID: "identity", Name: "Identity", Relevance: types.LevelHigh, Confidence: 0.7}},
		Characters:     []types.Character{{ID: "mom", Name: "Mom", EmotionalState: "sad", Importance: 0.9}},
		Timeline:       []types.TimelineEvent{{ID: "exile", Title: "the exile", Type: types.EventTurningPoint}},
		EmotionalBeats: []types.EmotionalBeat{{ID: "b1", Emotion: "fear", Position: 0.2, Intensity: 0.9}},
		SensitiveTopics: []types.SensitiveTopic{
			{ID: "war", Topic: "war", Severity: types.LevelHigh},
		},
	}
	qs := questions.Generate(analysis)
	require.Len(t, qs, 12)

	f := Assemble(qs)
	require.Len(t, f.Questions, 12)
	assert.Len(t, f.Transitions, 11)
	assert.Equal(t, 0.8, f.DifficultyLevel)

	want := 0
	for _, x := range qs {
		want += x.ExpectedDuration
	}
	assert.Equal(t, want, f.EstimatedDuration)

	pos := map[string]int{}
	for i, x := range f.Questions {
		pos[x.ID] = i
	}
	assert.Equal(t, types.TimingEarly, f.Questions[pos["beat-b1"]].Timing)
	assert.Less(t, pos["beat-b1"], pos["timeline-exile"])
	assert.Less(t, pos["beat-b1"], pos["character-mom-1"])
	assert.Less(t, pos["timeline-exile"], pos["sensitive-war"])
	assert.Less(t, pos["character-mom-2"], pos["sensitive-war"])
	assert.Equal(t, "opening-1", f.Questions[0].ID)
}
