// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sensitivity

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/interview-engine/pkg/types"
)

func question(text string) types.InterviewQuestion {
	return types.InterviewQuestion{ID: "q1", Question: text}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantIssues int
		wantFlags  int
		wantScore  float64
	}{
		{name: "neutral", text: "Where did you grow up?", wantScore: 1.0},
		{name: "hindsight", text: "Do you think you should have left sooner?", wantIssues: 1, wantScore: 0.7},
		{name: "case insensitive", text: "WHY DIDN'T YOU call?", wantIssues: 1, wantScore: 0.7},
		{name: "two issues", text: "Was it your fault, or was the blame elsewhere?", wantIssues: 2, wantScore: 0.4},
		{name: "cultural", text: "What did family honor mean in your home?", wantFlags: 1, wantScore: 0.8},
		{name: "mixed", text: "Was it wrong to break with tradition?", wantIssues: 1, wantFlags: 1, wantScore: 0.5},
		{name: "substring match", text: "What was the default plan?", wantIssues: 1, wantScore: 0.7},
		{
			name:       "floored at zero",
			text:       "Why didn't you see you should have known it was wrong, your fault, the blame, the shame?",
			wantIssues: 5, wantFlags: 1, wantScore: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(question(tt.text))
			assert.Equal(t, "q1", got.QuestionID)
			assert.Len(t, got.Issues, tt.wantIssues)
			assert.Len(t, got.CulturalFlags, tt.wantFlags)
			assert.InDelta(t, tt.wantScore, got.OverallScore, 1e-9)
			for _, is := range got.Issues {
				assert.Equal(t, types.LevelHigh, is.Severity)
				assert.Equal(t, types.IssueEmotional, is.Type)
			}
			for _, f := range got.CulturalFlags {
				assert.Equal(t, types.LevelMedium, f.Severity)
			}
		})
	}
}

func TestCheckNeutralScoreIsExactlyOne(t *testing.T) {
	got := Check(question("Tell me about your first job."))
	assert.Equal(t, 1.0, got.OverallScore)
	assert.Empty(t, got.Issues)
	assert.Empty(t, got.CulturalFlags)
}

func TestRecommendationsAreUnconditional(t *testing.T) {
	clean := Check(question("Where were you born?"))
	flagged := Check(question("Whose fault was it?"))

	require.Len(t, clean.Recommendations, 4)
	assert.Equal(t, clean.Recommendations, flagged.Recommendations)

	clean.Recommendations[0] = "mutated"
	assert.NotEqual(t, "mutated", Check(question("x")).Recommendations[0])
}

func TestCheckIsIdempotent(t *testing.T) {
	q := question("You should have told me about the tradition.")
	assert.Equal(t, Check(q), Check(q))
}

func TestCheckConcurrent(t *testing.T) {
	q := question("Was it your fault?")
	want := Check(q)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Check(q))
		}()
	}
	wg.Wait()
}

func TestCheckAll(t *testing.T) {
	qs := []types.InterviewQuestion{
		{ID: "a", Question: "Fine question?"},
		{ID: "b", Question: "Who was to blame?"},
	}
	got := CheckAll(qs)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].QuestionID)
	assert.Equal(t, "b", got[1].QuestionID)
	assert.Len(t, got[1].Issues, 1)

	assert.Empty(t, CheckAll(nil))
}
