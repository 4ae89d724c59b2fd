// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlternatives(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     []string
	}{
		{
			name:     "two substitutions",
			question: "Can you tell me What happened?",
			want: []string{
				"Could you tell me What happened?",
				"Can you tell me In your own words, what happened?",
			},
		},
		{
			name:     "stops at two",
			question: "Can you say How did it feel? What now?",
			want: []string{
				"Could you say How did it feel? What now?",
				"Can you say In what ways did it feel? What now?",
			},
		},
		{
			name:     "no matching phrase",
			question: "Where were you born?",
			want:     []string{},
		},
		{
			name:     "single substitution",
			question: "Tell me about Dad.",
			want:     []string{"I'd love to hear about Dad."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Alternatives(tt.question)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, tt.question)
		})
	}
}

func TestFollowUpsReturnsCopy(t *testing.T) {
	a := FollowUps()
	a[0] = "mutated"
	b := FollowUps()
	assert.Len(t, b, 3)
	assert.Equal(t, "Can you tell me more about that?", b[0])
}
