// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/interview-engine/pkg/types"
)

func editList() []types.InterviewQuestion {
	return []types.InterviewQuestion{
		{ID: "a", Question: "A?", FollowUps: []string{"more?"}},
		{ID: "b", Question: "B?", FollowUps: []string{"more?"}},
		{ID: "c", Question: "C?", FollowUps: []string{"more?"}},
	}
}

func TestUpdate(t *testing.T) {
	list := editList()
	out, err := Update(list, "b", func(q *types.InterviewQuestion) {
		q.Question = "B2?"
		q.FollowUps[0] = "changed"
	})
	require.NoError(t, err)
	assert.Equal(t, "B2?", out[1].Question)
	assert.Equal(t, "changed", out[1].FollowUps[0])

	assert.Equal(t, "B?", list[1].Question)
	assert.Equal(t, "more?", list[1].FollowUps[0])
}

func TestUpdateErrors(t *testing.T) {
	_, err := Update(editList(), "zzz", func(q *types.InterviewQuestion) {})
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	_, err = Update(editList(), "a", func(q *types.InterviewQuestion) { q.ID = "x" })
	assert.Error(t, err)
}

func TestDuplicate(t *testing.T) {
	list := editList()
	out, err := Duplicate(list, "a", "a-copy")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a-copy", "b", "c"}, ids(out))
	assert.Equal(t, "A?", out[1].Question)
	assert.Len(t, list, 3)

	_, err = Duplicate(list, "a", "b")
	assert.ErrorIs(t, err, ErrDuplicateID)
	_, err = Duplicate(list, "nope", "x")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestRemove(t *testing.T) {
	list := editList()
	out, err := Remove(list, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, ids(out))
	assert.Equal(t, []string{"a", "b", "c"}, ids(list))

	_, err = Remove(list, "nope")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		id   string
		to   int
		want []string
	}{
		{name: "to front", id: "c", to: 0, want: []string{"c", "a", "b"}},
		{name: "to back", id: "a", to: 2, want: []string{"b", "c", "a"}},
		{name: "clamped high", id: "a", to: 10, want: []string{"b", "c", "a"}},
		{name: "clamped low", id: "b", to: -1, want: []string{"b", "a", "c"}},
		{name: "same place", id: "b", to: 1, want: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := editList()
			out, err := Move(list, tt.id, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(out))
			assert.Equal(t, []string{"a", "b", "c"}, ids(list))
		})
	}
}
