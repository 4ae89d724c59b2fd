// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package questions

import (
	"github.com/rotisserie/eris"

	"github.com/pdiddy/interview-engine/pkg/types"
)

var (
	// ErrQuestionNotFound is returned when an edit names an unknown question id.
	ErrQuestionNotFound = eris.New("question not found")

	// ErrDuplicateID is returned when an edit would introduce a second question
	// with the same id.
	ErrDuplicateID = eris.New("duplicate question id")
)

// The edit functions below never modify their input list or the questions in
// it. Each returns a new list whose questions share no slices with the input.

// Find returns the index of the question with id, or -1.
func Find(list []types.InterviewQuestion, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of q.
func Clone(q types.InterviewQuestion) types.InterviewQuestion {
	q.FollowUps = cloneStrings(q.FollowUps)
	q.Alternatives = cloneStrings(q.Alternatives)
	q.RelatedThemes = cloneStrings(q.RelatedThemes)
	q.RelatedCharacters = cloneStrings(q.RelatedCharacters)
	return q
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}

func cloneList(list []types.InterviewQuestion) []types.InterviewQuestion {
	out := make([]types.InterviewQuestion, len(list))
	for i, q := range list {
		out[i] = Clone(q)
	}
	return out
}

// Update applies fn to a copy of the question with id. fn must not change the
// question's id.
func Update(list []types.InterviewQuestion, id string, fn func(*types.InterviewQuestion)) ([]types.InterviewQuestion, error) {
	i := Find(list, id)
	if i < 0 {
		return nil, eris.Wrapf(ErrQuestionNotFound, "update %s", id)
	}
	out := cloneList(list)
	fn(&out[i])
	if out[i].ID != id {
		return nil, eris.Errorf("update %s: id changed to %s", id, out[i].ID)
	}
	return out, nil
}

// Duplicate inserts a copy of the question with id directly after it, under
// newID.
func Duplicate(list []types.InterviewQuestion, id, newID string) ([]types.InterviewQuestion, error) {
	i := Find(list, id)
	if i < 0 {
		return nil, eris.Wrapf(ErrQuestionNotFound, "duplicate %s", id)
	}
	if Find(list, newID) >= 0 {
		return nil, eris.Wrapf(ErrDuplicateID, "duplicate %s as %s", id, newID)
	}
	dup := Clone(list[i])
	dup.ID = newID

	out := make([]types.InterviewQuestion, 0, len(list)+1)
	out = append(out, cloneList(list[:i+1])...)
	out = append(out, dup)
	out = append(out, cloneList(list[i+1:])...)
	return out, nil
}

// Remove returns the list without the question with id.
func Remove(list []types.InterviewQuestion, id string) ([]types.InterviewQuestion, error) {
	i := Find(list, id)
	if i < 0 {
		return nil, eris.Wrapf(ErrQuestionNotFound, "remove %s", id)
	}
	out := make([]types.InterviewQuestion, 0, len(list)-1)
	out = append(out, cloneList(list[:i])...)
	out = append(out, cloneList(list[i+1:])...)
	return out, nil
}

// Move places the question with id at position to, clamped to the list bounds.
func Move(list []types.InterviewQuestion, id string, to int) ([]types.InterviewQuestion, error) {
	i := Find(list, id)
	if i < 0 {
		return nil, eris.Wrapf(ErrQuestionNotFound, "move %s", id)
	}
	if to < 0 {
		to = 0
	}
	if to > len(list)-1 {
		to = len(list) - 1
	}

	rest := make([]types.InterviewQuestion, 0, len(list)-1)
	rest = append(rest, list[:i]...)
	rest = append(rest, list[i+1:]...)

	out := make([]types.InterviewQuestion, 0, len(list))
	out = append(out, rest[:to]...)
	out = append(out, list[i])
	out = append(out, rest[to:]...)
	return cloneList(out), nil
}
