// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package flow assembles a question list into an ordered conversation flow
// with transitions, a duration estimate, a difficulty level, and the target
// emotional arc.
package flow

import (
	"slices"

	"github.com/google/uuid"

	"github.com/pdiddy/interview-engine/internal/questions"
	"github.com/pdiddy/interview-engine/pkg/types"
)

const (
	defaultTitle       = "Interview Conversation Flow"
	defaultDescription = "Question sequence ordered from rapport-building to reflection"

	transitionTrigger = "response-complete"
	transitionType    = "natural"
	transitionScript  = "Thank you for sharing that. If it's all right, I'd like to build on what you just said."
)

// sensitivityScores weights each sensitivity level for the difficulty level.
var sensitivityScores = map[types.Level]float64{
	types.LevelHigh:   0.8,
	types.LevelMedium: 0.5,
	types.LevelLow:    0.2,
}

// newFlowID is replaced in tests.
var newFlowID = func() string { return "flow-" + uuid.NewString() }

// Assembler builds conversation flows. It is safe for concurrent use.
type Assembler struct {
	title       string
	description string
}

// New returns an Assembler; empty config fields use the default title and
// description.
func New(cfg types.FlowConfig) *Assembler {
	a := &Assembler{title: defaultTitle, description: defaultDescription}
	if cfg.Title != "" {
		a.title = cfg.Title
	}
	if cfg.Description != "" {
		a.description = cfg.Description
	}
	return a
}

// Assemble builds a flow with the default title and description.
func Assemble(qs []types.InterviewQuestion) types.ConversationFlow {
	return New(types.FlowConfig{}).Assemble(qs)
}

// Assemble orders questions by timing bucket, keeping the input order within
// a bucket, and derives the flow around that order. The input slice is not
// modified.
func (a *Assembler) Assemble(qs []types.InterviewQuestion) types.ConversationFlow {
	ordered := make([]types.InterviewQuestion, len(qs))
	for i, q := range qs {
		ordered[i] = questions.Clone(q)
	}
	slices.SortStableFunc(ordered, func(x, y types.InterviewQuestion) int {
		return x.Timing.Rank() - y.Timing.Rank()
	})

	return types.ConversationFlow{
		ID:                newFlowID(),
		Title:             a.title,
		Description:       a.description,
		Questions:         ordered,
		Transitions:       transitions(ordered),
		AlternativePaths:  []types.AlternativePath{},
		EstimatedDuration: EstimatedDuration(ordered),
		DifficultyLevel:   DifficultyLevel(ordered),
		EmotionalArc:      EmotionalArc(),
	}
}

func transitions(ordered []types.InterviewQuestion) []types.Transition {
	if len(ordered) < 2 {
		return []types.Transition{}
	}
	out := make([]types.Transition, 0, len(ordered)-1)
	for i := 0; i+1 < len(ordered); i++ {
		out = append(out, types.Transition{
			FromID:  ordered[i].ID,
			ToID:    ordered[i+1].ID,
			Trigger: transitionTrigger,
			Type:    transitionType,
			Script:  transitionScript,
		})
	}
	return out
}

// EstimatedDuration sums the expected durations of qs in minutes.
func EstimatedDuration(qs []types.InterviewQuestion) int {
	total := 0
	for _, q := range qs {
		total += q.ExpectedDuration
	}
	return total
}

// SensitivityScore maps a sensitivity level to its difficulty weight.
// Unknown levels score zero.
func SensitivityScore(l types.Level) float64 {
	return sensitivityScores[l]
}

// DifficultyLevel is the highest sensitivity score in qs, or 0 for an empty list.
func DifficultyLevel(qs []types.InterviewQuestion) float64 {
	var highest float64
	for _, q := range qs {
		if s := SensitivityScore(q.Sensitivity); s > highest {
			highest = s
		}
	}
	return highest
}

// EmotionalArc returns the fixed target arc for an interview. It does not
// depend on the emotional beats of the analysis.
func EmotionalArc() []types.ArcCheckpoint {
	return []types.ArcCheckpoint{
		{
			Position:      0,
			TargetEmotion: "comfortable",
			Intensity:     0.2,
			Techniques:    []string{"rapport building", "light personal questions"},
		},
		{
			Position:      0.3,
			TargetEmotion: "engaged",
			Intensity:     0.5,
			Techniques:    []string{"active listening", "follow-up prompts"},
		},
		{
			Position:      0.7,
			TargetEmotion: "reflective",
			Intensity:     0.8,
			Techniques:    []string{"comfortable silence", "empathetic validation"},
		},
		{
			Position:      1.0,
			TargetEmotion: "closure",
			Intensity:     0.3,
			Techniques:    []string{"summarizing", "expressing gratitude"},
		},
	}
}
