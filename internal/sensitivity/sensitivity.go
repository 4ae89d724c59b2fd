// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sensitivity screens interview question wording for judgmental
// phrasing and culturally loaded terms.
//
// Check is a pure function of the question text: it keeps no state and may
// be called concurrently.
package sensitivity

import (
	"fmt"
	"math"
	"strings"

	"github.com/pdiddy/interview-engine/pkg/types"
)

// judgmentalPhrases signal blame or hindsight. Matching is a case-insensitive
// substring test, so "fault" also matches "default".
var judgmentalPhrases = []string{
	"why didn't you",
	"you should have",
	"fault",
	"blame",
	"wrong",
}

// culturalTerms carry different weight across cultures and families.
var culturalTerms = []string{
	"family honor",
	"shame",
	"tradition",
	"religion",
}

const (
	issuePenalty = 0.3
	flagPenalty  = 0.2
)

// recommendations is returned with every check regardless of findings.
// TODO: decide whether recommendations should depend on the issues found.
var recommendations = [...]string{
	"Let the interviewee set the pace on difficult topics",
	"Make it clear that any question can be skipped",
	"Prefer open, non-judgmental phrasing over why-questions",
	"Be mindful of cultural and family context before probing further",
}

// Check screens the text of q.
func Check(q types.InterviewQuestion) types.SensitivityCheck {
	text := strings.ToLower(q.Question)

	issues := []types.SensitivityIssue{}
	for _, phrase := range judgmentalPhrases {
		if strings.Contains(text, phrase) {
			issues = append(issues, types.SensitivityIssue{
				Type:        types.IssueEmotional,
				Severity:    types.LevelHigh,
				Description: fmt.Sprintf("contains potentially judgmental phrase %q", phrase),
				Suggestion:  "rephrase as an open question about the experience rather than the choice",
			})
		}
	}

	flags := []types.CulturalFlag{}
	for _, term := range culturalTerms {
		if strings.Contains(text, term) {
			flags = append(flags, types.CulturalFlag{
				Term:     term,
				Severity: types.LevelMedium,
				Note:     fmt.Sprintf("%q may carry different meaning across cultures", term),
			})
		}
	}

	recs := make([]string, len(recommendations))
	copy(recs, recommendations[:])

	return types.SensitivityCheck{
		QuestionID:      q.ID,
		Issues:          issues,
		CulturalFlags:   flags,
		Recommendations: recs,
		OverallScore:    score(len(issues), len(flags)),
	}
}

// CheckAll screens each question in order.
func CheckAll(qs []types.InterviewQuestion) []types.SensitivityCheck {
	out := make([]types.SensitivityCheck, len(qs))
	for i, q := range qs {
		out[i] = Check(q)
	}
	return out
}

func score(issues, flags int) float64 {
	return math.Max(0, 1-issuePenalty*float64(issues)-flagPenalty*float64(flags))
}
