// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// IssueType classifies a sensitivity issue.
type IssueType string

const (
	IssueEmotional IssueType = "emotional"
	IssueCultural  IssueType = "cultural"
)

// SensitivityIssue is a problem found in a question's wording.
type SensitivityIssue struct {
	Type        IssueType `json:"type" yaml:"type"`
	Severity    Level     `json:"severity" yaml:"severity"`
	Description string    `json:"description" yaml:"description"`
	Suggestion  string    `json:"suggestion" yaml:"suggestion"`
}

// CulturalFlag marks a culturally loaded term found in a question.
type CulturalFlag struct {
	Term     string `json:"term" yaml:"term"`
	Severity Level  `json:"severity" yaml:"severity"`
	Note     string `json:"note" yaml:"note"`
}

// SensitivityCheck is the derived screening result for one question.
// It is recomputed on demand and never persisted by the project store.
type SensitivityCheck struct {
	QuestionID      string             `json:"questionId" yaml:"questionId"`
	Issues          []SensitivityIssue `json:"issues" yaml:"issues"`
	CulturalFlags   []CulturalFlag     `json:"culturalFlags" yaml:"culturalFlags"`
	Recommendations []string           `json:"recommendations" yaml:"recommendations"`

	// OverallScore is 1.0 for a clean question and drops toward 0.0 with findings.
	OverallScore float64 `json:"overallScore" yaml:"overallScore"`
}

// SensitivityReport is the on-disk form of the checks for a question bank.
type SensitivityReport struct {
	AnalysisID string             `json:"analysisId" yaml:"analysisId"`
	Checks     []SensitivityCheck `json:"checks" yaml:"checks"`
}
