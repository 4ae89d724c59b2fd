// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// QuestionCategory groups interview questions by the kind of answer they seek.
type QuestionCategory string

const (
	CategoryPersonal     QuestionCategory = "personal"
	CategoryFactual      QuestionCategory = "factual"
	CategoryEmotional    QuestionCategory = "emotional"
	CategoryContextual   QuestionCategory = "contextual"
	CategoryReflective   QuestionCategory = "reflective"
	CategoryRelationship QuestionCategory = "relationship"
	CategoryHistorical   QuestionCategory = "historical"
	CategoryCultural     QuestionCategory = "cultural"
)

// QuestionType describes the form of a question.
type QuestionType string

const (
	TypeOpenEnded   QuestionType = "open-ended"
	TypeDescriptive QuestionType = "descriptive"
	TypeReflective  QuestionType = "reflective"
)

// Timing is the coarse placement bucket of a question within an interview.
type Timing string

const (
	TimingEarly  Timing = "early"
	TimingMiddle Timing = "middle"
	TimingLate   Timing = "late"
)

// Rank orders timing buckets: early (0) < middle (1) < late (2).
// Unknown values sort with middle.
func (t Timing) Rank() int {
	switch t {
	case TimingEarly:
		return 0
	case TimingLate:
		return 2
	default:
		return 1
	}
}

// InterviewQuestion is one entry of the generated question bank.
// Its ID is stable once created; edits produce new values rather than
// mutating a shared one.
type InterviewQuestion struct {
	ID       string           `json:"id" yaml:"id"`
	Question string           `json:"question" yaml:"question"`
	Category QuestionCategory `json:"category" yaml:"category"`
	Type     QuestionType     `json:"type" yaml:"type"`

	// Sensitivity rates the emotional or cultural weight of the question.
	Sensitivity Level  `json:"sensitivity" yaml:"sensitivity"`
	Timing      Timing `json:"timing" yaml:"timing"`

	FollowUps []string `json:"followUps" yaml:"followUps"`

	// Context explains where the question came from, for the interviewer.
	Context      string   `json:"context" yaml:"context"`
	Alternatives []string `json:"alternatives" yaml:"alternatives"`

	// CulturalNotes is set for questions that touch sensitive topics.
	CulturalNotes string `json:"culturalNotes,omitempty" yaml:"culturalNotes,omitempty"`

	// ExpectedDuration is the expected answer length in minutes.
	ExpectedDuration int `json:"expectedDuration" yaml:"expectedDuration"`

	EmotionalImpact   float64  `json:"emotionalImpact" yaml:"emotionalImpact"`
	NarrativeValue    float64  `json:"narrativeValue" yaml:"narrativeValue"`
	RelatedThemes     []string `json:"relatedThemes" yaml:"relatedThemes"`
	RelatedCharacters []string `json:"relatedCharacters" yaml:"relatedCharacters"`
}

// QuestionBank is the on-disk form of a generated question list.
type QuestionBank struct {
	AnalysisID string              `json:"analysisId" yaml:"analysisId"`
	Questions  []InterviewQuestion `json:"questions" yaml:"questions"`
}
