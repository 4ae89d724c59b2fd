// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Project is a stored analysis together with its question bank and flow.
type Project struct {
	ID        string              `json:"id" yaml:"id"`
	Title     string              `json:"title" yaml:"title"`
	Analysis  DocumentAnalysis    `json:"analysis" yaml:"analysis"`
	Questions []InterviewQuestion `json:"questions" yaml:"questions"`

	// Flow is nil for projects saved before assembly.
	Flow *ConversationFlow `json:"flow,omitempty" yaml:"flow,omitempty"`

	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// ProjectSummary is the listing form of a stored project.
type ProjectSummary struct {
	ID                string    `json:"id" yaml:"id"`
	Title             string    `json:"title" yaml:"title"`
	QuestionCount     int       `json:"questionCount" yaml:"questionCount"`
	EstimatedDuration int       `json:"estimatedDuration" yaml:"estimatedDuration"`
	DifficultyLevel   float64   `json:"difficultyLevel" yaml:"difficultyLevel"`
	UpdatedAt         time.Time `json:"updatedAt" yaml:"updatedAt"`
}
