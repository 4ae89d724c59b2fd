// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/pdiddy/interview-engine/pkg/types"
)

// QueryOptions holds parameters for question searches.
type QueryOptions struct {
	// Query is a case-insensitive substring of the question text.
	Query string

	Category    types.QuestionCategory
	Sensitivity types.Level
	Timing      types.Timing
	ProjectID   string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search text or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Category == "" && q.Sensitivity == "" && q.Timing == "" && q.ProjectID == ""
}

// QueryResult is a stored question with its project.
type QueryResult struct {
	types.InterviewQuestion
	ProjectID    string `json:"projectId" yaml:"projectId"`
	ProjectTitle string `json:"projectTitle" yaml:"projectTitle"`
	Position     int    `json:"position" yaml:"position"`
}

// Search finds stored questions matching opts, ordered by project and
// position within the project's question bank.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT q.project_id, p.title, q.position, q.data
		FROM questions q
		JOIN projects p ON p.id = q.project_id
		WHERE 1=1`)

	if opts.Query != "" {
		qb.WriteString(` AND instr(lower(q.question), lower(?)) > 0`)
		args = append(args, opts.Query)
	}
	if opts.Category != "" {
		qb.WriteString(` AND q.category = ?`)
		args = append(args, string(opts.Category))
	}
	if opts.Sensitivity != "" {
		qb.WriteString(` AND q.sensitivity = ?`)
		args = append(args, string(opts.Sensitivity))
	}
	if opts.Timing != "" {
		qb.WriteString(` AND q.timing = ?`)
		args = append(args, string(opts.Timing))
	}
	if opts.ProjectID != "" {
		qb.WriteString(` AND q.project_id = ?`)
		args = append(args, opts.ProjectID)
	}

	qb.WriteString(` ORDER BY q.project_id, q.position LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, eris.Wrap(err, "project: search questions")
	}
	defer rows.Close()

	results := []QueryResult{}
	for rows.Next() {
		var (
			r    QueryResult
			data string
		)
		if err := rows.Scan(&r.ProjectID, &r.ProjectTitle, &r.Position, &data); err != nil {
			return nil, eris.Wrap(err, "project: scan result")
		}
		if err := json.Unmarshal([]byte(data), &r.InterviewQuestion); err != nil {
			return nil, eris.Wrap(err, "project: decode question")
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
