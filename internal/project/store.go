// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package project persists interview projects (analysis, question bank, and
// flow) in a local SQLite database and searches their questions.
package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rotisserie/eris"

	"github.com/pdiddy/interview-engine/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "projects.db"

	// timeFormat is fixed-width so stored timestamps sort as text.
	timeFormat = "2006-01-02T15:04:05.000000000Z07:00"
)

// ErrNotFound is returned when a project id is not in the store.
var ErrNotFound = eris.New("project not found")

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

// Store manages the project SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the project database at
// cfg.OutputDir/index/projects.db and creates the schema if needed.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.OutputDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, eris.Wrap(err, "project: create index directory")
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, eris.Wrap(err, "project: open database")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "project: create schema")
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			title TEXT,
			analysis TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL,
			project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			question TEXT NOT NULL,
			category TEXT,
			sensitivity TEXT,
			timing TEXT,
			data TEXT NOT NULL,
			UNIQUE(project_id, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_project_id ON questions(project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category)`,
		`CREATE TABLE IF NOT EXISTS flows (
			project_id TEXT PRIMARY KEY REFERENCES projects(id) ON DELETE CASCADE,
			flow_id TEXT NOT NULL,
			estimated_duration INTEGER,
			difficulty REAL,
			data TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return eris.Wrap(err, "execute schema statement")
		}
	}
	return nil
}

// Save inserts or replaces p. The question list and flow are replaced as a
// whole; CreatedAt is kept from the first save.
func (s *Store) Save(ctx context.Context, p types.Project) error {
	if p.ID == "" {
		return eris.New("project: save: empty id")
	}
	analysisJSON, err := json.Marshal(p.Analysis)
	if err != nil {
		return eris.Wrap(err, "project: marshal analysis")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "project: begin transaction")
	}
	defer tx.Rollback()

	ts := now().Format(timeFormat)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO projects (id, title, analysis, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, analysis=excluded.analysis, updated_at=excluded.updated_at`,
		p.ID, p.Title, string(analysisJSON), ts, ts,
	)
	if err != nil {
		return eris.Wrap(err, "project: upsert project")
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE project_id = ?`, p.ID); err != nil {
		return eris.Wrap(err, "project: delete old questions")
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM flows WHERE project_id = ?`, p.ID); err != nil {
		return eris.Wrap(err, "project: delete old flow")
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO questions (id, project_id, position, question, category, sensitivity, timing, data)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return eris.Wrap(err, "project: prepare question insert")
	}
	defer stmt.Close()

	for i, q := range p.Questions {
		data, err := json.Marshal(q)
		if err != nil {
			return eris.Wrapf(err, "project: marshal question %s", q.ID)
		}
		_, err = stmt.ExecContext(ctx,
			q.ID, p.ID, i, q.Question,
			string(q.Category), string(q.Sensitivity), string(q.Timing),
			string(data),
		)
		if err != nil {
			return eris.Wrapf(err, "project: insert question %s", q.ID)
		}
	}

	if p.Flow != nil {
		data, err := json.Marshal(p.Flow)
		if err != nil {
			return eris.Wrap(err, "project: marshal flow")
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO flows (project_id, flow_id, estimated_duration, difficulty, data)
			 VALUES (?, ?, ?, ?, ?)`,
			p.ID, p.Flow.ID, p.Flow.EstimatedDuration, p.Flow.DifficultyLevel, string(data),
		)
		if err != nil {
			return eris.Wrap(err, "project: insert flow")
		}
	}

	if err := tx.Commit(); err != nil {
		return eris.Wrap(err, "project: commit")
	}
	return nil
}

// Load returns the project with id, or ErrNotFound.
func (s *Store) Load(ctx context.Context, id string) (*types.Project, error) {
	var (
		p            types.Project
		title        sql.NullString
		analysisJSON string
		created      string
		updated      string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, analysis, created_at, updated_at FROM projects WHERE id = ?`, id,
	).Scan(&p.ID, &title, &analysisJSON, &created, &updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, eris.Wrapf(ErrNotFound, "project %s", id)
		}
		return nil, eris.Wrap(err, "project: look up project")
	}
	p.Title = title.String
	if p.CreatedAt, err = time.Parse(timeFormat, created); err != nil {
		return nil, eris.Wrap(err, "project: decode created_at")
	}
	if p.UpdatedAt, err = time.Parse(timeFormat, updated); err != nil {
		return nil, eris.Wrap(err, "project: decode updated_at")
	}
	if err := json.Unmarshal([]byte(analysisJSON), &p.Analysis); err != nil {
		return nil, eris.Wrap(err, "project: decode analysis")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM questions WHERE project_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, eris.Wrap(err, "project: query questions")
	}
	defer rows.Close()

	p.Questions = []types.InterviewQuestion{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "project: scan question")
		}
		var q types.InterviewQuestion
		if err := json.Unmarshal([]byte(data), &q); err != nil {
			return nil, eris.Wrap(err, "project: decode question")
		}
		p.Questions = append(p.Questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "project: iterate questions")
	}

	var flowJSON string
	err = s.db.QueryRowContext(ctx, `SELECT data FROM flows WHERE project_id = ?`, id).Scan(&flowJSON)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return nil, eris.Wrap(err, "project: look up flow")
	default:
		var f types.ConversationFlow
		if err := json.Unmarshal([]byte(flowJSON), &f); err != nil {
			return nil, eris.Wrap(err, "project: decode flow")
		}
		p.Flow = &f
	}

	return &p, nil
}

// List returns summaries of all projects, most recently updated first.
func (s *Store) List(ctx context.Context) ([]types.ProjectSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.title, p.updated_at,
			(SELECT count(*) FROM questions q WHERE q.project_id = p.id),
			f.estimated_duration, f.difficulty
		FROM projects p
		LEFT JOIN flows f ON f.project_id = p.id
		ORDER BY p.updated_at DESC, p.id`)
	if err != nil {
		return nil, eris.Wrap(err, "project: list projects")
	}
	defer rows.Close()

	out := []types.ProjectSummary{}
	for rows.Next() {
		var (
			ps         types.ProjectSummary
			title      sql.NullString
			updated    string
			duration   sql.NullInt64
			difficulty sql.NullFloat64
		)
		if err := rows.Scan(&ps.ID, &title, &updated, &ps.QuestionCount, &duration, &difficulty); err != nil {
			return nil, eris.Wrap(err, "project: scan summary")
		}
		ps.Title = title.String
		t, err := time.Parse(timeFormat, updated)
		if err != nil {
			return nil, eris.Wrapf(err, "project: decode updated_at of %s", ps.ID)
		}
		ps.UpdatedAt = t
		ps.EstimatedDuration = int(duration.Int64)
		ps.DifficultyLevel = difficulty.Float64
		out = append(out, ps)
	}
	return out, rows.Err()
}

// Delete removes the project with id and everything stored for it.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return eris.Wrap(err, "project: delete")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "project: delete")
	}
	if n == 0 {
		return eris.Wrapf(ErrNotFound, "project %s", id)
	}
	return nil
}
