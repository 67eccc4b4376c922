package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cognigraph/internal/graph"
)

// TripleRepo persists the validated triple set in Postgres. The store is only
// written during the reload pipeline; query-time components never touch it.
type TripleRepo struct {
	db *DB

	schemaMu       sync.Mutex
	schemaPrepared bool
}

func NewTripleRepo(db *DB) *TripleRepo {
	return &TripleRepo{db: db}
}

func (r *TripleRepo) ensureSchema(ctx context.Context) error {
	r.schemaMu.Lock()
	defer r.schemaMu.Unlock()
	if r.schemaPrepared {
		return nil
	}
	_, err := r.db.Pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS kg_triples (
  subject_type    TEXT NOT NULL,
  subject_name    TEXT NOT NULL,
  relation        TEXT NOT NULL,
  object_type     TEXT NOT NULL,
  object_name     TEXT NOT NULL,
  source_type     TEXT NOT NULL DEFAULT 'Unknown',
  source_link     TEXT NOT NULL DEFAULT '',
  source_date     DATE,
  position        INT NOT NULL,
  dataset_version TEXT NOT NULL,
  PRIMARY KEY (subject_type, subject_name, relation, object_type, object_name)
)`)
	if err != nil {
		return fmt.Errorf("ensure kg_triples schema: %w", err)
	}
	r.schemaPrepared = true
	return nil
}

// ReplaceTriples swaps the stored dataset wholesale inside one transaction,
// mirroring the engine's atomic-reload contract at the store boundary.
func (r *TripleRepo) ReplaceTriples(ctx context.Context, version string, triples []graph.Triple) error {
	if err := r.ensureSchema(ctx); err != nil {
		return err
	}
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin triples tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM kg_triples`); err != nil {
		return fmt.Errorf("clear kg_triples: %w", err)
	}
	for i, t := range triples {
		var date *time.Time
		if !t.SourceDate.IsZero() {
			d := t.SourceDate
			date = &d
		}
		_, err := tx.Exec(ctx, `
INSERT INTO kg_triples(subject_type, subject_name, relation, object_type, object_name, source_type, source_link, source_date, position, dataset_version)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			string(t.SubjectType), t.SubjectName, string(t.Relation), string(t.ObjectType), t.ObjectName,
			t.SourceType, t.SourceLink, date, i, version)
		if err != nil {
			return fmt.Errorf("insert triple %d: %w", i, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit triples tx: %w", err)
	}
	return nil
}

// ListRows reads the stored dataset back as raw rows in original position
// order, so a booting API process can re-ingest and publish it.
func (r *TripleRepo) ListRows(ctx context.Context) ([]graph.Row, error) {
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}
	rows, err := r.db.Pool.Query(ctx, `
SELECT subject_type, subject_name, relation, object_type, object_name, source_type, source_link, source_date
FROM kg_triples ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query kg_triples: %w", err)
	}
	defer rows.Close()

	out := make([]graph.Row, 0)
	line := 0
	for rows.Next() {
		var row graph.Row
		var date *time.Time
		if err := rows.Scan(&row.XType, &row.XName, &row.Relation, &row.YType, &row.YName, &row.SourceType, &row.SourceLink, &date); err != nil {
			return nil, fmt.Errorf("scan triple row: %w", err)
		}
		if date != nil {
			row.SourceDate = date.Format("2006-01-02")
		}
		line++
		row.Line = line
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kg_triples: %w", err)
	}
	return out, nil
}
