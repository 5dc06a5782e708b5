package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Collection names, one per localforage instance the frontend kept.
const (
	collectionJobs         = "jobs"
	collectionJobOverrides = "job_overrides"
	collectionAssessments  = "assessments"
	collectionTombstones   = "deleted_assessments"
)

// put upserts a JSON document under (collection, id).
func (s *Store) put(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	query := `
		INSERT INTO documents (collection, id, doc, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(collection, id) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.ExecContext(ctx, query, collection, id, string(data)); err != nil {
		return fmt.Errorf("failed to put document: %w", err)
	}
	return nil
}

// get decodes the document under (collection, id) into out.
func (s *Store) get(ctx context.Context, collection, id string, out any) error {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM documents WHERE collection = ? AND id = ?`,
		collection, id,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

// delete removes the document under (collection, id). Missing ids are not an
// error; the frontend's removeItem was idempotent and callers rely on that.
func (s *Store) delete(ctx context.Context, collection, id string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`,
		collection, id,
	); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// all iterates a collection, yielding each raw document to fn.
func (s *Store) all(ctx context.Context, collection string, fn func(id string, raw []byte) error) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, doc FROM documents WHERE collection = ? ORDER BY id`,
		collection,
	)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return fmt.Errorf("failed to scan document: %w", err)
		}
		if err := fn(id, []byte(raw)); err != nil {
			return err
		}
	}
	return rows.Err()
}

func decode(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

// clear drops every document in a collection. Manual reset only; nothing in
// the application calls this on its own.
func (s *Store) clear(ctx context.Context, collection string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ?`,
		collection,
	); err != nil {
		return fmt.Errorf("failed to clear collection: %w", err)
	}
	return nil
}
