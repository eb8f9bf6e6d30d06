package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/journalapp/journal/internal/model"
)

// ErrEntryNotFound is returned when no entry matches the ID and owner.
var ErrEntryNotFound = errors.New("entry not found")

// Every entry statement takes an optional owner. A nil owner disables
// ownership scoping; a non-nil owner restricts the statement to that user's rows.
const entryColumns = `entry_id, user_id, title, notes, photo_url`

// ListEntries returns entries ordered by entry ID ascending.
func (r *Repository) ListEntries(ctx context.Context, owner *int64) ([]*model.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE ($1::bigint IS NULL OR user_id = $1)
		ORDER BY entry_id
	`

	rows, err := r.pool.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*model.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return entries, nil
}

// GetEntry retrieves one entry by ID.
func (r *Repository) GetEntry(ctx context.Context, id int64, owner *int64) (*model.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE entry_id = $1 AND ($2::bigint IS NULL OR user_id = $2)
	`

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, id, owner))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return entry, nil
}

// CreateEntry inserts an entry owned by owner (nil for unowned) and returns the stored row.
func (r *Repository) CreateEntry(ctx context.Context, owner *int64, fields model.EntryFields) (*model.Entry, error) {
	query := `
		INSERT INTO entries (user_id, title, notes, photo_url)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + entryColumns

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, owner, fields.Title, fields.Notes, fields.PhotoURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return entry, nil
}

// UpdateEntry replaces the editable fields of an entry and returns the updated row.
func (r *Repository) UpdateEntry(ctx context.Context, id int64, owner *int64, fields model.EntryFields) (*model.Entry, error) {
	query := `
		UPDATE entries
		SET title = $1, notes = $2, photo_url = $3
		WHERE entry_id = $4 AND ($5::bigint IS NULL OR user_id = $5)
		RETURNING ` + entryColumns

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, fields.Title, fields.Notes, fields.PhotoURL, id, owner))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return entry, nil
}

// DeleteEntry removes an entry and returns the deleted row.
func (r *Repository) DeleteEntry(ctx context.Context, id int64, owner *int64) (*model.Entry, error) {
	query := `
		DELETE FROM entries
		WHERE entry_id = $1 AND ($2::bigint IS NULL OR user_id = $2)
		RETURNING ` + entryColumns

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, id, owner))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to delete entry: %w", err)
	}

	return entry, nil
}

// scanEntry scans a single row into an Entry. pgx.Rows satisfies pgx.Row.
func scanEntry(row pgx.Row) (*model.Entry, error) {
	var entry model.Entry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Title,
		&entry.Notes,
		&entry.PhotoURL,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
