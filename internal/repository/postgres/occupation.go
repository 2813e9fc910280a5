package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/repository"
)

// OccupationRepo implements repository.OccupationRepo against Postgres.
// Occupations are typically a cache of an upstream calendar sync
// (internal/calendarsync); the scheduler core never writes them.
type OccupationRepo struct {
	db *sql.DB
}

func NewOccupationRepo(conn *sql.DB) *OccupationRepo {
	return &OccupationRepo{db: conn}
}

var _ repository.OccupationRepo = (*OccupationRepo)(nil)

const occupationSelectQuery = `SELECT id, title, start, "end", location, tags FROM occupations`

func (r *OccupationRepo) Create(ctx context.Context, occ *domain.Occupation) error {
	query := `INSERT INTO occupations (id, title, start, "end", location, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		occ.ID, occ.Title, occ.Start, occ.End, occ.Location, pq.Array(occ.Tags), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting occupation: %w", err)
	}
	return nil
}

func (r *OccupationRepo) ListBetween(ctx context.Context, from, to string) ([]*domain.Occupation, error) {
	query := occupationSelectQuery + ` WHERE start >= $1::timestamptz AND start < $2::timestamptz ORDER BY start`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing occupations: %w", err)
	}
	defer rows.Close()

	var occupations []*domain.Occupation
	for rows.Next() {
		occ, err := scanOccupation(rows)
		if err != nil {
			return nil, err
		}
		occupations = append(occupations, occ)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating occupations: %w", err)
	}
	return occupations, nil
}

func (r *OccupationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM occupations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting occupation: %w", err)
	}
	return nil
}

// ReplaceAll atomically swaps the occupation cache with a fresh calendar
// sync result.
func (r *OccupationRepo) ReplaceAll(ctx context.Context, occupations []*domain.Occupation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning replace transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM occupations`); err != nil {
		return fmt.Errorf("clearing occupations: %w", err)
	}
	query := `INSERT INTO occupations (id, title, start, "end", location, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now().UTC()
	for _, occ := range occupations {
		if _, err := tx.ExecContext(ctx, query, occ.ID, occ.Title, occ.Start, occ.End, occ.Location, pq.Array(occ.Tags), now); err != nil {
			return fmt.Errorf("inserting occupation %s: %w", occ.ID, err)
		}
	}
	return tx.Commit()
}

func scanOccupation(row rowScanner) (*domain.Occupation, error) {
	var occ domain.Occupation
	var tags []string

	err := row.Scan(&occ.ID, &occ.Title, &occ.Start, &occ.End, &occ.Location, pq.Array(&tags))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("occupation not found")
		}
		return nil, fmt.Errorf("scanning occupation: %w", err)
	}
	occ.Tags = tags

	return &occ, nil
}
