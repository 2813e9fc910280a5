package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/corvidae/daywise/internal/db"
	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/repository"
)

// OccupationRepo implements repository.OccupationRepo against a SQLite
// database. Occupations are typically a cache of an upstream calendar sync
// (internal/calendarsync); the scheduler core never writes them.
type OccupationRepo struct {
	db db.DBTX
}

func NewOccupationRepo(conn db.DBTX) *OccupationRepo {
	return &OccupationRepo{db: conn}
}

var _ repository.OccupationRepo = (*OccupationRepo)(nil)

const occupationSelectQuery = `SELECT id, title, start, end, location, tags FROM occupations`

func (r *OccupationRepo) Create(ctx context.Context, occ *domain.Occupation) error {
	query := `INSERT INTO occupations (id, title, start, end, location, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		occ.ID, occ.Title, occ.Start.Format(timeLayout), occ.End.Format(timeLayout),
		occ.Location, strings.Join(occ.Tags, ","), nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting occupation: %w", err)
	}
	return nil
}

func (r *OccupationRepo) ListBetween(ctx context.Context, from, to string) ([]*domain.Occupation, error) {
	query := occupationSelectQuery + ` WHERE start >= ? AND start < ? ORDER BY start`
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
	_, err := r.db.ExecContext(ctx, `DELETE FROM occupations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting occupation: %w", err)
	}
	return nil
}

// ReplaceAll atomically swaps the occupation cache with a fresh calendar
// sync result.
func (r *OccupationRepo) ReplaceAll(ctx context.Context, occupations []*domain.Occupation) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM occupations`); err != nil {
		return fmt.Errorf("clearing occupations: %w", err)
	}
	for _, occ := range occupations {
		if err := r.Create(ctx, occ); err != nil {
			return err
		}
	}
	return nil
}

func scanOccupation(row rowScanner) (*domain.Occupation, error) {
	var occ domain.Occupation
	var startStr, endStr, tagsStr string

	err := row.Scan(&occ.ID, &occ.Title, &startStr, &endStr, &occ.Location, &tagsStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("occupation not found")
		}
		return nil, fmt.Errorf("scanning occupation: %w", err)
	}

	var parseErr error
	occ.Start, parseErr = parseRequired(startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start: %w", parseErr)
	}
	occ.End, parseErr = parseRequired(endStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing end: %w", parseErr)
	}
	if tagsStr != "" {
		occ.Tags = strings.Split(tagsStr, ",")
	}

	return &occ, nil
}
