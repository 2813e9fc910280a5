package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/repository"
)

// ItemRepo implements repository.ItemRepo against Postgres, the alternate
// multi-device sync backend behind the same interface as the SQLite repo.
type ItemRepo struct {
	db *sql.DB
}

func NewItemRepo(conn *sql.DB) *ItemRepo {
	return &ItemRepo{db: conn}
}

var _ repository.ItemRepo = (*ItemRepo)(nil)

const itemSelectQuery = `SELECT id, goal_id, category, title, duration_minutes, deadline,
	priority_tier, is_assignment, can_split, pinned_start, status, recurrence_parent_id
	FROM items`

func (r *ItemRepo) Create(ctx context.Context, item *domain.Item) error {
	query := `INSERT INTO items (id, goal_id, category, title, duration_minutes, deadline,
		priority_tier, is_assignment, can_split, pinned_start, status, recurrence_parent_id,
		created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		item.ID, nullString(item.GoalID), item.Category, item.Title, item.DurationMinutes,
		nullTime(item.Deadline), string(item.PriorityTier), item.IsAssignment, item.CanSplit,
		nullTime(item.PinnedStart), string(item.Status), nullString(item.RecurrenceParentID),
		now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}
	return nil
}

func (r *ItemRepo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	row := r.db.QueryRowContext(ctx, itemSelectQuery+` WHERE id = $1`, id)
	return scanItem(row)
}

func (r *ItemRepo) ListByGoal(ctx context.Context, goalID string) ([]*domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, itemSelectQuery+` WHERE goal_id = $1 ORDER BY created_at`, goalID)
	if err != nil {
		return nil, fmt.Errorf("listing items by goal: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *ItemRepo) ListSchedulable(ctx context.Context, includeArchived bool) ([]*domain.Item, error) {
	query := itemSelectQuery
	if !includeArchived {
		query += ` WHERE status != 'archived'`
	}
	query += ` ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing schedulable items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *ItemRepo) Update(ctx context.Context, item *domain.Item) error {
	query := `UPDATE items SET goal_id = $1, category = $2, title = $3, duration_minutes = $4,
		deadline = $5, priority_tier = $6, is_assignment = $7, can_split = $8, pinned_start = $9,
		status = $10, recurrence_parent_id = $11, updated_at = $12 WHERE id = $13`
	_, err := r.db.ExecContext(ctx, query,
		nullString(item.GoalID), item.Category, item.Title, item.DurationMinutes,
		nullTime(item.Deadline), string(item.PriorityTier), item.IsAssignment, item.CanSplit,
		nullTime(item.PinnedStart), string(item.Status), nullString(item.RecurrenceParentID),
		time.Now().UTC(), item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var it domain.Item
	var goalID, recurrenceParentID sql.NullString
	var deadline, pinnedStart sql.NullTime
	var tierStr, statusStr string

	err := row.Scan(&it.ID, &goalID, &it.Category, &it.Title, &it.DurationMinutes, &deadline,
		&tierStr, &it.IsAssignment, &it.CanSplit, &pinnedStart, &statusStr, &recurrenceParentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("item not found")
		}
		return nil, fmt.Errorf("scanning item: %w", err)
	}

	if goalID.Valid {
		it.GoalID = goalID.String
	}
	if recurrenceParentID.Valid {
		it.RecurrenceParentID = recurrenceParentID.String
	}
	it.PriorityTier = domain.PriorityTier(tierStr)
	it.Status = domain.ItemStatus(statusStr)
	if deadline.Valid {
		it.Deadline = &deadline.Time
	}
	if pinnedStart.Valid {
		it.PinnedStart = &pinnedStart.Time
	}

	return &it, nil
}

func scanItems(rows *sql.Rows) ([]*domain.Item, error) {
	var items []*domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
