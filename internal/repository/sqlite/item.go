package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/corvidae/daywise/internal/db"
	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/repository"
)

const timeLayout = time.RFC3339

// ItemRepo implements repository.ItemRepo against a SQLite database.
type ItemRepo struct {
	db db.DBTX
}

func NewItemRepo(conn db.DBTX) *ItemRepo {
	return &ItemRepo{db: conn}
}

var _ repository.ItemRepo = (*ItemRepo)(nil)

func (r *ItemRepo) Create(ctx context.Context, item *domain.Item) error {
	query := `INSERT INTO items (id, goal_id, category, title, duration_minutes, deadline,
		priority_tier, is_assignment, can_split, pinned_start, status, recurrence_parent_id,
		created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	now := nowUTC()
	_, err := r.db.ExecContext(ctx, query,
		item.ID, nullableString(item.GoalID), item.Category, item.Title, item.DurationMinutes,
		nullableTimeToString(item.Deadline, timeLayout), string(item.PriorityTier),
		boolToInt(item.IsAssignment), boolToInt(item.CanSplit),
		nullableTimeToString(item.PinnedStart, timeLayout), string(item.Status),
		nullableString(item.RecurrenceParentID), now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}
	return nil
}

func (r *ItemRepo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query := itemSelectQuery + ` WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanItem(row)
}

func (r *ItemRepo) ListByGoal(ctx context.Context, goalID string) ([]*domain.Item, error) {
	query := itemSelectQuery + ` WHERE goal_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, goalID)
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
	query := `UPDATE items SET goal_id = ?, category = ?, title = ?, duration_minutes = ?,
		deadline = ?, priority_tier = ?, is_assignment = ?, can_split = ?, pinned_start = ?,
		status = ?, recurrence_parent_id = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableString(item.GoalID), item.Category, item.Title, item.DurationMinutes,
		nullableTimeToString(item.Deadline, timeLayout), string(item.PriorityTier),
		boolToInt(item.IsAssignment), boolToInt(item.CanSplit),
		nullableTimeToString(item.PinnedStart, timeLayout), string(item.Status),
		nullableString(item.RecurrenceParentID), nowUTC(), item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

const itemSelectQuery = `SELECT id, goal_id, category, title, duration_minutes, deadline,
	priority_tier, is_assignment, can_split, pinned_start, status, recurrence_parent_id
	FROM items`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var it domain.Item
	var goalID, deadlineStr, pinnedStr, recurrenceParentID sql.NullString
	var tierStr, statusStr string
	var isAssignment, canSplit int

	err := row.Scan(&it.ID, &goalID, &it.Category, &it.Title, &it.DurationMinutes, &deadlineStr,
		&tierStr, &isAssignment, &canSplit, &pinnedStr, &statusStr, &recurrenceParentID)
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
	it.IsAssignment = intToBool(isAssignment)
	it.CanSplit = intToBool(canSplit)
	it.Deadline = parseNullableTime(deadlineStr, timeLayout)
	it.PinnedStart = parseNullableTime(pinnedStr, timeLayout)

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

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
