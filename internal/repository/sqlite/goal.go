package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/corvidae/daywise/internal/db"
	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/repository"
)

// GoalRepo implements repository.GoalRepo against a SQLite database.
type GoalRepo struct {
	db db.DBTX
}

func NewGoalRepo(conn db.DBTX) *GoalRepo {
	return &GoalRepo{db: conn}
}

var _ repository.GoalRepo = (*GoalRepo)(nil)

const goalSelectQuery = `SELECT id, title, category, target_date, status, created_at, updated_at FROM goals`

func (r *GoalRepo) Create(ctx context.Context, goal *domain.Goal) error {
	query := `INSERT INTO goals (id, title, category, target_date, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		goal.ID, goal.Title, goal.Category, nullableTimeToString(goal.TargetDate, timeLayout),
		string(goal.Status), goal.CreatedAt.Format(timeLayout), goal.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *GoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	row := r.db.QueryRowContext(ctx, goalSelectQuery+` WHERE id = ?`, id)
	return scanGoal(row)
}

func (r *GoalRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Goal, error) {
	query := goalSelectQuery
	if !includeArchived {
		query += ` WHERE status != 'archived'`
	}
	query += ` ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (r *GoalRepo) Update(ctx context.Context, goal *domain.Goal) error {
	query := `UPDATE goals SET title = ?, category = ?, target_date = ?, status = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		goal.Title, goal.Category, nullableTimeToString(goal.TargetDate, timeLayout),
		string(goal.Status), goal.UpdatedAt.Format(timeLayout), goal.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	return nil
}

func (r *GoalRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return nil
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var g domain.Goal
	var targetDateStr sql.NullString
	var statusStr, createdAtStr, updatedAtStr string

	err := row.Scan(&g.ID, &g.Title, &g.Category, &targetDateStr, &statusStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("goal not found")
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}

	g.Status = domain.GoalStatus(statusStr)
	g.TargetDate = parseNullableTime(targetDateStr, timeLayout)

	var parseErr error
	g.CreatedAt, parseErr = parseRequired(createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	g.UpdatedAt, parseErr = parseRequired(updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &g, nil
}
