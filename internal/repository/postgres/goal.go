package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/repository"
)

// GoalRepo implements repository.GoalRepo against Postgres.
type GoalRepo struct {
	db *sql.DB
}

func NewGoalRepo(conn *sql.DB) *GoalRepo {
	return &GoalRepo{db: conn}
}

var _ repository.GoalRepo = (*GoalRepo)(nil)

const goalSelectQuery = `SELECT id, title, category, target_date, status, created_at, updated_at FROM goals`

func (r *GoalRepo) Create(ctx context.Context, goal *domain.Goal) error {
	query := `INSERT INTO goals (id, title, category, target_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		goal.ID, goal.Title, goal.Category, nullTime(goal.TargetDate), string(goal.Status),
		goal.CreatedAt, goal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *GoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	row := r.db.QueryRowContext(ctx, goalSelectQuery+` WHERE id = $1`, id)
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
	query := `UPDATE goals SET title = $1, category = $2, target_date = $3, status = $4,
		updated_at = $5 WHERE id = $6`
	_, err := r.db.ExecContext(ctx, query,
		goal.Title, goal.Category, nullTime(goal.TargetDate), string(goal.Status),
		goal.UpdatedAt, goal.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	return nil
}

func (r *GoalRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return nil
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var g domain.Goal
	var targetDate sql.NullTime
	var statusStr string

	err := row.Scan(&g.ID, &g.Title, &g.Category, &targetDate, &statusStr, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("goal not found")
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}

	g.Status = domain.GoalStatus(statusStr)
	if targetDate.Valid {
		g.TargetDate = &targetDate.Time
	}

	return &g, nil
}
