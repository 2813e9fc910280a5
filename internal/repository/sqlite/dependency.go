package sqlite

import (
	"context"
	"fmt"

	"github.com/corvidae/daywise/internal/db"
	"github.com/corvidae/daywise/internal/repository"
)

// DependencyRepo implements repository.DependencyRepo against a SQLite
// database.
type DependencyRepo struct {
	db db.DBTX
}

func NewDependencyRepo(conn db.DBTX) *DependencyRepo {
	return &DependencyRepo{db: conn}
}

var _ repository.DependencyRepo = (*DependencyRepo)(nil)

func (r *DependencyRepo) Create(ctx context.Context, itemID, dependsOnID string) error {
	query := `INSERT INTO item_dependencies (item_id, depends_on_id) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, itemID, dependsOnID)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *DependencyRepo) Delete(ctx context.Context, itemID, dependsOnID string) error {
	query := `DELETE FROM item_dependencies WHERE item_id = ? AND depends_on_id = ?`
	_, err := r.db.ExecContext(ctx, query, itemID, dependsOnID)
	if err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	return nil
}

func (r *DependencyRepo) ListDependencies(ctx context.Context, itemID string) ([]string, error) {
	query := `SELECT depends_on_id FROM item_dependencies WHERE item_id = ?`
	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return ids, nil
}
