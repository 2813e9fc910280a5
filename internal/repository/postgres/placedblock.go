package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/repository"
)

// PlacedBlockRepo implements repository.PlacedBlockRepo against Postgres,
// storing the most recent generate_schedule output for history and
// cross-device diffing.
type PlacedBlockRepo struct {
	db *sql.DB
}

func NewPlacedBlockRepo(conn *sql.DB) *PlacedBlockRepo {
	return &PlacedBlockRepo{db: conn}
}

var _ repository.PlacedBlockRepo = (*PlacedBlockRepo)(nil)

func (r *PlacedBlockRepo) ReplaceAll(ctx context.Context, blocks []domain.PlacedBlock) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning replace transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM placed_blocks`); err != nil {
		return fmt.Errorf("clearing placed blocks: %w", err)
	}

	query := `INSERT INTO placed_blocks (id, item_id, title, start, "end", duration_minutes,
		priority_tier, chunk_index, total_chunks, is_virtual, is_completed, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	generatedAt := time.Now().UTC()
	for _, b := range blocks {
		_, err := tx.ExecContext(ctx, query,
			b.ID, b.ItemID, b.Title, b.Start, b.End, b.DurationMinutes, string(b.PriorityTier),
			b.ChunkIndex, b.TotalChunks, b.IsVirtual, b.IsCompleted, generatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting placed block %s: %w", b.ID, err)
		}
	}
	return tx.Commit()
}

func (r *PlacedBlockRepo) ListBetween(ctx context.Context, from, to string) ([]domain.PlacedBlock, error) {
	query := `SELECT id, item_id, title, start, "end", duration_minutes, priority_tier,
		chunk_index, total_chunks, is_virtual, is_completed
		FROM placed_blocks WHERE start >= $1::timestamptz AND start < $2::timestamptz ORDER BY start`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing placed blocks: %w", err)
	}
	defer rows.Close()

	var blocks []domain.PlacedBlock
	for rows.Next() {
		var b domain.PlacedBlock
		var tierStr string

		err := rows.Scan(&b.ID, &b.ItemID, &b.Title, &b.Start, &b.End, &b.DurationMinutes,
			&tierStr, &b.ChunkIndex, &b.TotalChunks, &b.IsVirtual, &b.IsCompleted)
		if err != nil {
			return nil, fmt.Errorf("scanning placed block: %w", err)
		}
		b.PriorityTier = domain.PriorityTier(tierStr)
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating placed blocks: %w", err)
	}
	return blocks, nil
}
