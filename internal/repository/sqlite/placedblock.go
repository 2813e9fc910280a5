package sqlite

import (
	"context"
	"fmt"

	"github.com/corvidae/daywise/internal/db"
	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/repository"
)

// PlacedBlockRepo implements repository.PlacedBlockRepo against a SQLite
// database, storing the most recent generate_schedule output for history
// and diffing.
type PlacedBlockRepo struct {
	db db.DBTX
}

func NewPlacedBlockRepo(conn db.DBTX) *PlacedBlockRepo {
	return &PlacedBlockRepo{db: conn}
}

var _ repository.PlacedBlockRepo = (*PlacedBlockRepo)(nil)

func (r *PlacedBlockRepo) ReplaceAll(ctx context.Context, blocks []domain.PlacedBlock) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM placed_blocks`); err != nil {
		return fmt.Errorf("clearing placed blocks: %w", err)
	}

	query := `INSERT INTO placed_blocks (id, item_id, title, start, end, duration_minutes,
		priority_tier, chunk_index, total_chunks, is_virtual, is_completed, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	generatedAt := nowUTC()
	for _, b := range blocks {
		_, err := r.db.ExecContext(ctx, query,
			b.ID, b.ItemID, b.Title, b.Start.Format(timeLayout), b.End.Format(timeLayout),
			b.DurationMinutes, string(b.PriorityTier), b.ChunkIndex, b.TotalChunks,
			boolToInt(b.IsVirtual), boolToInt(b.IsCompleted), generatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting placed block %s: %w", b.ID, err)
		}
	}
	return nil
}

func (r *PlacedBlockRepo) ListBetween(ctx context.Context, from, to string) ([]domain.PlacedBlock, error) {
	query := `SELECT id, item_id, title, start, end, duration_minutes, priority_tier,
		chunk_index, total_chunks, is_virtual, is_completed
		FROM placed_blocks WHERE start >= ? AND start < ? ORDER BY start`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing placed blocks: %w", err)
	}
	defer rows.Close()

	var blocks []domain.PlacedBlock
	for rows.Next() {
		var b domain.PlacedBlock
		var startStr, endStr, tierStr string
		var isVirtual, isCompleted int

		err := rows.Scan(&b.ID, &b.ItemID, &b.Title, &startStr, &endStr, &b.DurationMinutes,
			&tierStr, &b.ChunkIndex, &b.TotalChunks, &isVirtual, &isCompleted)
		if err != nil {
			return nil, fmt.Errorf("scanning placed block: %w", err)
		}
		b.PriorityTier = domain.PriorityTier(tierStr)
		b.IsVirtual = intToBool(isVirtual)
		b.IsCompleted = intToBool(isCompleted)
		b.Start, err = parseRequired(startStr)
		if err != nil {
			return nil, fmt.Errorf("parsing start: %w", err)
		}
		b.End, err = parseRequired(endStr)
		if err != nil {
			return nil, fmt.Errorf("parsing end: %w", err)
		}
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating placed blocks: %w", err)
	}
	return blocks, nil
}
