package app

import (
	"context"
	"fmt"

	"github.com/corvidae/daywise/internal/db"
	"github.com/corvidae/daywise/internal/importer"
	"github.com/corvidae/daywise/internal/repository"
)

// importService is the concrete ImportUseCase: it loads and validates an
// external import file, acting as item- and occupation-provider collaborator,
// converts it into domain values with resolved refs, and persists everything
// inside a single transaction so a partially-invalid file never leaves the
// store half-populated.
type importService struct {
	goals       repository.GoalRepo
	items       repository.ItemRepo
	occupations repository.OccupationRepo
	deps        repository.DependencyRepo
	uow         db.UnitOfWork
	newStore    func(tx db.DBTX) (repository.GoalRepo, repository.ItemRepo, repository.OccupationRepo, repository.DependencyRepo)
}

// NewImportService builds the ImportUseCase. newStore lets the caller
// construct transaction-scoped repositories bound to the tx handle the
// unit of work hands back, building repositories per-call against
// db.DBTX rather than a fixed *sql.DB.
func NewImportService(
	goals repository.GoalRepo,
	items repository.ItemRepo,
	occupations repository.OccupationRepo,
	deps repository.DependencyRepo,
	uow db.UnitOfWork,
	newStore func(tx db.DBTX) (repository.GoalRepo, repository.ItemRepo, repository.OccupationRepo, repository.DependencyRepo),
) ImportUseCase {
	return &importService{
		goals: goals, items: items, occupations: occupations, deps: deps,
		uow: uow, newStore: newStore,
	}
}

var _ ImportUseCase = (*importService)(nil)

func (s *importService) ImportFile(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportFromSchema(ctx, schema)
}

func (s *importService) ImportFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid import schema: %v", errs)
	}

	converted, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	result := &ImportResult{}

	run := func(ctx context.Context, goals repository.GoalRepo, items repository.ItemRepo, occs repository.OccupationRepo, deps repository.DependencyRepo) error {
		for _, g := range converted.Goals {
			if err := goals.Create(ctx, g); err != nil {
				return fmt.Errorf("creating goal %s: %w", g.ID, err)
			}
			result.GoalCount++
		}
		for _, it := range converted.Items {
			if err := items.Create(ctx, it); err != nil {
				return fmt.Errorf("creating item %s: %w", it.ID, err)
			}
			result.ItemCount++
		}
		for _, o := range converted.Occupations {
			if err := occs.Create(ctx, o); err != nil {
				return fmt.Errorf("creating occupation %s: %w", o.ID, err)
			}
			result.OccupationCount++
		}
		for _, edge := range converted.Dependencies {
			if err := deps.Create(ctx, edge.ItemID, edge.DependsOnID); err != nil {
				return fmt.Errorf("creating dependency %s -> %s: %w", edge.ItemID, edge.DependsOnID, err)
			}
		}
		return nil
	}

	if s.uow != nil && s.newStore != nil {
		err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			goals, items, occs, deps := s.newStore(tx)
			return run(ctx, goals, items, occs, deps)
		})
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	if err := run(ctx, s.goals, s.items, s.occupations, s.deps); err != nil {
		return nil, err
	}
	return result, nil
}
