package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/aqua-plant/internal/core/domain"
	"github.com/niksmo/aqua-plant/internal/core/port"
)

var _ port.PlantsLoader = (*PlantsRepository)(nil)

type PlantsRepository struct {
	sqldb sqldb
}

func NewPlantsRepository(sqldb sqldb) PlantsRepository {
	return PlantsRepository{sqldb}
}

// LoadPlants reads the whole catalog ordered by id.
func (r PlantsRepository) LoadPlants(
	ctx context.Context,
) ([]domain.Plant, error) {
	const op = "PlantsRepository.LoadPlants"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT
			id, name, latin_name, price_amount, price_currency,
			image, size, lighting, difficulty, in_stock
		FROM plants
		ORDER BY id ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", "err", err)
		}
	}()

	var ps []domain.Plant
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(ps) == 0 {
		return nil, fmt.Errorf("%s: plants: %w", op, ErrNotFound)
	}

	log.Info("plants loaded", "nPlants", len(ps))
	return ps, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlant(sc scanner) (domain.Plant, error) {
	var (
		p          domain.Plant
		size       string
		lighting   string
		difficulty string
	)
	err := sc.Scan(
		&p.ID, &p.Name, &p.LatinName, &p.Price.Amount, &p.Price.Currency,
		&p.Image, &size, &lighting, &difficulty, &p.InStock,
	)
	if err != nil {
		return domain.Plant{}, err
	}
	p.Size = domain.Size(size)
	p.Lighting = domain.Lighting(lighting)
	p.Difficulty = domain.Difficulty(difficulty)
	return p, nil
}
