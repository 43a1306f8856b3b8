package ports

import (
	"context"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
)

type ExperienceRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Experience, error)
	List(ctx context.Context, filter domain.ExperienceFilter) ([]*domain.Experience, error)
}
