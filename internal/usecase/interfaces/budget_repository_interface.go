package interfaces

import (
	"context"

	"turismo_agenda/internal/domain/entities"
)

// IBudgetRepository abstracts persistence for budgets and their nested items.
//
// GetByID and GetByNumber return a zero Budget and nil error when not found.
// Update replaces the whole record including items.
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	GetByNumber(ctx context.Context, number string) (entities.Budget, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
