package interfaces

import (
	"context"

	"turismo_agenda/internal/domain/entities"
)

// IGuideRepository reads guides (users flagged as guides). Read-only for the engine.
// GetByID returns a zero Guide and nil error when not found.
type IGuideRepository interface {
	GetByID(ctx context.Context, id string) (entities.Guide, error)
}

// IClientRepository reads clients. GetByID returns a zero Client and nil error
// when not found.
type IClientRepository interface {
	GetByID(ctx context.Context, id string) (entities.Client, error)
}
