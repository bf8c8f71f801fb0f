package listing

import (
	"context"

	"github.com/google/uuid"
)

// AdResponseRepository persists seller responses
type AdResponseRepository interface {
	Create(ctx context.Context, response *AdResponse) error
	Update(ctx context.Context, response *AdResponse) error
	FindByID(ctx context.Context, id uuid.UUID) (*AdResponse, error)
	FindByAdID(ctx context.Context, adID uuid.UUID) ([]*AdResponse, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*AdResponse, error)
	CountByAdID(ctx context.Context, adID uuid.UUID) (int64, error)
}
