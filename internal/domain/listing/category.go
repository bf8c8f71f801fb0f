package listing

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jakupie/backend/internal/domain/shared"
)

// Category groups ads by the kind of goods or services the buyer wants.
type Category struct {
	shared.BaseEntity
	Name      string
	Slug      string
	Icon      string
	SortOrder int
}

// NewCategory creates a new category
func NewCategory(name, slug, icon string, sortOrder int) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}

	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_SLUG", "Category slug cannot be empty")
	}

	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Slug:       slug,
		Icon:       icon,
		SortOrder:  sortOrder,
	}, nil
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindAll(ctx context.Context) ([]*Category, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
