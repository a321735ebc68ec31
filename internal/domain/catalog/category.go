package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/greenhub/backend/internal/domain/shared"
)

// Category groups products. Nesting uses an adjacency list: each category
// carries an optional parent reference. Reparenting must go through the
// category service so the ancestor chain can be checked for cycles.
type Category struct {
	shared.BaseEntity
	Name     string     `gorm:"type:varchar(100);not null"`
	Slug     string     `gorm:"type:varchar(120);not null;uniqueIndex"`
	ImageURL string     `gorm:"type:varchar(500)"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a category
func NewCategory(name, slug, imageURL string) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_SLUG", "Category slug cannot be empty")
	}

	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Slug:       slug,
		ImageURL:   imageURL,
	}, nil
}

// SetParent links the category under another one. Self-parenting is always
// illegal; the full cycle check needs repository access and lives in the
// category service.
func (c *Category) SetParent(parentID *uuid.UUID) error {
	if parentID != nil && *parentID == c.ID {
		return shared.NewDomainError("INVALID_PARENT", "Category cannot be its own parent")
	}
	c.ParentID = parentID
	c.UpdatedAt = time.Now()
	return nil
}

// Rename updates the display name, keeping the slug stable
func (c *Category) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}
