package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/greenhub/backend/internal/domain/catalog"
	"github.com/greenhub/backend/internal/domain/notification"
	"github.com/greenhub/backend/internal/domain/shared"
)

// maxCategoryDepth bounds the ancestor walk so a corrupted parent chain
// cannot loop forever.
const maxCategoryDepth = 32

// CategoryFanOut writes one notification per approved vendor inside the
// caller's transaction. Implemented by the notification service.
type CategoryFanOut interface {
	FanOut(ctx context.Context, tx any, typ notification.Type, title, message string, payload map[string]any) (int, error)
}

// CategoryService manages the category tree
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	fanOut       CategoryFanOut
	txManager    shared.TransactionManager
	logger       *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	fanOut CategoryFanOut,
	txManager shared.TransactionManager,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		fanOut:       fanOut,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create adds a category, optionally under a parent, and announces it to
// every approved vendor in the same transaction
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	c, err := catalog.NewCategory(req.Name, req.Slug, req.ImageURL)
	if err != nil {
		return nil, err
	}

	exists, err := s.categoryRepo.ExistsBySlug(ctx, c.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A category with this slug already exists")
	}

	if req.ParentID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.ParentID); err != nil {
			return nil, err
		}
		if err := c.SetParent(req.ParentID); err != nil {
			return nil, err
		}
	}

	err = s.txManager.Do(ctx, func(tx any) error {
		if err := s.categoryRepo.WithTx(tx).Save(ctx, c); err != nil {
			return err
		}
		_, err := s.fanOut.FanOut(ctx, tx, notification.TypeSystem,
			"New category available",
			"A new product category is open for listings: "+c.Name,
			map[string]any{"category_id": c.ID.String()})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("category created", zap.String("category_id", c.ID.String()), zap.String("slug", c.Slug))

	resp := ToCategoryResponse(c)
	return &resp, nil
}

// Update renames and, when the parent changes, reparents a category. A
// reparent that would place the category under one of its own descendants
// is refused.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	c, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.Rename(req.Name); err != nil {
		return nil, err
	}
	c.ImageURL = req.ImageURL

	if !sameParent(c.ParentID, req.ParentID) {
		if req.ParentID != nil {
			if err := s.checkNoCycle(ctx, id, *req.ParentID); err != nil {
				return nil, err
			}
		}
		if err := c.SetParent(req.ParentID); err != nil {
			return nil, err
		}
	}

	if err := s.categoryRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	resp := ToCategoryResponse(c)
	return &resp, nil
}

// Delete removes a leaf category. Categories with children must be emptied
// first.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	children, err := s.categoryRepo.FindChildren(ctx, id)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return shared.NewDomainError("HAS_CHILDREN", "Category still has child categories")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// Get returns one category
func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	c, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(c)
	return &resp, nil
}

// List returns all categories
func (s *CategoryService) List(ctx context.Context, filter shared.Filter) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponses(categories), nil
}

// Children returns the direct children of a category
func (s *CategoryService) Children(ctx context.Context, parentID uuid.UUID) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindChildren(ctx, parentID)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponses(categories), nil
}

// checkNoCycle walks the ancestor chain of the proposed parent. Finding the
// category being moved anywhere on that chain means the move would create a
// cycle.
func (s *CategoryService) checkNoCycle(ctx context.Context, categoryID, newParentID uuid.UUID) error {
	if categoryID == newParentID {
		return shared.NewDomainError("INVALID_PARENT", "Category cannot be its own parent")
	}

	current := newParentID
	for depth := 0; depth < maxCategoryDepth; depth++ {
		parent, err := s.categoryRepo.FindByID(ctx, current)
		if err != nil {
			return err
		}
		if parent.ParentID == nil {
			return nil
		}
		if *parent.ParentID == categoryID {
			return shared.NewDomainError("INVALID_PARENT", "Move would create a category cycle")
		}
		current = *parent.ParentID
	}
	return shared.NewDomainError("INVALID_PARENT", "Category nesting is too deep")
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
