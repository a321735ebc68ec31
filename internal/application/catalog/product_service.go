package catalog

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/greenhub/backend/internal/domain/catalog"
	"github.com/greenhub/backend/internal/domain/notification"
	"github.com/greenhub/backend/internal/domain/shared"
)

// ProductService handles vendor product listings and the review workflow
type ProductService struct {
	productRepo    catalog.ProductRepository
	categoryRepo   catalog.CategoryRepository
	adminNotifRepo notification.AdminRepository
	storage        ObjectStorage
	txManager      shared.TransactionManager
	eventBus       shared.EventPublisher
	logger         *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	adminNotifRepo notification.AdminRepository,
	storage ObjectStorage,
	txManager shared.TransactionManager,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:    productRepo,
		categoryRepo:   categoryRepo,
		adminNotifRepo: adminNotifRepo,
		storage:        storage,
		txManager:      txManager,
		eventBus:       eventBus,
		logger:         logger,
	}
}

// Create adds a draft listing for the vendor and raises an admin alert
func (s *ProductService) Create(ctx context.Context, vendorID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	p, err := catalog.NewProduct(vendorID, req.Name, req.Price, catalog.ProductType(req.ProductType))
	if err != nil {
		return nil, err
	}
	if req.Description != "" || req.StockQuantity > 0 {
		if err := p.Update(req.Name, req.Description, req.Price, req.StockQuantity); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		p.SetCategory(req.CategoryID)
	}

	alert, err := notification.NewAdmin(
		notification.AdminTypeNewProduct,
		"New product listed",
		fmt.Sprintf("Product %q was created and awaits review", p.Name),
		map[string]any{
			"product_id": p.ID.String(),
			"vendor_id":  vendorID.String(),
			"name":       p.Name,
		},
	)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Do(ctx, func(tx any) error {
		if err := s.productRepo.WithTx(tx).Save(ctx, p); err != nil {
			return err
		}
		return s.adminNotifRepo.WithTx(tx).Create(ctx, alert)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, p)
	s.logger.Info("product created",
		zap.String("product_id", p.ID.String()),
		zap.String("vendor_id", vendorID.String()))

	resp := ToProductResponse(p)
	return &resp, nil
}

// Update changes a listing. Only the owning vendor may update it.
func (s *ProductService) Update(ctx context.Context, vendorID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	p, err := s.ownedProduct(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}

	if err := p.Update(req.Name, req.Description, req.Price, req.StockQuantity); err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}
	p.SetCategory(req.CategoryID)

	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	resp := ToProductResponse(p)
	return &resp, nil
}

// UploadImage stores a product image and records it as the primary image
func (s *ProductService) UploadImage(ctx context.Context, vendorID, productID uuid.UUID, img ImageUpload) (*ProductResponse, error) {
	p, err := s.ownedProduct(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(img.Filename))
	key := fmt.Sprintf("products/%s/%s%s", p.ID, uuid.NewString(), ext)
	url, err := s.storage.Upload(ctx, key, img.Data, img.ContentType)
	if err != nil {
		s.logger.Error("product image upload failed",
			zap.String("product_id", p.ID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("uploading product image: %w", err)
	}

	p.SetImages(url, p.GalleryImages)
	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	resp := ToProductResponse(p)
	return &resp, nil
}

// SubmitForReview queues a vendor's draft or rejected listing for review
func (s *ProductService) SubmitForReview(ctx context.Context, vendorID, productID uuid.UUID) (*ProductResponse, error) {
	p, err := s.ownedProduct(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}
	if err := p.SubmitForReview(); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	resp := ToProductResponse(p)
	return &resp, nil
}

// Publish approves a listing under review. Admin only.
func (s *ProductService) Publish(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	return s.review(ctx, productID, (*catalog.Product).Publish)
}

// RejectListing declines a listing under review. Admin only.
func (s *ProductService) RejectListing(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	return s.review(ctx, productID, (*catalog.Product).RejectListing)
}

func (s *ProductService) review(ctx context.Context, productID uuid.UUID, transition func(*catalog.Product) error) (*ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := transition(p); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	resp := ToProductResponse(p)
	return &resp, nil
}

// SetActive toggles the soft-delete flag on a vendor's listing
func (s *ProductService) SetActive(ctx context.Context, vendorID, productID uuid.UUID, active bool) (*ProductResponse, error) {
	p, err := s.ownedProduct(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}
	if active {
		p.Activate()
	} else {
		p.Deactivate()
	}
	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	resp := ToProductResponse(p)
	return &resp, nil
}

// Delete removes a vendor's listing
func (s *ProductService) Delete(ctx context.Context, vendorID, productID uuid.UUID) error {
	if _, err := s.ownedProduct(ctx, vendorID, productID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, productID)
}

// Get returns one product with its category
func (s *ProductService) Get(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	p, err := s.productRepo.FindByIDWithCategory(ctx, productID)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(p)
	return &resp, nil
}

// GetBySlug returns one product by its storefront slug
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*ProductResponse, error) {
	p, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(p)
	return &resp, nil
}

// ListByVendor lists one vendor's products, any state
func (s *ProductService) ListByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	products, err := s.productRepo.FindByVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.CountByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(ToProductResponses(products), total, filter.Page, filter.PageSize)
	return &result, nil
}

// ListPublic lists the storefront view: published, active products whose
// vendor is currently approved
func (s *ProductService) ListPublic(ctx context.Context, filter shared.Filter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindPublic(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// ListAll lists every product for the admin dashboard
func (s *ProductService) ListAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(ToProductResponses(products), total, filter.Page, filter.PageSize)
	return &result, nil
}

// ownedProduct loads a product and verifies the caller owns it
func (s *ProductService) ownedProduct(ctx context.Context, vendorID, productID uuid.UUID) (*catalog.Product, error) {
	p, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p.VendorID != vendorID {
		return nil, shared.ErrForbidden
	}
	return p, nil
}

func (s *ProductService) publishEvents(ctx context.Context, p *catalog.Product) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, p.GetDomainEvents()...); err != nil {
		s.logger.Warn("publishing product events failed", zap.Error(err))
	}
	p.ClearDomainEvents()
}
