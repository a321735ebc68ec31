package marketing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/greenhub/backend/internal/domain/marketing"
	"github.com/greenhub/backend/internal/domain/notification"
	"github.com/greenhub/backend/internal/domain/shared"
)

// PromotionFanOut writes one notification per approved vendor inside the
// caller's transaction. Implemented by the notification service.
type PromotionFanOut interface {
	FanOut(ctx context.Context, tx any, typ notification.Type, title, message string, payload map[string]any) (int, error)
}

// Service manages banners and discount offers
type Service struct {
	bannerRepo marketing.BannerRepository
	offerRepo  marketing.OfferRepository
	fanOut     PromotionFanOut
	txManager  shared.TransactionManager
	logger     *zap.Logger
}

// NewService creates a new marketing Service
func NewService(
	bannerRepo marketing.BannerRepository,
	offerRepo marketing.OfferRepository,
	fanOut PromotionFanOut,
	txManager shared.TransactionManager,
	logger *zap.Logger,
) *Service {
	return &Service{
		bannerRepo: bannerRepo,
		offerRepo:  offerRepo,
		fanOut:     fanOut,
		txManager:  txManager,
		logger:     logger,
	}
}

// CreateBanner persists a banner and, in the same transaction, announces it
// to every approved vendor
func (s *Service) CreateBanner(ctx context.Context, req CreateBannerRequest) (*CreateBannerResult, error) {
	b, err := marketing.NewBanner(req.Title, req.Subtitle, req.ImageURL, req.LinkURL)
	if err != nil {
		return nil, err
	}

	var notified int
	err = s.txManager.Do(ctx, func(tx any) error {
		if err := s.bannerRepo.WithTx(tx).Save(ctx, b); err != nil {
			return err
		}
		n, err := s.fanOut.FanOut(ctx, tx, notification.TypePromotion,
			"New promotion live",
			"A new banner campaign is running on the storefront: "+b.Title,
			map[string]any{"banner_id": b.ID.String()})
		if err != nil {
			return err
		}
		notified = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("banner created",
		zap.String("banner_id", b.ID.String()),
		zap.Int("notified", notified))

	return &CreateBannerResult{Banner: ToBannerResponse(b), Notified: notified}, nil
}

// DeactivateBanner hides a banner from the storefront
func (s *Service) DeactivateBanner(ctx context.Context, id uuid.UUID) (*BannerResponse, error) {
	b, err := s.bannerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Deactivate()
	if err := s.bannerRepo.Save(ctx, b); err != nil {
		return nil, err
	}
	resp := ToBannerResponse(b)
	return &resp, nil
}

// DeleteBanner removes a banner
func (s *Service) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	return s.bannerRepo.Delete(ctx, id)
}

// ListActiveBanners returns the storefront banner set
func (s *Service) ListActiveBanners(ctx context.Context) ([]BannerResponse, error) {
	banners, err := s.bannerRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return ToBannerResponses(banners), nil
}

// ListAllBanners returns every banner for the admin dashboard
func (s *Service) ListAllBanners(ctx context.Context) ([]BannerResponse, error) {
	banners, err := s.bannerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToBannerResponses(banners), nil
}

// CreateOffer persists a discount campaign. Coupon codes are unique across
// offers.
func (s *Service) CreateOffer(ctx context.Context, req CreateOfferRequest) (*OfferResponse, error) {
	if req.CouponCode != "" {
		existing, err := s.offerRepo.FindByCoupon(ctx, req.CouponCode)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "An offer with this coupon code already exists")
		}
	}

	o, err := marketing.NewOffer(req.Title, req.Description, req.CouponCode, req.DiscountPercent, req.ValidUntil)
	if err != nil {
		return nil, err
	}
	if err := s.offerRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("offer created", zap.String("offer_id", o.ID.String()))

	resp := ToOfferResponse(o)
	return &resp, nil
}

// RedeemableOffer resolves a coupon code to a live offer. Expired or
// deactivated offers cannot be redeemed.
func (s *Service) RedeemableOffer(ctx context.Context, couponCode string) (*OfferResponse, error) {
	o, err := s.offerRepo.FindByCoupon(ctx, couponCode)
	if err != nil {
		return nil, err
	}
	if !o.IsActive || o.Expired(time.Now()) {
		return nil, shared.NewDomainError("OFFER_EXPIRED", "This offer is no longer valid")
	}
	resp := ToOfferResponse(o)
	return &resp, nil
}

// DeactivateOffer retires an offer
func (s *Service) DeactivateOffer(ctx context.Context, id uuid.UUID) (*OfferResponse, error) {
	o, err := s.offerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Deactivate()
	if err := s.offerRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	resp := ToOfferResponse(o)
	return &resp, nil
}

// DeleteOffer removes an offer
func (s *Service) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	return s.offerRepo.Delete(ctx, id)
}

// ListActiveOffers returns live offers, dropping any whose validity window
// has passed
func (s *Service) ListActiveOffers(ctx context.Context) ([]OfferResponse, error) {
	offers, err := s.offerRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	live := offers[:0]
	for _, o := range offers {
		if !o.Expired(now) {
			live = append(live, o)
		}
	}
	return ToOfferResponses(live), nil
}

// ListAllOffers returns every offer for the admin dashboard
func (s *Service) ListAllOffers(ctx context.Context) ([]OfferResponse, error) {
	offers, err := s.offerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToOfferResponses(offers), nil
}
