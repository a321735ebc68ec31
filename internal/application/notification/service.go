package notification

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/greenhub/backend/internal/domain/notification"
	"github.com/greenhub/backend/internal/domain/shared"
	"github.com/greenhub/backend/internal/domain/vendor"
)

// Service manages vendor notifications, admin alerts and the broadcast
// fan-out to approved vendors.
type Service struct {
	notifRepo  notification.Repository
	adminRepo  notification.AdminRepository
	vendorRepo vendor.Repository
	txManager  shared.TransactionManager
	logger     *zap.Logger
}

// NewService creates a new notification Service
func NewService(
	notifRepo notification.Repository,
	adminRepo notification.AdminRepository,
	vendorRepo vendor.Repository,
	txManager shared.TransactionManager,
	logger *zap.Logger,
) *Service {
	return &Service{
		notifRepo:  notifRepo,
		adminRepo:  adminRepo,
		vendorRepo: vendorRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Send delivers a notification to one vendor
func (s *Service) Send(ctx context.Context, req SendNotificationRequest) (*NotificationResponse, error) {
	if _, err := s.vendorRepo.FindByID(ctx, req.VendorID); err != nil {
		return nil, err
	}

	n, err := notification.New(req.VendorID, notification.Type(req.Type), req.Title, req.Message, req.Payload)
	if err != nil {
		return nil, err
	}
	if err := s.notifRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	resp := ToNotificationResponse(n)
	return &resp, nil
}

// Broadcast fans a notification out to every currently approved vendor in
// one transaction and reports the recipient count. Vendors approved after
// the snapshot is taken are not included.
func (s *Service) Broadcast(ctx context.Context, req BroadcastRequest) (*BroadcastResult, error) {
	var recipients int
	err := s.txManager.Do(ctx, func(tx any) error {
		n, err := s.FanOut(ctx, tx, notification.Type(req.Type), req.Title, req.Message, req.Payload)
		if err != nil {
			return err
		}
		recipients = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("broadcast sent",
		zap.String("type", req.Type),
		zap.Int("recipients", recipients))

	return &BroadcastResult{Recipients: recipients}, nil
}

// FanOut writes one notification per approved vendor inside the caller's
// transaction. Callers that need the broadcast atomic with their own writes
// (banner creation, for one) pass their open handle.
func (s *Service) FanOut(ctx context.Context, tx any, typ notification.Type, title, message string, payload map[string]any) (int, error) {
	vendors, err := s.vendorRepo.WithTx(tx).FindApproved(ctx)
	if err != nil {
		return 0, err
	}
	if len(vendors) == 0 {
		return 0, nil
	}

	ns := make([]*notification.Notification, 0, len(vendors))
	for i := range vendors {
		n, err := notification.New(vendors[i].ID, typ, title, message, payload)
		if err != nil {
			return 0, err
		}
		ns = append(ns, n)
	}

	if err := s.notifRepo.WithTx(tx).CreateBatch(ctx, ns); err != nil {
		return 0, err
	}
	return len(ns), nil
}

// InviteBestSeller sends a best-seller program invitation to one approved
// vendor
func (s *Service) InviteBestSeller(ctx context.Context, vendorID uuid.UUID) (*NotificationResponse, error) {
	v, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if !v.IsApproved() {
		return nil, shared.NewDomainError("INVALID_STATE", "Only approved vendors can be invited to the best seller program")
	}

	n, err := notification.New(vendorID, notification.TypeBestSeller,
		"Best seller program invitation",
		"Congratulations! You have been selected for the best seller program. Choose your featured products to participate.",
		map[string]any{"status": "pending_selection"})
	if err != nil {
		return nil, err
	}
	if err := s.notifRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	s.logger.Info("best seller invite sent", zap.String("vendor_id", vendorID.String()))

	resp := ToNotificationResponse(n)
	return &resp, nil
}

// ListForVendor returns a vendor's notifications, most recent first
func (s *Service) ListForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) (*shared.Paginated[NotificationResponse], error) {
	ns, err := s.notifRepo.FindByVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.notifRepo.CountByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(ToNotificationResponses(ns), total, filter.Page, filter.PageSize)
	return &result, nil
}

// UnreadCount returns a vendor's unread counter
func (s *Service) UnreadCount(ctx context.Context, vendorID uuid.UUID) (*UnreadCountResponse, error) {
	n, err := s.notifRepo.CountUnread(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return &UnreadCountResponse{Unread: n}, nil
}

// MarkRead marks one notification read. Notifications owned by another
// vendor are reported as not found rather than forbidden, so the endpoint
// does not leak which ids exist.
func (s *Service) MarkRead(ctx context.Context, vendorID, notificationID uuid.UUID) (*NotificationResponse, error) {
	n, err := s.notifRepo.FindByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.VendorID != vendorID {
		return nil, shared.ErrNotFound
	}

	n.MarkRead()
	if err := s.notifRepo.Save(ctx, n); err != nil {
		return nil, err
	}

	resp := ToNotificationResponse(n)
	return &resp, nil
}

// MarkAllRead marks every unread notification of the vendor read
func (s *Service) MarkAllRead(ctx context.Context, vendorID uuid.UUID) (*MarkReadResult, error) {
	n, err := s.notifRepo.MarkAllRead(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return &MarkReadResult{Updated: n}, nil
}

const historyLimit = 100

// History returns the most recent vendor notifications across all vendors,
// capped at historyLimit.
func (s *Service) History(ctx context.Context) ([]NotificationResponse, error) {
	ns, err := s.notifRepo.FindRecent(ctx, historyLimit)
	if err != nil {
		return nil, err
	}
	return ToNotificationResponses(ns), nil
}

// ListAdmin returns admin alerts, most recent first
func (s *Service) ListAdmin(ctx context.Context, filter shared.Filter) ([]AdminNotificationResponse, error) {
	ns, err := s.adminRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToAdminNotificationResponses(ns), nil
}

// AdminUnreadCount returns the unread admin alert counter
func (s *Service) AdminUnreadCount(ctx context.Context) (*UnreadCountResponse, error) {
	n, err := s.adminRepo.CountUnread(ctx)
	if err != nil {
		return nil, err
	}
	return &UnreadCountResponse{Unread: n}, nil
}

// MarkAllAdminRead marks every unread admin alert read
func (s *Service) MarkAllAdminRead(ctx context.Context) (*MarkReadResult, error) {
	n, err := s.adminRepo.MarkAllRead(ctx)
	if err != nil {
		return nil, err
	}
	return &MarkReadResult{Updated: n}, nil
}
