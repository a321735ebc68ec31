package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/greenhub/backend/internal/domain/notification"
	"github.com/greenhub/backend/internal/domain/shared"
	"github.com/greenhub/backend/internal/domain/vendor"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockVendorRepository is a mock implementation of vendor.Repository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) WithTx(tx any) vendor.Repository {
	return m
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByEmail(ctx context.Context, email string) (*vendor.Vendor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByAuthUserID(ctx context.Context, authUserID uuid.UUID) (*vendor.Vendor, error) {
	args := m.Called(ctx, authUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]vendor.Vendor, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]vendor.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByStatus(ctx context.Context, status vendor.Status, filter shared.Filter) ([]vendor.Vendor, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]vendor.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindApproved(ctx context.Context) ([]vendor.Vendor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]vendor.Vendor), args.Error(1)
}

func (m *MockVendorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockVendorRepository) Save(ctx context.Context, v *vendor.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVendorRepository) ApprovePending(ctx context.Context, id, authUserID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, authUserID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVendorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVendorRepository) CountByStatus(ctx context.Context, status vendor.Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockNotificationRepository is a mock implementation of notification.Repository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) WithTx(tx any) notification.Repository {
	return m
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]notification.Notification, error) {
	args := m.Called(ctx, vendorID, filter)
	return args.Get(0).([]notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) CreateBatch(ctx context.Context, ns []*notification.Notification) error {
	args := m.Called(ctx, ns)
	return args.Error(0)
}

func (m *MockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) FindRecent(ctx context.Context, limit int) ([]notification.Notification, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) DeleteByVendor(ctx context.Context, vendorID uuid.UUID) error {
	args := m.Called(ctx, vendorID)
	return args.Error(0)
}

func (m *MockNotificationRepository) CountByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).(int64), args.Error(1)
}

// MockAdminNotificationRepository is a mock implementation of notification.AdminRepository
type MockAdminNotificationRepository struct {
	mock.Mock
}

func (m *MockAdminNotificationRepository) WithTx(tx any) notification.AdminRepository {
	return m
}

func (m *MockAdminNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.AdminNotification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.AdminNotification), args.Error(1)
}

func (m *MockAdminNotificationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]notification.AdminNotification, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]notification.AdminNotification), args.Error(1)
}

func (m *MockAdminNotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminNotificationRepository) Create(ctx context.Context, n *notification.AdminNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockAdminNotificationRepository) Save(ctx context.Context, n *notification.AdminNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockAdminNotificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// stubTxManager runs the callback with a nil handle
type stubTxManager struct{}

func (s *stubTxManager) Do(ctx context.Context, fn func(tx any) error) error {
	return fn(nil)
}
