package persistence

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/greenhub/backend/internal/domain/catalog"
	"github.com/greenhub/backend/internal/domain/identity"
	"github.com/greenhub/backend/internal/domain/marketing"
	"github.com/greenhub/backend/internal/domain/notification"
	"github.com/greenhub/backend/internal/domain/order"
	"github.com/greenhub/backend/internal/domain/vendor"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache memory database keeps every pooled connection on
	// the same schema; the random name isolates parallel tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&vendor.Vendor{},
		&notification.Notification{},
		&notification.AdminNotification{},
		&catalog.Category{},
		&catalog.Product{},
		&order.Order{},
		&order.OrderItem{},
		&marketing.Banner{},
		&marketing.Offer{},
		&identity.User{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// newTestVendor builds a valid pending vendor for repository tests
func newTestVendor(t *testing.T, email string) *vendor.Vendor {
	t.Helper()
	v, err := vendor.NewVendor(vendor.Registration{
		BusinessName:   "Green Farms",
		ContactEmail:   email,
		PhoneNumber:    "9876543210",
		AddressLine:    "12 Market Road",
		City:           "Pune",
		State:          "Maharashtra",
		Pincode:        "411001",
		SellerCategory: vendor.SellerCategoryNPOPOrganic,
	})
	require.NoError(t, err)
	return v
}
