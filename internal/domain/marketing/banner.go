package marketing

import (
	"time"

	"github.com/greenhub/backend/internal/domain/shared"
)

// Banner is a homepage promotion slot. Banners are persisted rows, not the
// in-process fixture lists the storefront originally shipped with.
type Banner struct {
	shared.BaseEntity
	Title    string `gorm:"type:varchar(200);not null"`
	Subtitle string `gorm:"type:varchar(300)"`
	ImageURL string `gorm:"type:varchar(500);not null"`
	LinkURL  string `gorm:"type:varchar(500)"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (Banner) TableName() string {
	return "banners"
}

// NewBanner creates an active banner
func NewBanner(title, subtitle, imageURL, linkURL string) (*Banner, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Banner title cannot be empty")
	}
	if imageURL == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Banner image URL cannot be empty")
	}
	return &Banner{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Subtitle:   subtitle,
		ImageURL:   imageURL,
		LinkURL:    linkURL,
		IsActive:   true,
	}, nil
}

// Deactivate hides the banner from the storefront
func (b *Banner) Deactivate() {
	b.IsActive = false
	b.UpdatedAt = time.Now()
}
