package catalog

import (
	"time"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubCategory belongs to exactly one Category. Its tax configuration is
// inherited from the owning category when not supplied explicitly; that
// gap-filling happens in the application layer before construction.
type SubCategory struct {
	shared.BaseEntity
	Name          string           `gorm:"type:varchar(200);not null;index"`
	Image         string           `gorm:"type:varchar(500);not null"`
	Description   string           `gorm:"type:text;not null"`
	CategoryID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	TaxApplicable bool             `gorm:"not null;default:false"`
	Tax           *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Category      *Category        `gorm:"foreignKey:CategoryID"`
	Items         []Item           `gorm:"foreignKey:SubCategoryID"`
}

// TableName returns the table name for GORM
func (SubCategory) TableName() string {
	return "sub_categories"
}

// NewSubCategory creates a new sub-category under the given category
func NewSubCategory(name, image, description string, categoryID uuid.UUID, taxApplicable bool, tax *decimal.Decimal) *SubCategory {
	s := &SubCategory{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Image:       image,
		Description: description,
		CategoryID:  categoryID,
	}
	s.setTax(taxApplicable, tax)
	return s
}

// Replace applies a full replacement of the sub-category's validated fields
func (s *SubCategory) Replace(name, image, description string, categoryID uuid.UUID, taxApplicable bool, tax *decimal.Decimal) {
	s.Name = name
	s.Image = image
	s.Description = description
	s.CategoryID = categoryID
	s.setTax(taxApplicable, tax)
	s.UpdatedAt = time.Now()
}

func (s *SubCategory) setTax(taxApplicable bool, tax *decimal.Decimal) {
	s.TaxApplicable = taxApplicable
	if taxApplicable {
		s.Tax = tax
	} else {
		s.Tax = nil
	}
}
