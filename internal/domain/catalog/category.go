package catalog

import (
	"time"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TaxType represents how a tax rate is interpreted
type TaxType string

const (
	TaxTypePercentage TaxType = "PERCENTAGE"
	TaxTypeFixed      TaxType = "FIXED"
)

// IsValid reports whether the tax type is one of the known values
func (t TaxType) IsValid() bool {
	return t == TaxTypePercentage || t == TaxTypeFixed
}

// Category is the root of the product hierarchy.
// Its tax configuration is the source for SubCategory inheritance.
type Category struct {
	shared.BaseEntity
	Name          string           `gorm:"type:varchar(200);not null;index"`
	Image         string           `gorm:"type:varchar(500);not null"`
	Description   string           `gorm:"type:text;not null"`
	TaxApplicable bool             `gorm:"not null;default:false"`
	Tax           *decimal.Decimal `gorm:"type:decimal(18,4)"`
	TaxType       *TaxType         `gorm:"type:varchar(20)"`
	SubCategories []SubCategory    `gorm:"foreignKey:CategoryID"`
	Items         []Item           `gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category. Tax fields are only persisted when
// tax is applicable; supplied values are discarded otherwise.
func NewCategory(name, image, description string, taxApplicable bool, tax *decimal.Decimal, taxType *TaxType) *Category {
	c := &Category{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Image:       image,
		Description: description,
	}
	c.setTax(taxApplicable, tax, taxType)
	return c
}

// Replace applies a full replacement of the category's validated fields
func (c *Category) Replace(name, image, description string, taxApplicable bool, tax *decimal.Decimal, taxType *TaxType) {
	c.Name = name
	c.Image = image
	c.Description = description
	c.setTax(taxApplicable, tax, taxType)
	c.UpdatedAt = time.Now()
}

func (c *Category) setTax(taxApplicable bool, tax *decimal.Decimal, taxType *TaxType) {
	c.TaxApplicable = taxApplicable
	if taxApplicable {
		c.Tax = tax
		c.TaxType = taxType
	} else {
		c.Tax = nil
		c.TaxType = nil
	}
}
