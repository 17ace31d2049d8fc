package catalog

import (
	"time"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a sellable entry in the catalog. It always carries an effective
// category reference; the sub-category reference is optional. The financial
// triple satisfies TotalAmount == BaseAmount - Discount exactly.
type Item struct {
	shared.BaseEntity
	Name          string           `gorm:"type:varchar(200);not null;index"`
	Image         string           `gorm:"type:varchar(500);not null"`
	Description   string           `gorm:"type:text;not null"`
	TaxApplicable bool             `gorm:"not null;default:false"`
	Tax           *decimal.Decimal `gorm:"type:decimal(18,4)"`
	BaseAmount    decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	Discount      decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount   decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	CategoryID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	SubCategoryID *uuid.UUID       `gorm:"type:uuid;index"`
	Category      *Category        `gorm:"foreignKey:CategoryID"`
	SubCategory   *SubCategory     `gorm:"foreignKey:SubCategoryID"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// ItemAmounts groups the validated financial fields of an item
type ItemAmounts struct {
	BaseAmount  decimal.Decimal
	Discount    decimal.Decimal
	TotalAmount decimal.Decimal
}

// Consistent reports whether the amounts satisfy the subtraction identity
func (a ItemAmounts) Consistent() bool {
	return a.BaseAmount.Sub(a.Discount).Equal(a.TotalAmount)
}

// NewItem creates a new item under the given parent references
func NewItem(name, image, description string, taxApplicable bool, tax *decimal.Decimal, amounts ItemAmounts, categoryID uuid.UUID, subCategoryID *uuid.UUID) *Item {
	i := &Item{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Image:       image,
		Description: description,
	}
	i.apply(taxApplicable, tax, amounts, categoryID, subCategoryID)
	return i
}

// Replace applies a full replacement of the item's validated fields
func (i *Item) Replace(name, image, description string, taxApplicable bool, tax *decimal.Decimal, amounts ItemAmounts, categoryID uuid.UUID, subCategoryID *uuid.UUID) {
	i.Name = name
	i.Image = image
	i.Description = description
	i.apply(taxApplicable, tax, amounts, categoryID, subCategoryID)
	i.UpdatedAt = time.Now()
}

func (i *Item) apply(taxApplicable bool, tax *decimal.Decimal, amounts ItemAmounts, categoryID uuid.UUID, subCategoryID *uuid.UUID) {
	i.TaxApplicable = taxApplicable
	if taxApplicable {
		i.Tax = tax
	} else {
		i.Tax = nil
	}
	i.BaseAmount = amounts.BaseAmount
	i.Discount = amounts.Discount
	i.TotalAmount = amounts.TotalAmount
	i.CategoryID = categoryID
	i.SubCategoryID = subCategoryID
}
