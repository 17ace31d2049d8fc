package catalog

import (
	"time"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CategoryPayload is the write payload for categories. The same shape is
// used for create and update; updates fully replace the validated fields.
type CategoryPayload struct {
	Name          string           `json:"name" validate:"required"`
	Image         string           `json:"image" validate:"required,url"`
	Description   string           `json:"description" validate:"required"`
	TaxApplicable *bool            `json:"taxApplicable" validate:"required"`
	Tax           *decimal.Decimal `json:"tax"`
	TaxType       *string          `json:"taxType" validate:"omitempty,oneof=PERCENTAGE FIXED"`
}

// SubCategoryPayload is the write payload for sub-categories. The parent is
// referenced by category name, not by id. Absent tax fields inherit the
// resolved category's values.
type SubCategoryPayload struct {
	Name          string           `json:"name" validate:"required"`
	Image         string           `json:"image" validate:"required,url"`
	Description   string           `json:"description" validate:"required"`
	CategoryName  string           `json:"categoryName" validate:"required"`
	TaxApplicable *bool            `json:"taxApplicable"`
	Tax           *decimal.Decimal `json:"tax"`
}

// ItemPayload is the write payload for items. At least one of categoryName
// and subCategoryName must resolve; the sub-category's ancestry wins when
// both are supplied.
type ItemPayload struct {
	Name            string           `json:"name" validate:"required"`
	Image           string           `json:"image" validate:"required,url"`
	Description     string           `json:"description" validate:"required"`
	TaxApplicable   *bool            `json:"taxApplicable" validate:"required"`
	Tax             *decimal.Decimal `json:"tax"`
	BaseAmount      *decimal.Decimal `json:"baseAmount" validate:"required"`
	Discount        *decimal.Decimal `json:"discount"`
	TotalAmount     *decimal.Decimal `json:"totalAmount" validate:"required"`
	CategoryName    string           `json:"categoryName"`
	SubCategoryName string           `json:"subCategoryName"`
}

// CategoryInfo is the flat representation of a category, without relations
type CategoryInfo struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Image         string           `json:"image"`
	Description   string           `json:"description"`
	TaxApplicable bool             `json:"taxApplicable"`
	Tax           *decimal.Decimal `json:"tax"`
	TaxType       *string          `json:"taxType"`
	CreatedAt     string           `json:"createdAt"`
	UpdatedAt     string           `json:"updatedAt"`
}

// SubCategoryInfo is the flat representation of a sub-category
type SubCategoryInfo struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Image         string           `json:"image"`
	Description   string           `json:"description"`
	CategoryID    string           `json:"categoryId"`
	TaxApplicable bool             `json:"taxApplicable"`
	Tax           *decimal.Decimal `json:"tax"`
	CreatedAt     string           `json:"createdAt"`
	UpdatedAt     string           `json:"updatedAt"`
}

// ItemInfo is the flat representation of an item
type ItemInfo struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Image         string           `json:"image"`
	Description   string           `json:"description"`
	TaxApplicable bool             `json:"taxApplicable"`
	Tax           *decimal.Decimal `json:"tax"`
	BaseAmount    decimal.Decimal  `json:"baseAmount"`
	Discount      decimal.Decimal  `json:"discount"`
	TotalAmount   decimal.Decimal  `json:"totalAmount"`
	CategoryID    string           `json:"categoryId"`
	SubCategoryID *string          `json:"subCategoryId"`
	CreatedAt     string           `json:"createdAt"`
	UpdatedAt     string           `json:"updatedAt"`
}

// CategoryResponse is a category with its immediate relation set
type CategoryResponse struct {
	CategoryInfo
	SubCategories []SubCategoryInfo `json:"subCategories"`
	Items         []ItemInfo        `json:"items"`
}

// SubCategoryResponse is a sub-category with its parent category and items
type SubCategoryResponse struct {
	SubCategoryInfo
	Category *CategoryInfo `json:"category,omitempty"`
	Items    []ItemInfo    `json:"items"`
}

// ItemResponse is an item with its category and sub-category references
type ItemResponse struct {
	ItemInfo
	Category    *CategoryInfo    `json:"category,omitempty"`
	SubCategory *SubCategoryInfo `json:"subCategory,omitempty"`
}

// ToCategoryInfo converts a category entity to its flat representation
func ToCategoryInfo(c *catalog.Category) CategoryInfo {
	var taxType *string
	if c.TaxType != nil {
		t := string(*c.TaxType)
		taxType = &t
	}
	return CategoryInfo{
		ID:            c.ID.String(),
		Name:          c.Name,
		Image:         c.Image,
		Description:   c.Description,
		TaxApplicable: c.TaxApplicable,
		Tax:           c.Tax,
		TaxType:       taxType,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
}

// ToSubCategoryInfo converts a sub-category entity to its flat representation
func ToSubCategoryInfo(s *catalog.SubCategory) SubCategoryInfo {
	return SubCategoryInfo{
		ID:            s.ID.String(),
		Name:          s.Name,
		Image:         s.Image,
		Description:   s.Description,
		CategoryID:    s.CategoryID.String(),
		TaxApplicable: s.TaxApplicable,
		Tax:           s.Tax,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     s.UpdatedAt.Format(time.RFC3339),
	}
}

// ToItemInfo converts an item entity to its flat representation
func ToItemInfo(i *catalog.Item) ItemInfo {
	var subCategoryID *string
	if i.SubCategoryID != nil {
		id := i.SubCategoryID.String()
		subCategoryID = &id
	}
	return ItemInfo{
		ID:            i.ID.String(),
		Name:          i.Name,
		Image:         i.Image,
		Description:   i.Description,
		TaxApplicable: i.TaxApplicable,
		Tax:           i.Tax,
		BaseAmount:    i.BaseAmount,
		Discount:      i.Discount,
		TotalAmount:   i.TotalAmount,
		CategoryID:    i.CategoryID.String(),
		SubCategoryID: subCategoryID,
		CreatedAt:     i.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     i.UpdatedAt.Format(time.RFC3339),
	}
}

// ToCategoryResponse converts a category and its loaded relations
func ToCategoryResponse(c *catalog.Category) *CategoryResponse {
	resp := &CategoryResponse{
		CategoryInfo:  ToCategoryInfo(c),
		SubCategories: make([]SubCategoryInfo, len(c.SubCategories)),
		Items:         make([]ItemInfo, len(c.Items)),
	}
	for idx := range c.SubCategories {
		resp.SubCategories[idx] = ToSubCategoryInfo(&c.SubCategories[idx])
	}
	for idx := range c.Items {
		resp.Items[idx] = ToItemInfo(&c.Items[idx])
	}
	return resp
}

// ToSubCategoryResponse converts a sub-category and its loaded relations
func ToSubCategoryResponse(s *catalog.SubCategory) *SubCategoryResponse {
	resp := &SubCategoryResponse{
		SubCategoryInfo: ToSubCategoryInfo(s),
		Items:           make([]ItemInfo, len(s.Items)),
	}
	if s.Category != nil {
		info := ToCategoryInfo(s.Category)
		resp.Category = &info
	}
	for idx := range s.Items {
		resp.Items[idx] = ToItemInfo(&s.Items[idx])
	}
	return resp
}

// ToItemResponse converts an item and its loaded relations
func ToItemResponse(i *catalog.Item) *ItemResponse {
	resp := &ItemResponse{
		ItemInfo: ToItemInfo(i),
	}
	if i.Category != nil {
		info := ToCategoryInfo(i.Category)
		resp.Category = &info
	}
	if i.SubCategory != nil {
		info := ToSubCategoryInfo(i.SubCategory)
		resp.SubCategory = &info
	}
	return resp
}
