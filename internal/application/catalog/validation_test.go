package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func validCategoryPayload() CategoryPayload {
	return CategoryPayload{
		Name:          "Beverages",
		Image:         "https://cdn.example.com/beverages.png",
		Description:   "Hot and cold drinks",
		TaxApplicable: boolPtr(true),
		Tax:           decPtr("5"),
		TaxType:       strPtr("PERCENTAGE"),
	}
}

func fieldNames(err error) []string {
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		return nil
	}
	names := make([]string, len(vErr.Fields))
	for i, f := range vErr.Fields {
		names[i] = f.Field
	}
	return names
}

func TestValidateCategoryPayload_Valid(t *testing.T) {
	assert.NoError(t, ValidateCategoryPayload(validCategoryPayload()))
}

func TestValidateCategoryPayload_NotApplicableWithoutTax(t *testing.T) {
	p := validCategoryPayload()
	p.TaxApplicable = boolPtr(false)
	p.Tax = nil
	p.TaxType = nil
	assert.NoError(t, ValidateCategoryPayload(p))
}

func TestValidateCategoryPayload_AggregatesAllFailures(t *testing.T) {
	err := ValidateCategoryPayload(CategoryPayload{})

	require.Error(t, err)
	names := fieldNames(err)
	assert.ElementsMatch(t, []string{"name", "image", "description", "taxApplicable"}, names)
}

func TestValidateCategoryPayload_TaxRequiredWhenApplicable(t *testing.T) {
	p := validCategoryPayload()
	p.Tax = nil
	p.TaxType = nil

	err := ValidateCategoryPayload(p)

	require.Error(t, err)
	assert.ElementsMatch(t, []string{"tax", "taxType"}, fieldNames(err))
}

func TestValidateCategoryPayload_InvalidImageURL(t *testing.T) {
	p := validCategoryPayload()
	p.Image = "not-a-url"

	err := ValidateCategoryPayload(p)

	require.Error(t, err)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "image", vErr.Fields[0].Field)
	assert.Equal(t, "Invalid image URL", vErr.Fields[0].Message)
}

func TestValidateCategoryPayload_UnknownTaxType(t *testing.T) {
	p := validCategoryPayload()
	p.TaxType = strPtr("FLAT")

	err := ValidateCategoryPayload(p)

	require.Error(t, err)
	assert.Contains(t, fieldNames(err), "taxType")
}

func TestValidateSubCategoryPayload_TaxFieldsOptional(t *testing.T) {
	p := SubCategoryPayload{
		Name:         "Soft Drinks",
		Image:        "https://cdn.example.com/soft.png",
		Description:  "Carbonated drinks",
		CategoryName: "Beverages",
	}
	assert.NoError(t, ValidateSubCategoryPayload(p))
}

func TestValidateSubCategoryPayload_CategoryNameRequired(t *testing.T) {
	p := SubCategoryPayload{
		Name:        "Soft Drinks",
		Image:       "https://cdn.example.com/soft.png",
		Description: "Carbonated drinks",
	}

	err := ValidateSubCategoryPayload(p)

	require.Error(t, err)
	assert.Equal(t, []string{"categoryName"}, fieldNames(err))
}

func validItemPayload() ItemPayload {
	return ItemPayload{
		Name:          "Cola",
		Image:         "https://cdn.example.com/cola.png",
		Description:   "Chilled can",
		TaxApplicable: boolPtr(false),
		BaseAmount:    decPtr("100"),
		Discount:      decPtr("10"),
		TotalAmount:   decPtr("90"),
		CategoryName:  "Beverages",
	}
}

func TestValidateItemPayload_Valid(t *testing.T) {
	assert.NoError(t, ValidateItemPayload(validItemPayload()))
}

func TestValidateItemPayload_AmountIdentityHolds(t *testing.T) {
	p := validItemPayload()
	p.BaseAmount = decPtr("100.50")
	p.Discount = decPtr("0.50")
	p.TotalAmount = decPtr("100.00")
	assert.NoError(t, ValidateItemPayload(p))
}

func TestValidateItemPayload_AmountIdentityViolated(t *testing.T) {
	p := validItemPayload()
	p.TotalAmount = decPtr("91")

	err := ValidateItemPayload(p)

	require.Error(t, err)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "totalAmount", vErr.Fields[0].Field)
	assert.Equal(t, "Total amount must be base amount minus discount", vErr.Fields[0].Message)
}

func TestValidateItemPayload_OmittedDiscountDefaultsToZero(t *testing.T) {
	p := validItemPayload()
	p.Discount = nil
	p.TotalAmount = decPtr("100")
	assert.NoError(t, ValidateItemPayload(p))
}

func TestValidateItemPayload_NegativeAmounts(t *testing.T) {
	p := validItemPayload()
	p.BaseAmount = decPtr("-5")
	p.Discount = decPtr("-1")
	p.TotalAmount = decPtr("-4")

	err := ValidateItemPayload(p)

	require.Error(t, err)
	assert.ElementsMatch(t, []string{"baseAmount", "discount", "totalAmount"}, fieldNames(err))
}

func TestValidateItemPayload_TaxRequiredWhenApplicable(t *testing.T) {
	p := validItemPayload()
	p.TaxApplicable = boolPtr(true)
	p.Tax = nil

	err := ValidateItemPayload(p)

	require.Error(t, err)
	assert.Equal(t, []string{"tax"}, fieldNames(err))
}

func TestValidateItemPayload_ParentNamesNotShapeChecked(t *testing.T) {
	// Parent references are resolved, not validated: a payload without any
	// parent name still passes shape validation.
	p := validItemPayload()
	p.CategoryName = ""
	p.SubCategoryName = ""
	assert.NoError(t, ValidateItemPayload(p))
}
