package catalog

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError describes a single field-level validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full list of field errors for a payload so a
// client can correct everything in one round trip
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// validate is shared by all payload checks. Validation is pure and
// deterministic: field order follows struct declaration order.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCategoryPayload checks shape and cross-field consistency of a
// category payload. Returns nil or a *ValidationError with every failure.
func ValidateCategoryPayload(p CategoryPayload) error {
	fields := shapeErrors(p)

	if p.TaxApplicable != nil && *p.TaxApplicable {
		if p.Tax == nil {
			fields = append(fields, FieldError{Field: "tax", Message: "Tax is required when tax is applicable"})
		}
		if p.TaxType == nil {
			fields = append(fields, FieldError{Field: "taxType", Message: "Tax type is required when tax is applicable"})
		}
	}

	return asValidationError(fields)
}

// ValidateSubCategoryPayload checks shape rules of a sub-category payload.
// Tax fields are optional here: absence triggers inheritance, so no
// cross-field refinement applies.
func ValidateSubCategoryPayload(p SubCategoryPayload) error {
	return asValidationError(shapeErrors(p))
}

// ValidateItemPayload checks shape and cross-field consistency of an item
// payload, including the exact subtraction identity on the amounts.
func ValidateItemPayload(p ItemPayload) error {
	fields := shapeErrors(p)

	if p.TaxApplicable != nil && *p.TaxApplicable && p.Tax == nil {
		fields = append(fields, FieldError{Field: "tax", Message: "Tax is required when tax is applicable"})
	}
	if p.BaseAmount != nil && p.BaseAmount.IsNegative() {
		fields = append(fields, FieldError{Field: "baseAmount", Message: "Base amount must be positive"})
	}
	if p.Discount != nil && p.Discount.IsNegative() {
		fields = append(fields, FieldError{Field: "discount", Message: "Discount must be positive"})
	}
	if p.TotalAmount != nil && p.TotalAmount.IsNegative() {
		fields = append(fields, FieldError{Field: "totalAmount", Message: "Total amount must be positive"})
	}
	if p.BaseAmount != nil && p.TotalAmount != nil {
		discount := decimal.Zero
		if p.Discount != nil {
			discount = *p.Discount
		}
		if !p.BaseAmount.Sub(discount).Equal(*p.TotalAmount) {
			fields = append(fields, FieldError{Field: "totalAmount", Message: "Total amount must be base amount minus discount"})
		}
	}

	return asValidationError(fields)
}

// shapeErrors runs tag-based shape validation and converts the result
func shapeErrors(payload any) []FieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: shapeMessage(fe)})
	}
	return fields
}

func shapeMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", titleField(fe.Field()))
	case "url":
		return "Invalid image URL"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", titleField(fe.Field()), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", titleField(fe.Field()))
	}
}

// titleField turns a camelCase JSON name into a human-readable label,
// e.g. "categoryName" -> "Category name"
func titleField(name string) string {
	if name == "" {
		return name
	}
	var b strings.Builder
	for i, r := range name {
		if i == 0 && r >= 'a' && r <= 'z' {
			b.WriteRune(r - ('a' - 'A'))
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func asValidationError(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
