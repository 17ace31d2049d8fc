package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ParentResolver translates human-supplied category and sub-category names
// into concrete parent references. Lookups are case-insensitive; when several
// stored entities share a case-folded name the repository's earliest-created
// tie-break decides.
type ParentResolver struct {
	categoryRepo    catalog.CategoryRepository
	subCategoryRepo catalog.SubCategoryRepository
}

// NewParentResolver creates a new ParentResolver
func NewParentResolver(
	categoryRepo catalog.CategoryRepository,
	subCategoryRepo catalog.SubCategoryRepository,
) *ParentResolver {
	return &ParentResolver{
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
	}
}

// ParentRef is a resolved parent context for an item
type ParentRef struct {
	CategoryID    uuid.UUID
	SubCategoryID *uuid.UUID
}

// ResolveItemParent resolves an item's parent context. A sub-category name
// takes precedence: its own ancestry is authoritative even when an
// inconsistent category name is also supplied. When neither name resolves to
// a usable reference the caller gets ErrMissingParent.
func (r *ParentResolver) ResolveItemParent(ctx context.Context, categoryName, subCategoryName string) (ParentRef, error) {
	if subCategoryName != "" {
		sub, err := r.subCategoryRepo.FindByName(ctx, subCategoryName)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return ParentRef{}, parentNotFound("Sub-category", subCategoryName)
			}
			return ParentRef{}, err
		}
		subID := sub.ID
		return ParentRef{CategoryID: sub.CategoryID, SubCategoryID: &subID}, nil
	}

	if categoryName != "" {
		category, err := r.categoryRepo.FindByName(ctx, categoryName)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return ParentRef{}, parentNotFound("Category", categoryName)
			}
			return ParentRef{}, err
		}
		return ParentRef{CategoryID: category.ID}, nil
	}

	return ParentRef{}, shared.ErrMissingParent
}

// ResolveCategory resolves a category by name. Used by the sub-category
// service both for the parent reference and as the source of inherited tax
// configuration.
func (r *ParentResolver) ResolveCategory(ctx context.Context, name string) (*catalog.Category, error) {
	category, err := r.categoryRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, parentNotFound("Category", name)
		}
		return nil, err
	}
	return category, nil
}

func parentNotFound(kind, name string) error {
	return shared.NewDomainError("PARENT_NOT_FOUND", fmt.Sprintf("%s %q not found", kind, name))
}
