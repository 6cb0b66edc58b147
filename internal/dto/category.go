package dto

import "github.com/finledger/fin_ledger_app/internal/core/domain"

// CreateCategoryRequest defines the data needed to create a new category.
// IsIncome is a pointer so that an explicit false survives binding.
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	IsIncome *bool  `json:"isIncome" binding:"required"`
}

// ListCategoriesParams filters the category listing by polarity.
type ListCategoriesParams struct {
	Kind string `form:"kind" binding:"omitempty,oneof=income expense"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	IsIncome   bool   `json:"isIncome"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: cat.CategoryID,
		Name:       cat.Name,
		IsIncome:   cat.IsIncome,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = ToCategoryResponse(&cat)
	}
	return res
}
