package dto

import "github.com/aarondl/null/v8"

type CreateCategoryDTO struct {
	Name        string      `json:"name" validate:"required,notblank,max=100"`
	Description null.String `json:"description" validate:"omitempty,max=500"`
}
