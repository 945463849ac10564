package dto

import "association-console/pkg/types"

// DonDTO is used for both creation and update. The optional legal file is
// the "legalFile" part of the multipart request.
type DonDTO struct {
	Reference     string     `json:"reference" form:"reference" validate:"omitempty,max=50"`
	Category      string     `json:"category" form:"category" validate:"required,notblank"`
	Brand         string     `json:"brand" form:"brand" validate:"omitempty,max=100"`
	Source        string     `json:"source" form:"source" validate:"required,notblank"`
	Usage         string     `json:"usage" form:"usage" validate:"omitempty,max=200"`
	DateOfEntry   types.Date `json:"dateOfEntry" form:"dateOfEntry" validate:"required"`
	DateOfExit    types.Date `json:"dateOfExit" form:"dateOfExit" validate:"omitempty,gtefield=DateOfEntry"`
	Status        string     `json:"status" form:"status" validate:"required,notblank"`
	MonetaryValue float64    `json:"monetaryValue" form:"monetaryValue" validate:"gte=0"`
	DonsType      string     `json:"donsType" form:"donsType" validate:"required,notblank"`
	DonsScope     string     `json:"donsScope" form:"donsScope" validate:"omitempty,max=100"`
	Nature        string     `json:"nature" form:"nature" validate:"required,oneof=gift testament donation"`
}

type DonListQuery struct {
	Nature string `json:"nature" query:"nature" validate:"omitempty,oneof=gift testament donation"`
}
