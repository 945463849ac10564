package dto

import "association-console/internal/entities"

type EquipmentDetailsDTO struct {
	Reference       string  `json:"reference" validate:"omitempty,max=50"`
	Category        string  `json:"category" validate:"required,notblank"`
	Brand           string  `json:"brand" validate:"omitempty,max=100"`
	Source          string  `json:"source" validate:"required,notblank"`
	Usage           string  `json:"usage" validate:"omitempty,max=200"`
	Status          string  `json:"status" validate:"required,notblank"`
	AcquisitionType string  `json:"acquisitionType" validate:"required,notblank"`
	MonetaryValue   float64 `json:"monetaryValue" validate:"gte=0"`
}

// CreateEquipmentDTO creates Quantity identical items, one request each. The
// upper bound of Quantity is BATCH_MAX_QUANTITY, checked by the service.
type CreateEquipmentDTO struct {
	Reference       string  `json:"reference" validate:"omitempty,max=50"`
	Category        string  `json:"category" validate:"required,notblank"`
	Brand           string  `json:"brand" validate:"omitempty,max=100"`
	Source          string  `json:"source" validate:"required,notblank"`
	Usage           string  `json:"usage" validate:"omitempty,max=200"`
	Status          string  `json:"status" validate:"required,notblank"`
	AcquisitionType string  `json:"acquisitionType" validate:"required,notblank"`
	MonetaryValue   float64 `json:"monetaryValue" validate:"gte=0"`
	Quantity        int     `json:"quantity" validate:"required,gte=1"`
}

// Details is the payload sent for every item of the batch.
func (d CreateEquipmentDTO) Details() EquipmentDetailsDTO {
	return EquipmentDetailsDTO{
		Reference:       d.Reference,
		Category:        d.Category,
		Brand:           d.Brand,
		Source:          d.Source,
		Usage:           d.Usage,
		Status:          d.Status,
		AcquisitionType: d.AcquisitionType,
		MonetaryValue:   d.MonetaryValue,
	}
}

type BatchItemErrorDTO struct {
	Index   int    `json:"index" yaml:"index"`
	Message string `json:"message" yaml:"message"`
}

// BatchResultDTO is the partial-success report of a batch creation.
type BatchResultDTO struct {
	Requested int                         `json:"requested" yaml:"requested"`
	Succeeded int                         `json:"succeeded" yaml:"succeeded"`
	Failed    int                         `json:"failed" yaml:"failed"`
	Created   []entities.MedicalEquipment `json:"created" yaml:"created"`
	Errors    []BatchItemErrorDTO         `json:"errors" yaml:"errors"`
}

func (r *BatchResultDTO) AddFailure(index int, message string) {
	r.Failed++
	r.Errors = append(r.Errors, BatchItemErrorDTO{Index: index, Message: message})
}
