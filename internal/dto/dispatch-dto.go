package dto

import "association-console/pkg/types"

const (
	ViewOngoing   = "ongoing"
	ViewCompleted = "completed"
	ViewAll       = "all"
)

// CreateDispatchDTO is the loan form. The signed PDF travels as the
// "pdfFile" part of the same multipart request.
type CreateDispatchDTO struct {
	MedicalEquipmentID int64      `json:"medicalEquipmentId" form:"medicalEquipmentId" validate:"required,gt=0"`
	Beneficiary        string     `json:"beneficiary" form:"beneficiary" validate:"required,notblank"`
	PatientPhone       string     `json:"patientPhone" form:"patientPhone" validate:"required,phone8"`
	PatientCIN         string     `json:"patientCIN" form:"patientCIN" validate:"required,cin8"`
	Coordinator        string     `json:"coordinator" form:"coordinator" validate:"required,notblank"`
	ResponsiblePerson  string     `json:"responsiblePerson" form:"responsiblePerson" validate:"required,notblank"`
	DispatchDate       types.Date `json:"dispatchDate" form:"dispatchDate" validate:"required"`
	ReturnDate         types.Date `json:"returnDate" form:"returnDate" validate:"omitempty,gtefield=DispatchDate"`
}

// ReturnDispatchDTO marks a loan as returned. An empty date means today.
type ReturnDispatchDTO struct {
	ReturnDate types.Date `json:"returnDate" form:"returnDate"`
}

type DispatchListQuery struct {
	View string `json:"view" query:"view" validate:"omitempty,oneof=ongoing completed all"`
}
