package entities

import (
	"strconv"
	"time"

	"github.com/aarondl/null/v8"

	"association-console/pkg/types"
)

const (
	DispatchOngoing   = "ongoing"
	DispatchCompleted = "completed"
)

// Dispatch is an equipment loan. It is ongoing until ReturnDate is set.
type Dispatch struct {
	ID                 int64       `json:"id"`
	MedicalEquipmentID int64       `json:"medicalEquipmentId"`
	Beneficiary        string      `json:"beneficiary"`
	PatientPhone       string      `json:"patientPhone"`
	PatientCIN         string      `json:"patientCIN"`
	Coordinator        string      `json:"coordinator"`
	ResponsiblePerson  string      `json:"responsiblePerson"`
	DispatchDate       types.Date  `json:"dispatchDate"`
	ReturnDate         types.Date  `json:"returnDate"`
	PDFFilePath        null.String `json:"pdfFilePath"`
}

var DispatchSearchFields = []string{"beneficiary", "patientPhone", "patientCIN", "coordinator", "responsiblePerson"}

func (d Dispatch) Returned() bool { return d.ReturnDate.Valid() }

func (d Dispatch) Field(name string) string {
	switch name {
	case "id":
		return strconv.FormatInt(d.ID, 10)
	case "medicalEquipmentId":
		return strconv.FormatInt(d.MedicalEquipmentID, 10)
	case "beneficiary":
		return d.Beneficiary
	case "patientPhone":
		return d.PatientPhone
	case "patientCIN":
		return d.PatientCIN
	case "coordinator":
		return d.Coordinator
	case "responsiblePerson":
		return d.ResponsiblePerson
	case "dispatchDate":
		return d.DispatchDate.String()
	case "returnDate":
		return d.ReturnDate.String()
	}
	return ""
}

func (d Dispatch) StatusValue() string {
	if d.Returned() {
		return DispatchCompleted
	}
	return DispatchOngoing
}

func (d Dispatch) DateValue() (time.Time, bool) {
	return d.DispatchDate.Time, d.DispatchDate.Valid()
}
