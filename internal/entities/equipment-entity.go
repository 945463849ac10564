package entities

import (
	"strconv"
	"time"
)

type MedicalEquipment struct {
	ID              int64      `json:"id"`
	Reference       string     `json:"reference"`
	Category        string     `json:"category"`
	Brand           string     `json:"brand"`
	Source          string     `json:"source"`
	Usage           string     `json:"usage"`
	Status          string     `json:"status"`
	AcquisitionType string     `json:"acquisitionType"`
	MonetaryValue   float64    `json:"monetaryValue"`
	Dispatches      []Dispatch `json:"dispatches"`
}

var EquipmentSearchFields = []string{"reference", "category", "brand", "source", "usage", "acquisitionType"}

func (e MedicalEquipment) Field(name string) string {
	switch name {
	case "id":
		return strconv.FormatInt(e.ID, 10)
	case "reference":
		return e.Reference
	case "category":
		return e.Category
	case "brand":
		return e.Brand
	case "source":
		return e.Source
	case "usage":
		return e.Usage
	case "status":
		return e.Status
	case "acquisitionType":
		return e.AcquisitionType
	}
	return ""
}

func (e MedicalEquipment) StatusValue() string { return e.Status }

// DateValue: equipment records carry no date.
func (e MedicalEquipment) DateValue() (time.Time, bool) { return time.Time{}, false }

// OnLoan reports whether one of the dispatches is not returned yet.
func (e MedicalEquipment) OnLoan() bool {
	for _, d := range e.Dispatches {
		if !d.Returned() {
			return true
		}
	}
	return false
}
