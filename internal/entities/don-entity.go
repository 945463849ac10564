package entities

import (
	"strconv"
	"time"

	"github.com/aarondl/null/v8"

	"association-console/pkg/types"
)

const (
	NatureGift      = "gift"
	NatureTestament = "testament"
	NatureDonation  = "donation"
)

var Natures = []string{NatureGift, NatureTestament, NatureDonation}

// Don is a donation record. Nature splits the collection into the gifts,
// testaments and donations views.
type Don struct {
	ID            int64       `json:"id"`
	Reference     string      `json:"reference"`
	Category      string      `json:"category"`
	Brand         string      `json:"brand"`
	Source        string      `json:"source"`
	Usage         string      `json:"usage"`
	DateOfEntry   types.Date  `json:"dateOfEntry"`
	DateOfExit    types.Date  `json:"dateOfExit"`
	Status        string      `json:"status"`
	MonetaryValue float64     `json:"monetaryValue"`
	DonsType      string      `json:"donsType"`
	DonsScope     string      `json:"donsScope"`
	Nature        string      `json:"nature"`
	LegalFilePath null.String `json:"legalFilePath"`
}

var DonSearchFields = []string{"reference", "category", "brand", "source", "usage", "donsType", "donsScope"}

func (d Don) Field(name string) string {
	switch name {
	case "id":
		return strconv.FormatInt(d.ID, 10)
	case "reference":
		return d.Reference
	case "category":
		return d.Category
	case "brand":
		return d.Brand
	case "source":
		return d.Source
	case "usage":
		return d.Usage
	case "status":
		return d.Status
	case "donsType":
		return d.DonsType
	case "donsScope":
		return d.DonsScope
	case "nature":
		return d.Nature
	case "dateOfEntry":
		return d.DateOfEntry.String()
	case "dateOfExit":
		return d.DateOfExit.String()
	}
	return ""
}

func (d Don) StatusValue() string { return d.Status }

func (d Don) DateValue() (time.Time, bool) {
	return d.DateOfEntry.Time, d.DateOfEntry.Valid()
}
