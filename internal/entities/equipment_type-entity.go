package entities

import "github.com/aarondl/null/v8"

type EquipmentCategory struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
}
