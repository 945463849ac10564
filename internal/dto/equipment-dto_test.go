package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"association-console/pkg/validation"
)

func TestCreateEquipmentDTO_QuantityUpperBoundIsConfigurable(t *testing.T) {
	v := validation.New()
	form := CreateEquipmentDTO{
		Category:        "wheelchair",
		Source:          "donation",
		Status:          "available",
		AcquisitionType: "gift",
		Quantity:        120,
	}
	assert.NoError(t, v.Validate(&form))

	form.Quantity = 0
	assert.Error(t, v.Validate(&form))
}
