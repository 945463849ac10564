package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"association-console/internal/entities"
)

func TestWriteXLSX_DispatchesReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, DispatchesReport(sampleDispatches()[:2])))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"الإعارات"}, f.GetSheetList())
	rows, err := f.GetRows("الإعارات")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "المستفيد", rows[0][1])
	assert.Equal(t, []string{"7", "Salma", "", "", "", "", "01/05/2024"}, rows[1])
	assert.Equal(t, "20/04/2024", rows[2][7])
}

func TestDonsReport_SheetPerNature(t *testing.T) {
	assert.Equal(t, "وصايا", DonsReport(entities.NatureTestament, nil).Sheet)
	assert.Equal(t, "التبرعات", DonsReport("", nil).Sheet)

	r := DonsReport(entities.NatureGift, sampleDons()[:1])
	require.Len(t, r.Rows, 1)
	assert.Equal(t, "05/01/2024", r.Rows[0][5])
	assert.Equal(t, "", r.Rows[0][6])
	assert.Equal(t, "هبات", r.Rows[0][11])
}
