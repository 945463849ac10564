package services

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"association-console/internal/entities"
	"association-console/pkg/types"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const reportDateFormat = "02/01/2006"

// Report is one worksheet of an export.
type Report struct {
	Sheet   string
	Headers []string
	Rows    [][]interface{}
	Widths  map[string]float64
}

// WriteXLSX renders the report as an .xlsx workbook.
func WriteXLSX(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", r.Sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(r.Sheet, "A1", &r.Headers); err != nil {
		return err
	}
	if len(r.Headers) > 0 {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return err
		}
		last, _ := excelize.CoordinatesToCellName(len(r.Headers), 1)
		if err := f.SetCellStyle(r.Sheet, "A1", last, style); err != nil {
			return err
		}
	}
	if err := f.SetSheetView(r.Sheet, 0, &excelize.ViewOptions{RightToLeft: boolPtr(true)}); err != nil {
		return err
	}

	for i, row := range r.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := row
		if err := f.SetSheetRow(r.Sheet, cell, &row); err != nil {
			return err
		}
	}
	for col, width := range r.Widths {
		if err := f.SetColWidth(r.Sheet, col, col, width); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func ReportFileName(kind string) string {
	return fmt.Sprintf("%s_%s.xlsx", kind, time.Now().Format("2006-01-02"))
}

func boolPtr(b bool) *bool { return &b }

func formatReportDate(d types.Date) string {
	if !d.Valid() {
		return ""
	}
	return d.Format(reportDateFormat)
}

var natureLabels = map[string]string{
	entities.NatureGift:      "هبات",
	entities.NatureTestament: "وصايا",
	entities.NatureDonation:  "تبرعات",
}

func DonsReport(nature string, dons []entities.Don) Report {
	sheet, ok := natureLabels[nature]
	if !ok {
		sheet = "التبرعات"
	}
	r := Report{
		Sheet: sheet,
		Headers: []string{
			"المرجع", "الصنف", "العلامة", "المصدر", "الاستعمال", "تاريخ الدخول", "تاريخ الخروج",
			"الحالة", "القيمة المالية", "النوع", "النطاق", "الطبيعة",
		},
		Widths: map[string]float64{"A": 18, "B": 22, "D": 22, "E": 22},
	}
	for _, d := range dons {
		r.Rows = append(r.Rows, []interface{}{
			d.Reference, d.Category, d.Brand, d.Source, d.Usage,
			formatReportDate(d.DateOfEntry),
			formatReportDate(d.DateOfExit),
			d.Status, d.MonetaryValue, d.DonsType, d.DonsScope, natureLabels[d.Nature],
		})
	}
	return r
}

func EquipmentReport(items []entities.MedicalEquipment) Report {
	r := Report{
		Sheet: "المعدات الطبية",
		Headers: []string{
			"المرجع", "الصنف", "العلامة", "المصدر", "الاستعمال", "الحالة", "طريقة الاقتناء", "القيمة المالية", "عدد الإعارات",
		},
		Widths: map[string]float64{"A": 18, "B": 22, "D": 22, "G": 20},
	}
	for _, e := range items {
		r.Rows = append(r.Rows, []interface{}{
			e.Reference, e.Category, e.Brand, e.Source, e.Usage, e.Status, e.AcquisitionType, e.MonetaryValue, len(e.Dispatches),
		})
	}
	return r
}

func DispatchesReport(dispatches []entities.Dispatch) Report {
	r := Report{
		Sheet: "الإعارات",
		Headers: []string{
			"رقم المعدات", "المستفيد", "هاتف المريض", "بطاقة التعريف", "المنسق", "المسؤول", "تاريخ الإعارة", "تاريخ الإرجاع",
		},
		Widths: map[string]float64{"B": 25, "E": 20, "F": 20},
	}
	for _, d := range dispatches {
		r.Rows = append(r.Rows, []interface{}{
			d.MedicalEquipmentID, d.Beneficiary, d.PatientPhone, d.PatientCIN, d.Coordinator, d.ResponsiblePerson,
			formatReportDate(d.DispatchDate),
			formatReportDate(d.ReturnDate),
		})
	}
	return r
}
