package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
)

const (
	reservationsSheet = "Reservations"
	timeLayout        = "2006-01-02 15:04"
)

var reservationHeaders = []string{"ID", "Asset ID", "User", "Category", "Start", "End", "Status", "Created"}

// XLSXExporter renders reservation listings as Excel workbooks
type XLSXExporter struct {
	location *time.Location
}

// NewXLSXExporter creates an exporter that formats times in loc
func NewXLSXExporter(loc *time.Location) *XLSXExporter {
	if loc == nil {
		loc = time.UTC
	}
	return &XLSXExporter{location: loc}
}

// ContentType is the MIME type of the workbook
func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// WriteReservations writes one sheet with a row per reservation
func (e *XLSXExporter) WriteReservations(w io.Writer, reservations []*entity.Reservation) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reservationsSheet)
	if err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("error removing default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}

	for i, header := range reservationHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(reservationsSheet, cell, header); err != nil {
			return err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(reservationHeaders), 1)
	if err := f.SetCellStyle(reservationsSheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, r := range reservations {
		row := []any{
			r.ID.String(),
			r.AssetID,
			r.UserID,
			r.Category,
			r.StartTime.In(e.location).Format(timeLayout),
			r.EndTime.In(e.location).Format(timeLayout),
			string(r.Status),
			r.CreatedAt.In(e.location).Format(timeLayout),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(reservationsSheet, cell, &row); err != nil {
			return fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(reservationsSheet, "A", "A", 38)
	_ = f.SetColWidth(reservationsSheet, "B", "D", 14)
	_ = f.SetColWidth(reservationsSheet, "E", "F", 18)
	_ = f.SetColWidth(reservationsSheet, "G", "G", 14)
	_ = f.SetColWidth(reservationsSheet, "H", "H", 18)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}
