package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"
)

// ExportService renders the current guest list as an xlsx workbook for the
// desk's export action.
type ExportService struct {
	store *GuestStore
}

func NewExportService(store *GuestStore) ExportService {
	return ExportService{store: store}
}

var exportHeaders = []string{
	"ID", "Name", "Email", "Phone", "ID Proof", "Room",
	"Check-In", "Check-Out", "Status", "Category",
	"Total", "Paid", "Balance", "Extra Beds",
}

// GuestWorkbook builds the workbook from the projection matching the query
// and status filter, so an export reflects what the desk is looking at.
func (s ExportService) GuestWorkbook(query, status string) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Guests"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, g := range s.store.Projection(query, status) {
		row := i + 2
		values := []any{
			g.ID, g.Name, g.Email, g.Phone, g.IDProof, g.RoomNumber,
			utils.ToDisplayDate(g.CheckInDate), utils.ToDisplayDate(g.CheckOutDate),
			g.Status, g.Category,
			g.TotalAmount, g.PaidAmount, g.BalanceDue(), extraBedCell(g),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func extraBedCell(g models.Guest) string {
	if len(g.ExtraBeds) == 0 {
		return ""
	}
	out := ""
	for i, b := range g.ExtraBeds {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s (%.0f)", b.Name, b.Charge)
	}
	return out
}
