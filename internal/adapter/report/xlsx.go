// Package report renders the campaign dashboard as a spreadsheet.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"campaign-wizard/internal/core/domain"
)

const sheetName = "Campaigns"

var columns = []string{
	"ID", "Name", "Status", "Daily Budget", "Ad Sets", "Created At",
	"Impressions", "Clicks", "Conversions", "Spend",
}

// WriteCampaigns writes an XLSX workbook listing campaigns, followed by a
// totals row, to w.
func WriteCampaigns(w io.Writer, campaigns []domain.Campaign) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1877F2"}},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err = f.SetSheetRow(sheetName, "A1", &columns); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err = f.SetCellStyle(sheetName, "A1", last, header); err != nil {
		return err
	}
	if err = f.SetColWidth(sheetName, "B", "B", 32); err != nil {
		return err
	}

	for i, c := range campaigns {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{
			c.ID, c.Name, string(c.Status), c.Budget, c.AdSetCount, c.CreatedAt.Format(time.RFC3339),
			c.Performance.Impressions, c.Performance.Clicks, c.Performance.Conversions, c.Performance.Spend,
		}
		if err = f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	sum := domain.Summarize(campaigns)
	cell, _ := excelize.CoordinatesToCellName(1, len(campaigns)+2)
	totals := []any{
		"Total", fmt.Sprintf("%d campaigns, %d active", sum.Campaigns, sum.Active), "", "", "", "",
		sum.Totals.Impressions, sum.Totals.Clicks, sum.Totals.Conversions, sum.Totals.Spend,
	}
	if err = f.SetSheetRow(sheetName, cell, &totals); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
