package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/RMahshie/pants/pkg/models"
	"github.com/RMahshie/pants/pkg/visuals"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook
const (
	DiarySheet  = "Diary"
	TotalsSheet = "Totals"
)

// Workbook renders the summaries as an xlsx file: one row per logged food
// on the Diary sheet and one row per day on the Totals sheet.
func Workbook(summaries []*models.DaySummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", DiarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(TotalsSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeDiary(f, headerStyle, summaries); err != nil {
		return nil, err
	}
	if err := writeTotals(f, headerStyle, summaries); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func writeDiary(f *excelize.File, headerStyle int, summaries []*models.DaySummary) error {
	headers := []any{"Day", "Meal", "Food", "Quantity", "Unit"}
	for _, n := range models.Nutrients {
		headers = append(headers, fmt.Sprintf("%s (%s)", n.Label, n.Unit))
	}
	if err := writeHeader(f, DiarySheet, headerStyle, headers); err != nil {
		return err
	}
	if err := f.SetColWidth(DiarySheet, "A", "A", 12); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(DiarySheet, "C", "C", 30); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	row := 2
	for _, summary := range summaries {
		for _, entry := range summary.Entries {
			values := []any{
				summary.Day.Format(models.DateLayout),
				entry.Food.Meal,
				entry.Name,
				entry.Food.Quantity,
				entry.Unit,
			}
			for _, n := range models.Nutrients {
				v, _ := entry.Nutrition.Get(n.Key)
				values = append(values, round(v))
			}
			if err := writeRow(f, DiarySheet, row, values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeTotals(f *excelize.File, headerStyle int, summaries []*models.DaySummary) error {
	// percentage columns only for nutrients that have a target
	var targeted []models.SummaryRow
	if len(summaries) > 0 {
		for _, r := range summaries[0].Rows {
			if r.Min != nil || r.Max != nil {
				targeted = append(targeted, r)
			}
		}
	}

	headers := []any{"Day"}
	for _, n := range models.Nutrients {
		headers = append(headers, fmt.Sprintf("%s (%s)", n.Label, n.Unit))
	}
	for _, r := range targeted {
		headers = append(headers, r.Label+" % of target")
	}
	if err := writeHeader(f, TotalsSheet, headerStyle, headers); err != nil {
		return err
	}

	for i, summary := range summaries {
		values := []any{summary.Day.Format(models.DateLayout)}
		for _, n := range models.Nutrients {
			v, _ := summary.Total.Get(n.Key)
			values = append(values, round(v))
		}
		for _, t := range targeted {
			v, _ := summary.Total.Get(t.Nutrient)
			values = append(values, visuals.PercentRange(v, t.Min, t.Max))
		}
		if err := writeRow(f, TotalsSheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, style int, headers []any) error {
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

// round keeps two decimals, enough for grams and kcal
func round(v float64) float64 {
	return math.Round(v*100) / 100
}
