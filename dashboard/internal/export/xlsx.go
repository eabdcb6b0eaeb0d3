package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type xlsxEncoder struct{}

func (xlsxEncoder) Format() Format      { return FormatXLSX }
func (xlsxEncoder) ContentType() string { return xlsxContentType }

// Encode writes a workbook with one sheet per section. Each sheet has a header
// row of field names followed by the data rows.
func (xlsxEncoder) Encode(w io.Writer, snap Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetServerDetails); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	for _, name := range []string{SheetWorkerNumbers, SheetWorkerDetails} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	countHeader, countValues := countRows(snap.Counts)
	sheets := []struct {
		name string
		rows [][]any
	}{
		{SheetServerDetails, [][]any{serverHeader, serverRow(snap.Server)}},
		{SheetWorkerNumbers, [][]any{countHeader, countValues}},
		{SheetWorkerDetails, workloadRows(snap)},
	}

	for _, sheet := range sheets {
		if err := writeRows(f, sheet.name, sheet.rows); err != nil {
			return err
		}
		if err := f.SetRowStyle(sheet.name, 1, 1, bold); err != nil {
			return fmt.Errorf("failed to style %q: %w", sheet.name, err)
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:      "Kubernetes manager data",
		Creator:    "kubedash",
		Identifier: snap.ID.String(),
		Created:    snap.GeneratedAt.Format("2006-01-02T15:04:05Z"),
	}); err != nil {
		return fmt.Errorf("failed to set document properties: %w", err)
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func workloadRows(snap Snapshot) [][]any {
	rows := make([][]any, 0, len(snap.Workloads)+1)
	rows = append(rows, workloadHeader)
	for _, wl := range snap.Workloads {
		rows = append(rows, workloadRow(wl))
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %q row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
