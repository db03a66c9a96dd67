// Package export writes the HR data out as spreadsheets for people who do
// not use the prompt.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"go-hr-manager/internal/domain"

	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

const (
	SheetCandidates = "Candidates"
	SheetPositions  = "Positions"
	SheetInterviews = "Interviews"
)

var (
	CandidateHeaders = []string{"NAME", "PHONE", "EMAIL", "ADDRESS", "TAGS", "REMARK", "POSITIONS"}
	PositionHeaders  = []string{"TITLE", "STATUS"}
	InterviewHeaders = []string{"POSITION", "CANDIDATES", "DATE", "START TIME", "DURATION (MIN)", "STATUS"}
)

// Export renders data in the requested format and suggests a file name for it.
// CSV holds candidates only; the workbook has one sheet per collection.
func Export(data domain.HrManagerData, format Format, now time.Time) ([]byte, string, error) {
	stamp := now.Format("20060102_150405")
	switch format {
	case FormatXLSX, "":
		b, err := Workbook(data)
		return b, fmt.Sprintf("hr_manager_%s.xlsx", stamp), err
	case FormatCSV:
		b, err := CandidatesCSV(data.Candidates)
		return b, fmt.Sprintf("hr_candidates_%s.csv", stamp), err
	default:
		return nil, "", fmt.Errorf("unsupported export format: %s", format)
	}
}

// Workbook builds an xlsx file with a Candidates, a Positions and an Interviews sheet.
func Workbook(data domain.HrManagerData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetCandidates); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetPositions, SheetInterviews} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
	}

	// Dark blue header with white text
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	candidates := make([][]any, 0, len(data.Candidates))
	for _, c := range data.Candidates {
		candidates = append(candidates, candidateRow(c))
	}
	positions := make([][]any, 0, len(data.Positions))
	for _, p := range data.Positions {
		positions = append(positions, []any{p.Title, string(p.Status)})
	}
	interviews := make([][]any, 0, len(data.Interviews))
	for _, i := range data.Interviews {
		interviews = append(interviews, []any{
			i.PositionTitle(),
			strings.Join(i.CandidateNames(), ", "),
			i.FormattedDate(),
			i.FormattedStartTime(),
			i.DurationMinutes(),
			string(i.Status()),
		})
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]any
	}{
		{SheetCandidates, CandidateHeaders, candidates},
		{SheetPositions, PositionHeaders, positions},
		{SheetInterviews, InterviewHeaders, interviews},
	}
	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.headers, s.rows, headerStyle); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any, headerStyle int) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", endCell, headerStyle); err != nil {
		return err
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	// Approximate auto-fit
	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, 20); err != nil {
			return err
		}
	}
	return nil
}

// CandidatesCSV writes one header row and one row per candidate.
func CandidatesCSV(candidates []domain.Candidate) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CandidateHeaders); err != nil {
		return nil, err
	}
	for _, c := range candidates {
		row := candidateRow(c)
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = fmt.Sprint(v)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func candidateRow(c domain.Candidate) []any {
	return []any{
		c.Name,
		c.Phone,
		c.Email,
		c.Address,
		strings.Join(c.Tags, ", "),
		c.Remark,
		strings.Join(c.Positions, ", "),
	}
}
