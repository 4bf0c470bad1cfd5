// Package report renders box reception results for supervisors: a styled
// spreadsheet for archival and a print-ready HTML page for the shift
// handover binder.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/xuri/excelize/v2"

	"qc-reception/repository"
	"qc-reception/repository/models"
)

// BoxRow is one line of a reception report
type BoxRow struct {
	SequenceNumber string
	SKU            string
	Expected       int
	Scanned        int
	Complete       bool
	Date           time.Time
	Operator       string
}

// Summary mirrors the aggregate cards shown above the report table
type Summary struct {
	TotalBoxes    int
	CompleteBoxes int
	PendingBoxes  int
	TotalExpected int
	TotalScanned  int
}

// Report is a fully resolved reception report ready for rendering
type Report struct {
	Rows        []BoxRow
	Summary     Summary
	GeneratedAt time.Time
}

// FromBoxes builds a report from a repository query result
func FromBoxes(boxes []models.Box, summary *repository.BoxSummary) *Report {
	r := &Report{GeneratedAt: time.Now()}
	if summary != nil {
		r.Summary = Summary{
			TotalBoxes:    summary.TotalBoxes,
			CompleteBoxes: summary.CompleteBoxes,
			PendingBoxes:  summary.PendingBoxes,
			TotalExpected: summary.TotalExpected,
			TotalScanned:  summary.TotalScanned,
		}
	}
	for _, box := range boxes {
		operator := box.OperatorID
		if box.Operator != nil {
			operator = box.Operator.Name
		}
		r.Rows = append(r.Rows, BoxRow{
			SequenceNumber: box.SequenceNumber,
			SKU:            box.SKU,
			Expected:       box.ExpectedPairs,
			Scanned:        box.ScannedPairs,
			Complete:       box.Complete,
			Date:           box.CreatedAt,
			Operator:       operator,
		})
	}
	return r
}

func statusText(complete bool) string {
	if complete {
		return "Complete"
	}
	return "Pending"
}

var headers = []string{"Sequence", "SKU", "Expected", "Scanned", "Status", "Date", "Operator"}

// BuildWorkbook renders the report as a styled xlsx workbook
func BuildWorkbook(r *Report) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Reception"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	completeStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "1B7A3D", Bold: true},
	})
	if err != nil {
		return nil, err
	}
	pendingStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "B45309", Bold: true},
	})
	if err != nil {
		return nil, err
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", endHeader, headerStyle); err != nil {
		return nil, err
	}

	for i, row := range r.Rows {
		line := i + 2
		values := []interface{}{
			row.SequenceNumber,
			row.SKU,
			row.Expected,
			row.Scanned,
			statusText(row.Complete),
			row.Date.Format("2006-01-02 15:04"),
			row.Operator,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, line)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		statusCell, _ := excelize.CoordinatesToCellName(5, line)
		style := pendingStyle
		if row.Complete {
			style = completeStyle
		}
		if err := f.SetCellStyle(sheet, statusCell, statusCell, style); err != nil {
			return nil, err
		}
	}

	// Summary block below the table
	base := len(r.Rows) + 3
	summaryRows := []struct {
		label string
		value int
	}{
		{"Total boxes", r.Summary.TotalBoxes},
		{"Complete", r.Summary.CompleteBoxes},
		{"Pending", r.Summary.PendingBoxes},
		{"Expected pairs", r.Summary.TotalExpected},
		{"Scanned pairs", r.Summary.TotalScanned},
	}
	for i, s := range summaryRows {
		labelCell, _ := excelize.CoordinatesToCellName(1, base+i)
		valueCell, _ := excelize.CoordinatesToCellName(2, base+i)
		if err := f.SetCellValue(sheet, labelCell, s.label); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, valueCell, s.value); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheet, "A", "G", 18); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteWorkbook renders the report and returns the xlsx bytes
func WriteWorkbook(r *Report) ([]byte, error) {
	f, err := BuildWorkbook(r)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var printTemplate = template.Must(template.New("print").Funcs(template.FuncMap{
	"status": statusText,
	"date":   func(t time.Time) string { return t.Format("2006-01-02 15:04") },
}).Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Box Reception Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; color: #333; }
        h1 { color: #1e3a5f; margin-top: 0; }
        .cards { display: flex; gap: 16px; margin: 20px 0; }
        .card { border: 1px solid #ddd; border-radius: 8px; padding: 16px 24px; text-align: center; }
        .card .number { font-size: 28px; font-weight: bold; color: #1e3a5f; }
        .card .label { font-size: 12px; color: #777; text-transform: uppercase; }
        table { border-collapse: collapse; width: 100%; }
        th { background: #1e3a5f; color: white; padding: 8px 12px; text-align: left; }
        td { padding: 8px 12px; border-bottom: 1px solid #eee; }
        .complete { color: #1b7a3d; font-weight: bold; }
        .pending { color: #b45309; font-weight: bold; }
        .meta { color: #999; font-size: 12px; margin-top: 30px; }
        @media print { .cards { break-inside: avoid; } }
    </style>
</head>
<body>
    <h1>Box Reception Report</h1>
    <div class="cards">
        <div class="card"><div class="number">{{.Summary.TotalBoxes}}</div><div class="label">Total Boxes</div></div>
        <div class="card"><div class="number">{{.Summary.CompleteBoxes}}</div><div class="label">Complete</div></div>
        <div class="card"><div class="number">{{.Summary.PendingBoxes}}</div><div class="label">Pending</div></div>
        <div class="card"><div class="number">{{.Summary.TotalExpected}}</div><div class="label">Expected Pairs</div></div>
        <div class="card"><div class="number">{{.Summary.TotalScanned}}</div><div class="label">Scanned Pairs</div></div>
    </div>
    <table>
        <tr><th>Sequence</th><th>SKU</th><th>Expected</th><th>Scanned</th><th>Status</th><th>Date</th><th>Operator</th></tr>
        {{range .Rows}}
        <tr>
            <td>{{.SequenceNumber}}</td>
            <td>{{.SKU}}</td>
            <td>{{.Expected}}</td>
            <td>{{.Scanned}}</td>
            {{if .Complete}}<td class="complete">{{status .Complete}}</td>{{else}}<td class="pending">{{status .Complete}}</td>{{end}}
            <td>{{date .Date}}</td>
            <td>{{.Operator}}</td>
        </tr>
        {{end}}
    </table>
    <div class="meta">Generated {{date .GeneratedAt}}</div>
</body>
</html>
`))

// RenderPrintHTML renders the report as a print-ready HTML page
func RenderPrintHTML(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, r); err != nil {
		return nil, fmt.Errorf("failed to render print report: %w", err)
	}
	return buf.Bytes(), nil
}
