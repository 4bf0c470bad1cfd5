package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"qc-reception/repository"
	"qc-reception/repository/models"
)

func sampleReport() *Report {
	boxes := []models.Box{
		{
			SequenceNumber: "0001",
			SKU:            "SKU-A",
			ExpectedPairs:  10,
			ScannedPairs:   10,
			Complete:       true,
			OperatorID:     "OPR-001",
			Operator:       &models.Operator{ID: "OPR-001", Name: "Reception Desk 1"},
			CreatedAt:      time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		},
		{
			SequenceNumber: "0002",
			SKU:            "SKU-B",
			ExpectedPairs:  8,
			ScannedPairs:   3,
			OperatorID:     "OPR-002",
			CreatedAt:      time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		},
	}
	summary := &repository.BoxSummary{
		TotalBoxes:    2,
		CompleteBoxes: 1,
		PendingBoxes:  1,
		TotalExpected: 18,
		TotalScanned:  13,
	}
	return FromBoxes(boxes, summary)
}

func TestFromBoxesResolvesOperatorName(t *testing.T) {
	r := sampleReport()

	require.Len(t, r.Rows, 2)
	assert.Equal(t, "Reception Desk 1", r.Rows[0].Operator)
	// Falls back to the raw ID when the relation was not preloaded.
	assert.Equal(t, "OPR-002", r.Rows[1].Operator)
	assert.Equal(t, 2, r.Summary.TotalBoxes)
}

func TestWorkbookRoundTrip(t *testing.T) {
	data, err := WriteWorkbook(sampleReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reception")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)

	assert.Equal(t, []string{"Sequence", "SKU", "Expected", "Scanned", "Status", "Date", "Operator"}, rows[0])
	assert.Equal(t, "0001", rows[1][0])
	assert.Equal(t, "Complete", rows[1][4])
	assert.Equal(t, "Pending", rows[2][4])

	// Summary block sits below the table.
	total, err := f.GetCellValue("Reception", "B5")
	require.NoError(t, err)
	assert.Equal(t, "2", total)
}

func TestPrintHTMLContainsSummaryAndRows(t *testing.T) {
	html, err := RenderPrintHTML(sampleReport())
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "Box Reception Report")
	assert.Contains(t, out, "Total Boxes")
	assert.Contains(t, out, "SKU-A")
	assert.Contains(t, out, `class="complete"`)
	assert.Contains(t, out, `class="pending"`)
}

func TestPrintHTMLEscapesCodeContent(t *testing.T) {
	r := &Report{Rows: []BoxRow{{SequenceNumber: "<script>", SKU: "SKU"}}}
	html, err := RenderPrintHTML(r)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
	assert.Contains(t, string(html), "&lt;script&gt;")
}
