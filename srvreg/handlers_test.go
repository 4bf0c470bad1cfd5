package srvreg_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"qc-reception/codes"
	"qc-reception/repository"
	"qc-reception/repository/models"
	"qc-reception/srvreg"
	"qc-reception/srvreg/mocks"
)

type fixture struct {
	store  *mocks.MockStore
	tus    *mocks.MockTusSource
	router *mux.Router
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	tus := mocks.NewMockTusSource(ctrl)

	router := mux.NewRouter()
	srvreg.NewServiceRegistry(store, tus).RegisterRoutes(router)
	return &fixture{store: store, tus: tus, router: router}
}

func (f *fixture) do(t *testing.T, method, path, operator string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if operator != "" {
		req.Header.Set("X-Operator-ID", operator)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestScanBoxCreatesNewBox(t *testing.T) {
	f := newFixture(t)

	expectedCode := codes.BoxCode{LabelID: "LBL-1", SKU: "SKU-A", ExpectedPairs: 10, SequenceNumber: "0001"}
	f.store.EXPECT().ScanBox(expectedCode, "OPR-001").Return(&models.Box{
		ID:             "BOX-abc",
		LabelID:        "LBL-1",
		SKU:            "SKU-A",
		SequenceNumber: "0001",
		ExpectedPairs:  10,
	}, false, nil)

	rec := f.do(t, http.MethodPost, "/boxes/scan", "OPR-001", map[string]string{
		"raw_code": "LBL-1$SKU-A$10$0001",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "ok", env["status"])
	assert.Equal(t, "Box registered", env["message"])
	data := env["data"].(map[string]interface{})
	assert.Equal(t, "BOX-abc", data["box_id"])
}

func TestScanBoxResumesExistingBox(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().ScanBox(gomock.Any(), "OPR-001").Return(&models.Box{
		ID:            "BOX-abc",
		ExpectedPairs: 10,
		ScannedPairs:  4,
	}, true, nil)

	rec := f.do(t, http.MethodPost, "/boxes/scan", "OPR-001", map[string]string{
		"raw_code": "LBL-1$SKU-A$10$0001",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Box resumed", env["message"])
	data := env["data"].(map[string]interface{})
	assert.Equal(t, true, data["resumed"])
}

func TestScanBoxRejectsMalformedCode(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/boxes/scan", "OPR-001", map[string]string{
		"raw_code": "not-a-box-label",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_FORMAT", env["code"])
}

func TestScanBoxRequiresOperatorHeader(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/boxes/scan", "", map[string]string{
		"raw_code": "LBL-1$SKU-A$10$0001",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "MISSING_OPERATOR", env["code"])
}

func TestScanPairRegistersAndReportsRemaining(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().ScanPair("BOX-abc", "PAIR-1", "OPR-001").Return(
		&models.Box{ID: "BOX-abc", ExpectedPairs: 10, ScannedPairs: 4},
		&models.PairScan{RawCode: "PAIR-1", PairIndex: 4},
		nil,
	)

	rec := f.do(t, http.MethodPost, "/boxes/BOX-abc/pairs", "OPR-001", map[string]string{
		"raw_code": "  PAIR-1  ",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Pair registered", env["message"])
	data := env["data"].(map[string]interface{})
	assert.Equal(t, float64(6), data["remaining"])
}

func TestScanPairCompletionMessage(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().ScanPair("BOX-abc", "PAIR-10", "OPR-001").Return(
		&models.Box{ID: "BOX-abc", ExpectedPairs: 10, ScannedPairs: 10, Complete: true},
		&models.PairScan{RawCode: "PAIR-10", PairIndex: 10},
		nil,
	)

	rec := f.do(t, http.MethodPost, "/boxes/BOX-abc/pairs", "OPR-001", map[string]string{
		"raw_code": "PAIR-10",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Pair registered, box complete", env["message"])
}

func TestScanPairDuplicateMapsToConflict(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().ScanPair("BOX-abc", "PAIR-1", "OPR-001").Return(nil, nil, &repository.RepositoryError{
		Code:    repository.CodeDuplicate,
		Message: "Pair already scanned for this box",
	})

	rec := f.do(t, http.MethodPost, "/boxes/BOX-abc/pairs", "OPR-001", map[string]string{
		"raw_code": "PAIR-1",
	})

	require.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "DUPLICATE", env["code"])
}

func TestGetBoxNotFound(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().GetBox("BOX-missing").Return(nil, &repository.RepositoryError{
		Code:    repository.CodeNotFound,
		Message: "Box not found",
	})

	rec := f.do(t, http.MethodGet, "/boxes/BOX-missing", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportParsesFilters(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().QueryBoxes(gomock.Any()).DoAndReturn(
		func(filters repository.BoxFilters) ([]models.Box, *repository.BoxSummary, *repository.RepositoryError) {
			assert.Equal(t, "SKU-A", filters.SKU)
			assert.Equal(t, "complete", filters.Status)
			require.NotNil(t, filters.From)
			assert.Equal(t, "2026-03-01", filters.From.Format("2006-01-02"))
			return nil, &repository.BoxSummary{}, nil
		})

	rec := f.do(t, http.MethodGet, "/reports/boxes?sku=SKU-A&status=complete&from=2026-03-01", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestReportRejectsBadDate(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/reports/boxes?from=03-01-2026", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_FILTER", env["code"])
}

func TestExportStreamsWorkbook(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().QueryBoxes(gomock.Any()).Return(
		[]models.Box{{SequenceNumber: "0001", SKU: "SKU-A", ExpectedPairs: 10, ScannedPairs: 10, Complete: true}},
		&repository.BoxSummary{TotalBoxes: 1, CompleteBoxes: 1, TotalExpected: 10, TotalScanned: 10},
		nil,
	)

	rec := f.do(t, http.MethodGet, "/reports/boxes/export", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	wb, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer wb.Close()
	rows, err := wb.GetRows("Reception")
	require.NoError(t, err)
	assert.Equal(t, "0001", rows[1][0])
}

func TestPrintRendersHTML(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().QueryBoxes(gomock.Any()).Return(nil, &repository.BoxSummary{}, nil)

	rec := f.do(t, http.MethodGet, "/reports/boxes/print", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Box Reception Report")
}

func TestQrScanMatched(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().LookupScan("QR-123", "OPR-001").Return(&repository.ScanLookup{
		Record:  &models.ScanRecord{RawCode: "QR-123", UPC: "123456", Matched: true},
		Product: &models.Product{UPC: "123456", SKU: "SKU-A"},
	}, nil)

	rec := f.do(t, http.MethodPost, "/qr/scan", "OPR-001", map[string]string{"raw_code": "QR-123"})
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Product matched", env["message"])
}

func TestQrSyncFetchesAndUpserts(t *testing.T) {
	f := newFixture(t)

	mappings := []models.QrMapping{{QrCode: "QR-1", UPC: "111"}, {QrCode: "QR-2", UPC: "222"}}
	f.tus.EXPECT().FetchMappings(gomock.Any(), "2026-03-01").Return(mappings, nil)
	f.store.EXPECT().UpsertMappings(mappings, "OPR-SUP").Return(&models.SyncRun{
		ID: "SYN-1", Fetched: 2, Upserted: 2, Status: "ok",
	}, nil)

	rec := f.do(t, http.MethodPost, "/qr/sync?since=2026-03-01", "OPR-SUP", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Mappings synchronized", env["message"])
}

func TestQrSyncUpstreamFailureMapsToBadGateway(t *testing.T) {
	f := newFixture(t)

	f.tus.EXPECT().FetchMappings(gomock.Any(), "").Return(nil, assertAnError())

	rec := f.do(t, http.MethodPost, "/qr/sync", "OPR-SUP", nil)
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func assertAnError() error {
	return &repository.RepositoryError{Code: "UPSTREAM", Message: "tus unreachable"}
}

func TestQrCatalogUpload(t *testing.T) {
	f := newFixture(t)

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &[]string{"UPC", "SKU", "Description"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A2", &[]string{"123456", "SKU-A", "Trail Runner"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A3", &[]string{"", "SKU-B", "skipped, no upc"}))
	var wbBuf bytes.Buffer
	require.NoError(t, wb.Write(&wbBuf))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "catalog.xlsx")
	require.NoError(t, err)
	_, err = part.Write(wbBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	f.store.EXPECT().UpsertProducts(gomock.Any(), "catalog.xlsx", "OPR-SUP").DoAndReturn(
		func(products []models.Product, filename, operator string) (*models.CatalogUpload, *repository.RepositoryError) {
			require.Len(t, products, 1)
			assert.Equal(t, "123456", products[0].UPC)
			assert.Equal(t, "Trail Runner", products[0].Description)
			return &models.CatalogUpload{ID: "UPL-1", Rows: 1, Upserted: 1}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/qr/catalog", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Operator-ID", "OPR-SUP")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Catalog imported", env["message"])
}

func TestQrCatalogRejectsNonWorkbook(t *testing.T) {
	f := newFixture(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/qr/catalog", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Operator-ID", "OPR-SUP")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_UPLOAD", env["code"])
}

func TestQrDashboard(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().Dashboard().Return(&repository.DashboardStats{
		Mappings: 100, Products: 80, Scans: 40, MatchedScans: 35,
	}, nil)

	rec := f.do(t, http.MethodGet, "/qr/dashboard", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	data := env["data"].(map[string]interface{})
	assert.Equal(t, float64(100), data["mappings"])
}

func TestQrScansPagination(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().ListScans(2, 25).Return([]models.ScanRecord{{ID: "SCN-1"}}, int64(60), nil)

	rec := f.do(t, http.MethodGet, "/qr/scans?page=2&page_size=25", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	data := env["data"].(map[string]interface{})
	assert.Equal(t, float64(60), data["total"])
	assert.False(t, strings.Contains(rec.Body.String(), `"code"`))
}
