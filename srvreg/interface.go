package srvreg

import (
	"context"

	"qc-reception/codes"
	"qc-reception/repository"
	"qc-reception/repository/models"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_store.go -package=mocks

// Store is the persistence surface the handlers depend on
type Store interface {
	ScanBox(code codes.BoxCode, operatorID string) (*models.Box, bool, *repository.RepositoryError)
	ScanPair(boxID, rawCode, operatorID string) (*models.Box, *models.PairScan, *repository.RepositoryError)
	GetBox(boxID string) (*models.Box, *repository.RepositoryError)
	QueryBoxes(filters repository.BoxFilters) ([]models.Box, *repository.BoxSummary, *repository.RepositoryError)

	LookupScan(rawCode, operatorID string) (*repository.ScanLookup, *repository.RepositoryError)
	ListScans(page, pageSize int) ([]models.ScanRecord, int64, *repository.RepositoryError)
	ListProducts(search string) ([]models.Product, *repository.RepositoryError)
	UpsertMappings(mappings []models.QrMapping, operatorID string) (*models.SyncRun, *repository.RepositoryError)
	UpsertProducts(products []models.Product, filename, operatorID string) (*models.CatalogUpload, *repository.RepositoryError)
	Dashboard() (*repository.DashboardStats, *repository.RepositoryError)
	ListSyncRuns(limit int) ([]models.SyncRun, *repository.RepositoryError)
	ListUploads(limit int) ([]models.CatalogUpload, *repository.RepositoryError)
}

// TusSource fetches QR to UPC mappings from the upstream TUS system
type TusSource interface {
	FetchMappings(ctx context.Context, since string) ([]models.QrMapping, error)
}
