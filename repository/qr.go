package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"qc-reception/codes"
	"qc-reception/repository/models"
)

// ScanLookup is the outcome of one validation scan
type ScanLookup struct {
	Record  *models.ScanRecord `json:"record"`
	Product *models.Product    `json:"product,omitempty"`
}

// LookupScan resolves a raw QR payload to a catalog product and appends the
// attempt to the scan history. An unmapped code is recorded as a miss, not
// an error.
func (r *Repository) LookupScan(rawCode, operatorID string) (*ScanLookup, *RepositoryError) {
	normalized := codes.Normalize(rawCode)

	record := models.ScanRecord{
		ID:         fmt.Sprintf("SCN-%s", uuid.New().String()[:8]),
		RawCode:    rawCode,
		OperatorID: operatorID,
	}
	lookup := ScanLookup{Record: &record}

	var mapping models.QrMapping
	err := r.db.Where("qr_code = ?", normalized).First(&mapping).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &RepositoryError{
			Code:    CodeDatabaseError,
			Message: "Database error",
			Detail:  err.Error(),
		}
	}
	if err == nil {
		record.UPC = mapping.UPC
		var product models.Product
		if r.db.Where("upc = ?", mapping.UPC).First(&product).Error == nil {
			record.Matched = true
			lookup.Product = &product
		}
	}

	if err := r.db.Create(&record).Error; err != nil {
		return nil, &RepositoryError{
			Code:    CodeCreateFailed,
			Message: "Failed to record scan",
			Detail:  err.Error(),
		}
	}

	return &lookup, nil
}

// ListScans returns one page of the scan history, newest first
func (r *Repository) ListScans(page, pageSize int) ([]models.ScanRecord, int64, *RepositoryError) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	var total int64
	if err := r.db.Model(&models.ScanRecord{}).Count(&total).Error; err != nil {
		return nil, 0, &RepositoryError{
			Code:    CodeDatabaseError,
			Message: "Database error",
			Detail:  err.Error(),
		}
	}

	var records []models.ScanRecord
	err := r.db.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, 0, &RepositoryError{
			Code:    CodeDatabaseError,
			Message: "Database error",
			Detail:  err.Error(),
		}
	}

	return records, total, nil
}

// ListProducts returns catalog rows, optionally filtered by a case
// insensitive search over UPC and SKU
func (r *Repository) ListProducts(search string) ([]models.Product, *RepositoryError) {
	query := r.db.Model(&models.Product{})
	if search != "" {
		like := "%" + codes.Normalize(search) + "%"
		query = query.Where("UPPER(upc) LIKE ? OR UPPER(sku) LIKE ?", like, like)
	}

	var products []models.Product
	if err := query.Order("upc").Find(&products).Error; err != nil {
		return nil, &RepositoryError{
			Code:    CodeDatabaseError,
			Message: "Database error",
			Detail:  err.Error(),
		}
	}
	return products, nil
}

// UpsertMappings replaces or inserts QR to UPC mappings and records the
// sync run that produced them
func (r *Repository) UpsertMappings(mappings []models.QrMapping, operatorID string) (*models.SyncRun, *RepositoryError) {
	run := models.SyncRun{
		ID:         fmt.Sprintf("SYN-%s", uuid.New().String()[:8]),
		Fetched:    len(mappings),
		Status:     "ok",
		OperatorID: operatorID,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range mappings {
			mappings[i].QrCode = codes.Normalize(mappings[i].QrCode)
			if mappings[i].QrCode == "" {
				continue
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "qr_code"}},
				DoUpdates: clause.AssignmentColumns([]string{"upc", "sku", "updated_at"}),
			}).Create(&mappings[i]).Error
			if err != nil {
				return err
			}
			run.Upserted++
		}
		return tx.Create(&run).Error
	})
	if err != nil {
		return nil, &RepositoryError{
			Code:    CodeUpdateFailed,
			Message: "Failed to sync mappings",
			Detail:  err.Error(),
		}
	}

	return &run, nil
}

// UpsertProducts replaces or inserts catalog rows from an uploaded
// spreadsheet and records the upload
func (r *Repository) UpsertProducts(products []models.Product, filename, operatorID string) (*models.CatalogUpload, *RepositoryError) {
	upload := models.CatalogUpload{
		ID:         fmt.Sprintf("UPL-%s", uuid.New().String()[:8]),
		Filename:   filename,
		Rows:       len(products),
		OperatorID: operatorID,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range products {
			products[i].UPC = codes.Normalize(products[i].UPC)
			if products[i].UPC == "" {
				continue
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "upc"}},
				DoUpdates: clause.AssignmentColumns([]string{"sku", "description", "brand", "size", "updated_at"}),
			}).Create(&products[i]).Error
			if err != nil {
				return err
			}
			upload.Upserted++
		}
		return tx.Create(&upload).Error
	})
	if err != nil {
		return nil, &RepositoryError{
			Code:    CodeUpdateFailed,
			Message: "Failed to import catalog",
			Detail:  err.Error(),
		}
	}

	return &upload, nil
}

// DashboardStats aggregates the validation subsystem state
type DashboardStats struct {
	Mappings     int64 `json:"mappings"`
	Products     int64 `json:"products"`
	Scans        int64 `json:"scans"`
	MatchedScans int64 `json:"matched_scans"`
	SyncRuns     int64 `json:"sync_runs"`
	Uploads      int64 `json:"uploads"`
}

// Dashboard returns counts across the validation tables
func (r *Repository) Dashboard() (*DashboardStats, *RepositoryError) {
	stats := &DashboardStats{}
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.QrMapping{}, &stats.Mappings},
		{&models.Product{}, &stats.Products},
		{&models.ScanRecord{}, &stats.Scans},
		{&models.SyncRun{}, &stats.SyncRuns},
		{&models.CatalogUpload{}, &stats.Uploads},
	}
	for _, c := range counts {
		if err := r.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, &RepositoryError{
				Code:    CodeDatabaseError,
				Message: "Database error",
				Detail:  err.Error(),
			}
		}
	}
	if err := r.db.Model(&models.ScanRecord{}).Where("matched = ?", true).Count(&stats.MatchedScans).Error; err != nil {
		return nil, &RepositoryError{
			Code:    CodeDatabaseError,
			Message: "Database error",
			Detail:  err.Error(),
		}
	}
	return stats, nil
}

// ListSyncRuns returns the most recent mapping syncs, newest first
func (r *Repository) ListSyncRuns(limit int) ([]models.SyncRun, *RepositoryError) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	var runs []models.SyncRun
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, &RepositoryError{
			Code:    CodeDatabaseError,
			Message: "Database error",
			Detail:  err.Error(),
		}
	}
	return runs, nil
}

// ListUploads returns the most recent catalog uploads, newest first
func (r *Repository) ListUploads(limit int) ([]models.CatalogUpload, *RepositoryError) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	var uploads []models.CatalogUpload
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&uploads).Error; err != nil {
		return nil, &RepositoryError{
			Code:    CodeDatabaseError,
			Message: "Database error",
			Detail:  err.Error(),
		}
	}
	return uploads, nil
}
