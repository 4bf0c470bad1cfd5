package repository

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"qc-reception/codes"
	"qc-reception/repository/models"
)

// RepositoryError represents repository layer errors
type RepositoryError struct {
	Code    string
	Message string
	Detail  string
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s: %s - %s", e.Code, e.Message, e.Detail)
}

// Error codes returned by repository operations
const (
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeNotFound        = "NOT_FOUND"
	CodeDuplicate       = "DUPLICATE"
	CodeSessionComplete = "SESSION_COMPLETE"
	CodeSkuMismatch     = "SKU_MISMATCH"
	CodeDatabaseError   = "DATABASE_ERROR"
	CodeCreateFailed    = "CREATE_FAILED"
	CodeUpdateFailed    = "UPDATE_FAILED"
)

// Repository handles all database operations for the reception service
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository instance
func NewRepository() *Repository {
	return &Repository{}
}

// ConnectDB establishes database connection and performs migrations
func (r *Repository) ConnectDB(dsn string) error {
	for i := 0; i < 10; i++ {
		log.Printf("Database connection attempt %d...\n", i+1)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("Connection attempt %d failed: %v\n", i+1, err)
			time.Sleep(2 * time.Second)
			continue
		}
		r.db = db
		log.Println("✓ Connected to database")

		// Run migrations
		if err := r.Migrate(); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		// Seed data
		r.Seed()

		return nil
	}
	return fmt.Errorf("failed to connect to database after 10 attempts")
}

// Migrate performs database schema migrations
func (r *Repository) Migrate() error {
	log.Println("Running database migrations...")

	migrator := r.db.Migrator()

	// Order matters due to foreign keys
	tables := []interface{}{
		&models.Operator{},
		&models.Box{},
		&models.PairScan{},
		&models.QrMapping{},
		&models.Product{},
		&models.ScanRecord{},
		&models.SyncRun{},
		&models.CatalogUpload{},
	}

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := migrator.CreateTable(table); err != nil {
				return fmt.Errorf("failed to create table: %w", err)
			}
		}
	}

	log.Println("✓ Database migrations completed")
	return nil
}

// Seed initializes database with the default operator accounts
func (r *Repository) Seed() {
	// Check if data already exists
	var operatorCount int64
	r.db.Model(&models.Operator{}).Count(&operatorCount)
	if operatorCount > 0 {
		log.Println("Seed data already exists, skipping...")
		return
	}

	log.Println("Seeding database with default operators...")

	operators := []models.Operator{
		{ID: "OPR-001", Name: "Reception Desk 1", Role: "operator"},
		{ID: "OPR-002", Name: "Reception Desk 2", Role: "operator"},
		{ID: "OPR-SUP", Name: "QC Supervisor", Role: "supervisor"},
	}
	for _, operator := range operators {
		r.db.Create(&operator)
	}

	log.Println("✓ Database seeding completed")
}

// pairHistory preloads a box's pairs most recent first, the order the
// terminal renders them in.
func pairHistory(db *gorm.DB) *gorm.DB {
	return db.Order("pair_index DESC")
}

// ScanBox opens reconciliation for a box label. Scanning a label whose
// sequence number is already known resumes the existing box instead of
// creating a second one; the resumed flag tells the terminal apart.
func (r *Repository) ScanBox(code codes.BoxCode, operatorID string) (*models.Box, bool, *RepositoryError) {
	var existing models.Box
	err := r.db.Preload("Pairs", pairHistory).
		Where("sequence_number = ?", code.SequenceNumber).
		First(&existing).Error
	if err == nil {
		return &existing, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, &RepositoryError{
			Code:    CodeDatabaseError,
			Message: "Database error",
			Detail:  err.Error(),
		}
	}

	box := models.Box{
		ID:             fmt.Sprintf("BOX-%s", uuid.New().String()[:8]),
		LabelID:        code.LabelID,
		SKU:            code.SKU,
		SequenceNumber: code.SequenceNumber,
		ExpectedPairs:  code.ExpectedPairs,
		OperatorID:     operatorID,
	}
	if err := r.db.Create(&box).Error; err != nil {
		// A concurrent terminal may have created the same sequence first.
		var raced models.Box
		if r.db.Preload("Pairs", pairHistory).Where("sequence_number = ?", code.SequenceNumber).First(&raced).Error == nil {
			return &raced, true, nil
		}
		return nil, false, &RepositoryError{
			Code:    CodeCreateFailed,
			Message: "Failed to register box",
			Detail:  err.Error(),
		}
	}

	return &box, false, nil
}

// ScanPair registers one pair against a box. The box row is locked for the
// duration of the transaction so concurrent terminals cannot both take the
// last slot.
func (r *Repository) ScanPair(boxID, rawCode, operatorID string) (*models.Box, *models.PairScan, *RepositoryError) {
	var box models.Box
	var pair models.PairScan

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("box_id = ?", boxID).
			First(&box).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &RepositoryError{
					Code:    CodeNotFound,
					Message: "Box not found",
					Detail:  fmt.Sprintf("Box %s does not exist", boxID),
				}
			}
			return &RepositoryError{
				Code:    CodeDatabaseError,
				Message: "Database error",
				Detail:  err.Error(),
			}
		}

		if box.Complete {
			return &RepositoryError{
				Code:    CodeSessionComplete,
				Message: "Box is already complete",
				Detail:  fmt.Sprintf("Box %s already holds all %d pairs", boxID, box.ExpectedPairs),
			}
		}

		var duplicates int64
		if err := tx.Model(&models.PairScan{}).
			Where("box_id = ? AND raw_code = ?", boxID, rawCode).
			Count(&duplicates).Error; err != nil {
			return &RepositoryError{
				Code:    CodeDatabaseError,
				Message: "Database error",
				Detail:  err.Error(),
			}
		}
		if duplicates > 0 {
			return &RepositoryError{
				Code:    CodeDuplicate,
				Message: "Pair already scanned for this box",
				Detail:  fmt.Sprintf("Code %s is already registered on box %s", rawCode, boxID),
			}
		}

		// A pair code that translates to a catalog UPC must belong to the
		// box's SKU. Codes without a mapping are accepted as-is.
		var mapping models.QrMapping
		upc := ""
		err = tx.Where("qr_code = ?", rawCode).First(&mapping).Error
		if err == nil {
			upc = mapping.UPC
			if mapping.SKU != "" && mapping.SKU != box.SKU {
				return &RepositoryError{
					Code:    CodeSkuMismatch,
					Message: "Pair belongs to a different SKU",
					Detail:  fmt.Sprintf("Code %s maps to SKU %s, box expects %s", rawCode, mapping.SKU, box.SKU),
				}
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return &RepositoryError{
				Code:    CodeDatabaseError,
				Message: "Database error",
				Detail:  err.Error(),
			}
		}

		pair = models.PairScan{
			ID:         fmt.Sprintf("PSC-%s", uuid.New().String()[:8]),
			BoxID:      boxID,
			RawCode:    rawCode,
			UPC:        upc,
			PairIndex:  box.ScannedPairs + 1,
			OperatorID: operatorID,
		}
		if err := tx.Create(&pair).Error; err != nil {
			return &RepositoryError{
				Code:    CodeCreateFailed,
				Message: "Failed to register pair",
				Detail:  err.Error(),
			}
		}

		box.ScannedPairs++
		if box.ScannedPairs >= box.ExpectedPairs {
			box.Complete = true
		}
		if err := tx.Save(&box).Error; err != nil {
			return &RepositoryError{
				Code:    CodeUpdateFailed,
				Message: "Failed to update box",
				Detail:  err.Error(),
			}
		}

		// The response carries the full pair history so the terminal can
		// render it without a second round trip.
		if err := tx.Where("box_id = ?", boxID).Order("pair_index DESC").Find(&box.Pairs).Error; err != nil {
			return &RepositoryError{
				Code:    CodeDatabaseError,
				Message: "Database error",
				Detail:  err.Error(),
			}
		}
		return nil
	})
	if err != nil {
		var repoErr *RepositoryError
		if errors.As(err, &repoErr) {
			return nil, nil, repoErr
		}
		return nil, nil, &RepositoryError{
			Code:    CodeDatabaseError,
			Message: "Database error",
			Detail:  err.Error(),
		}
	}

	return &box, &pair, nil
}

// GetBox retrieves a box with its registered pairs
func (r *Repository) GetBox(boxID string) (*models.Box, *RepositoryError) {
	var box models.Box
	err := r.db.Preload("Pairs", pairHistory).
		Preload("Operator").
		Where("box_id = ?", boxID).
		First(&box).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &RepositoryError{
				Code:    CodeNotFound,
				Message: "Box not found",
				Detail:  fmt.Sprintf("Box %s does not exist", boxID),
			}
		}
		return nil, &RepositoryError{
			Code:    CodeDatabaseError,
			Message: "Database error",
			Detail:  err.Error(),
		}
	}
	return &box, nil
}

// BoxFilters narrows a report query. Zero fields match everything.
type BoxFilters struct {
	SKU      string
	Status   string // "complete" or "pending"
	From     *time.Time
	To       *time.Time
	Operator string
}

// BoxSummary aggregates a report result set
type BoxSummary struct {
	TotalBoxes    int `json:"total_boxes"`
	CompleteBoxes int `json:"complete_boxes"`
	PendingBoxes  int `json:"pending_boxes"`
	TotalExpected int `json:"total_expected"`
	TotalScanned  int `json:"total_scanned"`
}

// QueryBoxes returns the boxes matching the filters, newest first, with an
// aggregate summary over the same result set
func (r *Repository) QueryBoxes(filters BoxFilters) ([]models.Box, *BoxSummary, *RepositoryError) {
	query := r.db.Model(&models.Box{}).Preload("Operator")
	if filters.SKU != "" {
		query = query.Where("UPPER(sku) LIKE ?", "%"+codes.Normalize(filters.SKU)+"%")
	}
	switch filters.Status {
	case "complete":
		query = query.Where("complete = ?", true)
	case "pending":
		query = query.Where("complete = ?", false)
	}
	if filters.From != nil {
		query = query.Where("created_at >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("created_at <= ?", *filters.To)
	}
	if filters.Operator != "" {
		query = query.Where("operator_id = ?", filters.Operator)
	}

	var boxes []models.Box
	if err := query.Order("created_at DESC").Find(&boxes).Error; err != nil {
		return nil, nil, &RepositoryError{
			Code:    CodeDatabaseError,
			Message: "Database error",
			Detail:  err.Error(),
		}
	}

	summary := &BoxSummary{TotalBoxes: len(boxes)}
	for _, box := range boxes {
		if box.Complete {
			summary.CompleteBoxes++
		} else {
			summary.PendingBoxes++
		}
		summary.TotalExpected += box.ExpectedPairs
		summary.TotalScanned += box.ScannedPairs
	}

	return boxes, summary, nil
}
