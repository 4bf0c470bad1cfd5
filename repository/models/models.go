package models

import "time"

// Operator represents a warehouse operator allowed to register scans
type Operator struct {
	ID   string `gorm:"column:operator_id;primaryKey;type:varchar(50)"`
	Name string `gorm:"column:name;type:varchar(100);not null"`
	Role string `gorm:"column:role;type:varchar(30);default:'operator'"` // operator, supervisor
}

// Box represents a received box working through pair reconciliation
type Box struct {
	ID             string    `gorm:"column:box_id;primaryKey;type:varchar(50)"`
	LabelID        string    `gorm:"column:label_id;type:varchar(50);not null"`
	SKU            string    `gorm:"column:sku;type:varchar(50);not null"`
	SequenceNumber string    `gorm:"column:sequence_number;type:varchar(50);uniqueIndex;not null"`
	ExpectedPairs  int       `gorm:"column:expected_pairs;not null"`
	ScannedPairs   int       `gorm:"column:scanned_pairs;default:0"`
	Complete       bool      `gorm:"column:complete;default:false"`
	OperatorID     string    `gorm:"column:operator_id;type:varchar(50);not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Operator *Operator  `gorm:"foreignKey:OperatorID"`
	Pairs    []PairScan `gorm:"foreignKey:BoxID"`
}

// PairScan represents one pair registered against a box
type PairScan struct {
	ID         string    `gorm:"column:pair_scan_id;primaryKey;type:varchar(50)"`
	BoxID      string    `gorm:"column:box_id;type:varchar(50);not null;uniqueIndex:idx_box_raw"`
	RawCode    string    `gorm:"column:raw_code;type:varchar(255);not null;uniqueIndex:idx_box_raw"`
	UPC        string    `gorm:"column:upc;type:varchar(50)"` // resolved from qr_mappings when one exists
	PairIndex  int       `gorm:"column:pair_index;not null"`
	OperatorID string    `gorm:"column:operator_id;type:varchar(50);not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

// QrMapping represents a QR payload to UPC translation synced from TUS
type QrMapping struct {
	QrCode    string    `gorm:"column:qr_code;primaryKey;type:varchar(255)"`
	UPC       string    `gorm:"column:upc;type:varchar(50);not null"`
	SKU       string    `gorm:"column:sku;type:varchar(50)"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Product represents a catalog row uploaded from a spreadsheet
type Product struct {
	UPC         string    `gorm:"column:upc;primaryKey;type:varchar(50)"`
	SKU         string    `gorm:"column:sku;type:varchar(50);not null"`
	Description string    `gorm:"column:description;type:varchar(255)"`
	Brand       string    `gorm:"column:brand;type:varchar(100)"`
	Size        string    `gorm:"column:size;type:varchar(30)"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// ScanRecord represents one validation lookup in the scan history
type ScanRecord struct {
	ID         string    `gorm:"column:scan_id;primaryKey;type:varchar(50)"`
	RawCode    string    `gorm:"column:raw_code;type:varchar(255);not null"`
	UPC        string    `gorm:"column:upc;type:varchar(50)"`
	Matched    bool      `gorm:"column:matched;not null"`
	OperatorID string    `gorm:"column:operator_id;type:varchar(50);not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

// SyncRun represents one mapping synchronization against TUS
type SyncRun struct {
	ID         string    `gorm:"column:sync_id;primaryKey;type:varchar(50)"`
	Fetched    int       `gorm:"column:fetched;not null"`
	Upserted   int       `gorm:"column:upserted;not null"`
	Status     string    `gorm:"column:status;type:varchar(20);not null"` // ok, failed
	Detail     string    `gorm:"column:detail;type:text"`
	OperatorID string    `gorm:"column:operator_id;type:varchar(50);not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

// CatalogUpload represents one processed catalog spreadsheet
type CatalogUpload struct {
	ID         string    `gorm:"column:upload_id;primaryKey;type:varchar(50)"`
	Filename   string    `gorm:"column:filename;type:varchar(255);not null"`
	Rows       int       `gorm:"column:rows;not null"`
	Upserted   int       `gorm:"column:upserted;not null"`
	OperatorID string    `gorm:"column:operator_id;type:varchar(50);not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}
