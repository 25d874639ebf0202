// Package testutil provides an in-memory store with the production schema
// and small fixture builders for package tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/pkg/password"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with foreign keys enabled
// and the full schema migrated. A single connection keeps the database alive
// for the lifetime of the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	prev := password.SetCost(bcrypt.MinCost)
	t.Cleanup(func() { password.SetCost(prev) })

	return db
}

// Admin inserts an administrator with a hashed password
func Admin(t *testing.T, db *gorm.DB, email, plain string) *models.Administrator {
	t.Helper()
	a := &models.Administrator{Name: "Admin", Email: email, Password: hash(t, plain)}
	create(t, db, a)
	return a
}

// Worker inserts a worker with a hashed password
func Worker(t *testing.T, db *gorm.DB, name, email, plain string) *models.Worker {
	t.Helper()
	w := &models.Worker{Name: name, Email: email, Password: hash(t, plain), Role: "technician", SSN: "000-00-0000"}
	create(t, db, w)
	return w
}

// Client inserts a client with a hashed password
func Client(t *testing.T, db *gorm.DB, name, email, plain string) *models.Client {
	t.Helper()
	c := &models.Client{Name: name, Email: email, Password: hash(t, plain), SSN: "111-11-1111"}
	create(t, db, c)
	return c
}

// Asset inserts an asset
func Asset(t *testing.T, db *gorm.DB, name, status string) *models.Asset {
	t.Helper()
	a := &models.Asset{Name: name, Status: status}
	create(t, db, a)
	return a
}

// WorkOrder inserts an open work order
func WorkOrder(t *testing.T, db *gorm.DB, workerID, assetID uint, end time.Time) *models.WorkOrder {
	t.Helper()
	start := end.AddDate(0, 0, -7)
	o := &models.WorkOrder{
		WorkerID:  workerID,
		AssetID:   assetID,
		Name:      "Inspect",
		StartDate: &start,
		EndDate:   &end,
		Status:    "open",
		Images:    [][]byte{[]byte("img-1"), []byte("img-2")},
	}
	create(t, db, o)
	return o
}

// WorkRequest inserts a work request
func WorkRequest(t *testing.T, db *gorm.DB, clientID, assetID uint) *models.WorkRequest {
	t.Helper()
	r := &models.WorkRequest{
		ClientID:    clientID,
		AssetID:     assetID,
		Site:        "Plant A",
		DateOfFault: DatePtr(2024, 3, 1),
		Description: "Leaking seal",
	}
	create(t, db, r)
	return r
}

// Date builds a UTC calendar date
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DatePtr is Date for nullable date columns
func DatePtr(y int, m time.Month, d int) *time.Time {
	t := Date(y, m, d)
	return &t
}

func create(t *testing.T, db *gorm.DB, v interface{}) {
	t.Helper()
	if err := db.WithContext(context.Background()).Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func hash(t *testing.T, plain string) string {
	t.Helper()
	h, err := password.Hash(plain)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return h
}
