package excel

import (
	"testing"
	"time"

	"revo-utils/core/database"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testRegion struct {
	ID   uint
	Name string `label:"Region Name"`
}

type testCustomer struct {
	ID       uint
	Name     string `label:"Full Name"`
	RegionID *uint
	Region   *testRegion
}

type testLine struct {
	ID            uint
	TestInvoiceID uint
	Amount        float64
}

type testInvoice struct {
	ID         uint
	Number     string
	CustomerID uint
	Customer   *testCustomer   `label:"Customer"`
	Issued     time.Time       `gorm:"type:date"`
	CreatedAt  time.Time
	Total      decimal.Decimal `gorm:"type:decimal(12,4)"`
	Weight     float64
	Rate       float64 `gorm:"precision:10;scale:3"`
	Paid       bool
	Note       *string
	Lines      []testLine `gorm:"foreignKey:TestInvoiceID"`
}

// testShipment holds its customer by value, so an unloaded or dangling
// relation is the zero struct rather than nil.
type testShipment struct {
	ID         uint
	Ref        string
	CustomerID uint
	Customer   testCustomer
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"}, nil)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&testRegion{}, &testCustomer{}, &testInvoice{}, &testLine{}, &testShipment{}))
	return db
}

func seedInvoices(t *testing.T, db *gorm.DB) {
	t.Helper()
	north := testRegion{ID: 1, Name: "North"}
	require.NoError(t, db.Create(&north).Error)

	regionID := north.ID
	acme := testCustomer{ID: 1, Name: "Acme", RegionID: &regionID}
	globex := testCustomer{ID: 2, Name: "Globex"}
	require.NoError(t, db.Create(&acme).Error)
	require.NoError(t, db.Create(&globex).Error)

	day := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	invoices := []testInvoice{
		{ID: 1, Number: "INV-001", CustomerID: 1, Issued: day, Total: decimal.RequireFromString("100.5000"), Weight: 1.5, Paid: true},
		{ID: 2, Number: "INV-002", CustomerID: 1, Issued: day.AddDate(0, 1, 0), Total: decimal.RequireFromString("20.2500"), Weight: 2},
		{ID: 3, Number: "INV-003", CustomerID: 2, Issued: day.AddDate(0, 2, 0), Total: decimal.RequireFromString("7.0000")},
	}
	require.NoError(t, db.Create(&invoices).Error)
}
