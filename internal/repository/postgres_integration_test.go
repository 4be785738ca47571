//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"

	"github.com/galeria-next/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	_ = db.Migrator().DropTable(&models.CartLine{})
	if err := db.AutoMigrate(&models.CartLine{}); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(&models.CartLine{})
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresCartRepositoryUpsertAccumulates(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewCartRepository(db)

	line := &models.CartLine{
		DeviceID:   "device-pg-1",
		VariantID:  11,
		PaintingID: 3,
		Name:       "Phố cổ Hà Nội",
		Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(250)),
		Quantity:   1,
	}
	if err := repo.Upsert(line); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := repo.Upsert(&models.CartLine{
		DeviceID:  "device-pg-1",
		VariantID: 11,
		Quantity:  2,
	}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	lines, err := repo.ListByDevice("device-pg-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("line count want 1 got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("quantity want 3 got %d", lines[0].Quantity)
	}
}

func TestPostgresCartRepositoryClearByDevice(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewCartRepository(db)

	for _, variantID := range []uint{21, 22, 23} {
		if err := repo.Upsert(&models.CartLine{
			DeviceID:  "device-pg-2",
			VariantID: variantID,
			Quantity:  1,
		}); err != nil {
			t.Fatalf("upsert variant %d failed: %v", variantID, err)
		}
	}
	if err := repo.Upsert(&models.CartLine{
		DeviceID:  "device-pg-other",
		VariantID: 21,
		Quantity:  1,
	}); err != nil {
		t.Fatalf("upsert other device failed: %v", err)
	}

	if err := repo.ClearByDevice("device-pg-2"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	count, err := repo.CountByDevice("device-pg-2")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("cleared device count want 0 got %d", count)
	}
	otherCount, err := repo.CountByDevice("device-pg-other")
	if err != nil {
		t.Fatalf("count other failed: %v", err)
	}
	if otherCount != 1 {
		t.Fatalf("other device count want 1 got %d", otherCount)
	}
}
