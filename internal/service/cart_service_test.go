package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/galeria-next/internal/models"
	"github.com/galeria-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) *CartService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CartLine{}); err != nil {
		t.Fatalf("migrate cart failed: %v", err)
	}
	return NewCartService(repository.NewCartRepository(db))
}

func TestCanonicalVariantID(t *testing.T) {
	cases := []struct {
		name               string
		variantID          uint
		paintingVariantsID uint
		variantsID         uint
		want               uint
	}{
		{name: "variant_id wins", variantID: 1, paintingVariantsID: 2, variantsID: 3, want: 1},
		{name: "painting_variants_id fallback", paintingVariantsID: 2, variantsID: 3, want: 2},
		{name: "variants_id fallback", variantsID: 3, want: 3},
		{name: "all zero", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := canonicalVariantID(tc.variantID, tc.paintingVariantsID, tc.variantsID)
			if got != tc.want {
				t.Fatalf("want %d got %d", tc.want, got)
			}
		})
	}
}

func TestAddLineNormalizesVariantAndQuantity(t *testing.T) {
	svc := setupCartServiceTest(t)

	// 历史字段名 painting_variants_id 归一化为 variant_id
	if err := svc.AddLine(AddCartLineInput{
		DeviceID:           "device-1",
		PaintingVariantsID: 42,
		PaintingID:         5,
		Name:               "Thiếu nữ bên hoa sen",
		Price:              money("320"),
		Quantity:           0,
	}); err != nil {
		t.Fatalf("add line failed: %v", err)
	}

	lines, err := svc.ListByDevice("device-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("line count want 1 got %d", len(lines))
	}
	if lines[0].VariantID != 42 {
		t.Fatalf("variant id want 42 got %d", lines[0].VariantID)
	}
	if lines[0].Quantity != 1 {
		t.Fatalf("zero quantity should default to 1, got %d", lines[0].Quantity)
	}
}

func TestAddLineAccumulatesSameVariant(t *testing.T) {
	svc := setupCartServiceTest(t)

	if err := svc.AddLine(AddCartLineInput{DeviceID: "device-1", VariantID: 7, Quantity: 2}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	// 同一规格用不同字段名再次加入，仍应合并
	if err := svc.AddLine(AddCartLineInput{DeviceID: "device-1", VariantsID: 7, Quantity: 3}); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	lines, err := svc.ListByDevice("device-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("line count want 1 got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("quantity want 5 got %d", lines[0].Quantity)
	}
}

func TestAddLineRejectsMissingVariant(t *testing.T) {
	svc := setupCartServiceTest(t)

	err := svc.AddLine(AddCartLineInput{DeviceID: "device-1", Quantity: 1})
	if !errors.Is(err, ErrInvalidCartLine) {
		t.Fatalf("want ErrInvalidCartLine got %v", err)
	}
	err = svc.AddLine(AddCartLineInput{VariantID: 1, Quantity: 1})
	if !errors.Is(err, ErrDeviceRequired) {
		t.Fatalf("want ErrDeviceRequired got %v", err)
	}
}

func TestUpdateQuantity(t *testing.T) {
	svc := setupCartServiceTest(t)

	if err := svc.AddLine(AddCartLineInput{DeviceID: "device-1", VariantID: 7, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.UpdateQuantity("device-1", 7, 4); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	lines, _ := svc.ListByDevice("device-1")
	if lines[0].Quantity != 4 {
		t.Fatalf("quantity want 4 got %d", lines[0].Quantity)
	}

	if err := svc.UpdateQuantity("device-1", 7, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("want ErrInvalidQuantity got %v", err)
	}
	if err := svc.UpdateQuantity("device-1", 99, 2); !errors.Is(err, ErrCartLineNotFound) {
		t.Fatalf("want ErrCartLineNotFound got %v", err)
	}
}

func TestReplaceMergesDuplicateVariants(t *testing.T) {
	svc := setupCartServiceTest(t)

	if err := svc.AddLine(AddCartLineInput{DeviceID: "device-1", VariantID: 1, Quantity: 9}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	err := svc.Replace("device-1", []ReplaceCartLineInput{
		{VariantID: 2, Quantity: 1},
		{PaintingVariantsID: 2, Quantity: 2},
		{VariantsID: 3, Quantity: 0},
	})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	lines, err := svc.ListByDevice("device-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("line count want 2 got %d", len(lines))
	}
	if lines[0].VariantID != 2 || lines[0].Quantity != 3 {
		t.Fatalf("merged line want variant 2 qty 3, got %+v", lines[0])
	}
	if lines[1].VariantID != 3 || lines[1].Quantity != 1 {
		t.Fatalf("second line want variant 3 qty 1, got %+v", lines[1])
	}
}

func TestRemoveAndClear(t *testing.T) {
	svc := setupCartServiceTest(t)

	for _, variantID := range []uint{1, 2, 3} {
		if err := svc.AddLine(AddCartLineInput{DeviceID: "device-1", VariantID: variantID, Quantity: 1}); err != nil {
			t.Fatalf("add variant %d failed: %v", variantID, err)
		}
	}
	if err := svc.RemoveLine("device-1", 2); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	count, err := svc.Count("device-1")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("count want 2 got %d", count)
	}

	if err := svc.Clear("device-1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	count, _ = svc.Count("device-1")
	if count != 0 {
		t.Fatalf("count after clear want 0 got %d", count)
	}
}
