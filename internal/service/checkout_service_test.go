package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/galeria-next/internal/constants"
	"github.com/galeria-next/internal/gallery"
	"github.com/galeria-next/internal/models"
	"github.com/galeria-next/internal/queue"
	"github.com/galeria-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// fakeGallery 模拟画廊后端，记录订单、明细与库存回写
type fakeGallery struct {
	mu sync.Mutex

	stocks          map[uint]int
	failVariantGet  map[uint]bool
	failOrderCreate bool
	failFinalize    bool
	failDetailFor   map[uint]bool
	failStockPutFor map[uint]bool

	nextOrderID  uint
	createdOrder map[string]interface{}
	details      []map[string]interface{}
	stockPuts    map[uint][]int
	statusPuts   []string
	calls        []string
}

func newFakeGallery() *fakeGallery {
	return &fakeGallery{
		stocks:          map[uint]int{},
		failVariantGet:  map[uint]bool{},
		failDetailFor:   map[uint]bool{},
		failStockPutFor: map[uint]bool{},
		nextOrderID:     100,
		stockPuts:       map[uint][]int{},
	}
}

func (f *fakeGallery) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.calls = append(f.calls, "order_create")
		if f.failOrderCreate {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var payload map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		f.createdOrder = payload
		// 后端以字符串形式返回订单 ID
		_, _ = fmt.Fprintf(w, `{"order_id":"%d"}`, f.nextOrderID)
	})
	mux.HandleFunc("/orders/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.calls = append(f.calls, "order_status")
		if f.failFinalize {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		f.statusPuts = append(f.statusPuts, payload["status"])
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/order_details", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var payload map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		variantID := uint(payload["painting_variants_id"].(float64))
		f.calls = append(f.calls, fmt.Sprintf("detail_create:%d", variantID))
		if f.failDetailFor[variantID] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		f.details = append(f.details, payload)
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/painting_variants/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var variantID uint
		_, _ = fmt.Sscanf(strings.TrimPrefix(r.URL.Path, "/painting_variants/"), "%d", &variantID)
		switch r.Method {
		case http.MethodGet:
			f.calls = append(f.calls, fmt.Sprintf("variant_get:%d", variantID))
			if f.failVariantGet[variantID] {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			stock, ok := f.stocks[variantID]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = fmt.Fprintf(w, `{"id":%d,"painting_id":1,"stock_quantity":%d}`, variantID, stock)
		case http.MethodPut:
			f.calls = append(f.calls, fmt.Sprintf("stock_put:%d", variantID))
			if f.failStockPutFor[variantID] {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			var payload map[string]int
			_ = json.NewDecoder(r.Body).Decode(&payload)
			f.stockPuts[variantID] = append(f.stockPuts[variantID], payload["stock_quantity"])
			f.stocks[variantID] = payload["stock_quantity"]
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	return mux
}

func setupCheckoutTest(t *testing.T, backend *fakeGallery) (*CheckoutService, repository.CartRepository) {
	t.Helper()

	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	galleryClient, err := gallery.NewClient(gallery.Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("init gallery client failed: %v", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CartLine{}); err != nil {
		t.Fatalf("migrate cart failed: %v", err)
	}
	cartRepo := repository.NewCartRepository(db)

	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("init queue client failed: %v", err)
	}
	return NewCheckoutService(galleryClient, cartRepo, queueClient), cartRepo
}

func money(value string) models.Money {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return models.NewMoneyFromDecimal(amount)
}

func validShipping() ShippingInfo {
	return ShippingInfo{
		FullName: "Nguyễn Văn An",
		Email:    "an@example.com",
		Phone:    "0901234567",
		Address:  "12 Tràng Tiền, Hà Nội",
		Note:     "Giao giờ hành chính",
	}
}

func TestSubmitAllLinesInStock(t *testing.T) {
	backend := newFakeGallery()
	backend.stocks[11] = 5
	backend.stocks[12] = 2
	svc, _ := setupCheckoutTest(t, backend)

	lines := []models.CartLine{
		{VariantID: 11, PaintingID: 1, Price: money("150.50"), Quantity: 2},
		{VariantID: 12, PaintingID: 2, Price: money("99.99"), Quantity: 1},
	}
	result, err := svc.Submit(context.Background(), 7, validShipping(), lines)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if result.OrderID != 100 {
		t.Fatalf("order id want 100 got %d", result.OrderID)
	}
	if result.FinalStatus != constants.OrderStatusShipping {
		t.Fatalf("final status want Shipping got %s", result.FinalStatus)
	}
	if got := result.TotalPrice.String(); got != "400.99" {
		t.Fatalf("total want 400.99 got %s", got)
	}
	if backend.createdOrder["status"] != constants.OrderStatusPending {
		t.Fatalf("order should be created as Pending, got %v", backend.createdOrder["status"])
	}
	if len(backend.details) != 2 {
		t.Fatalf("detail count want 2 got %d", len(backend.details))
	}
	if backend.stocks[11] != 3 || backend.stocks[12] != 1 {
		t.Fatalf("stocks want 3/1 got %d/%d", backend.stocks[11], backend.stocks[12])
	}
	for _, line := range result.Lines {
		if !line.Stocked || !line.DetailCreated || !line.StockUpdated {
			t.Fatalf("line should be fully processed: %+v", line)
		}
		if line.Note != constants.LineNoteOK {
			t.Fatalf("line note want ok got %s", line.Note)
		}
	}
	if len(backend.statusPuts) != 1 || backend.statusPuts[0] != constants.OrderStatusShipping {
		t.Fatalf("unexpected status puts: %v", backend.statusPuts)
	}
}

func TestSubmitShortStockStaysPending(t *testing.T) {
	backend := newFakeGallery()
	backend.stocks[11] = 5
	backend.stocks[12] = 1
	svc, _ := setupCheckoutTest(t, backend)

	lines := []models.CartLine{
		{VariantID: 11, PaintingID: 1, Price: money("100"), Quantity: 2},
		{VariantID: 12, PaintingID: 2, Price: money("50"), Quantity: 3},
	}
	result, err := svc.Submit(context.Background(), 7, validShipping(), lines)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if result.FinalStatus != constants.OrderStatusPending {
		t.Fatalf("final status want Pending got %s", result.FinalStatus)
	}
	// 缺货行库存抹到 0，不允许为负
	if backend.stocks[12] != 0 {
		t.Fatalf("short line stock want 0 got %d", backend.stocks[12])
	}
	// 前面足量的行正常扣减
	if backend.stocks[11] != 3 {
		t.Fatalf("in-stock line stock want 3 got %d", backend.stocks[11])
	}
	if result.Lines[0].Note != constants.LineNoteOK {
		t.Fatalf("first line note want ok got %s", result.Lines[0].Note)
	}
	if result.Lines[1].Stocked || result.Lines[1].Note != constants.LineNoteShortStock {
		t.Fatalf("second line should be short_stock: %+v", result.Lines[1])
	}
	// 缺货行的明细仍会写入
	if len(backend.details) != 2 {
		t.Fatalf("detail count want 2 got %d", len(backend.details))
	}
}

func TestSubmitFinalStatusStickyAcrossLaterLines(t *testing.T) {
	backend := newFakeGallery()
	backend.stocks[11] = 0
	backend.stocks[12] = 10
	svc, _ := setupCheckoutTest(t, backend)

	lines := []models.CartLine{
		{VariantID: 11, PaintingID: 1, Price: money("10"), Quantity: 1},
		{VariantID: 12, PaintingID: 2, Price: money("10"), Quantity: 1},
	}
	result, err := svc.Submit(context.Background(), 7, validShipping(), lines)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.FinalStatus != constants.OrderStatusPending {
		t.Fatalf("later in-stock line must not flip status back, got %s", result.FinalStatus)
	}
}

func TestSubmitVariantFetchFailureTreatedAsZeroStock(t *testing.T) {
	backend := newFakeGallery()
	backend.stocks[11] = 5
	backend.failVariantGet[11] = true
	svc, _ := setupCheckoutTest(t, backend)

	lines := []models.CartLine{
		{VariantID: 11, PaintingID: 1, Price: money("10"), Quantity: 1},
	}
	result, err := svc.Submit(context.Background(), 7, validShipping(), lines)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.FinalStatus != constants.OrderStatusPending {
		t.Fatalf("unfetched variant should leave order Pending, got %s", result.FinalStatus)
	}
	if result.Lines[0].Note != constants.LineNoteVariantUnfetched {
		t.Fatalf("note want variant_fetch_failed got %s", result.Lines[0].Note)
	}
	// 读取失败仍按 0 库存回写
	puts := backend.stockPuts[11]
	if len(puts) != 1 || puts[0] != 0 {
		t.Fatalf("stock should be written as 0, got %v", puts)
	}
}

func TestSubmitDetailFailureContinuesAndReports(t *testing.T) {
	backend := newFakeGallery()
	backend.stocks[11] = 5
	backend.stocks[12] = 5
	backend.failDetailFor[11] = true
	svc, _ := setupCheckoutTest(t, backend)

	lines := []models.CartLine{
		{VariantID: 11, PaintingID: 1, Price: money("10"), Quantity: 1},
		{VariantID: 12, PaintingID: 2, Price: money("10"), Quantity: 1},
	}
	result, err := svc.Submit(context.Background(), 7, validShipping(), lines)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	// 明细失败不是缺货，订单仍可发货
	if result.FinalStatus != constants.OrderStatusShipping {
		t.Fatalf("final status want Shipping got %s", result.FinalStatus)
	}
	if result.Lines[0].DetailCreated || result.Lines[0].Note != constants.LineNoteDetailFailed {
		t.Fatalf("first line should report detail failure: %+v", result.Lines[0])
	}
	if !result.Lines[1].DetailCreated {
		t.Fatalf("second line detail should be created: %+v", result.Lines[1])
	}
	// 明细失败不阻止库存扣减
	if backend.stocks[11] != 4 {
		t.Fatalf("stock want 4 got %d", backend.stocks[11])
	}
}

func TestSubmitStockWriteFailureReported(t *testing.T) {
	backend := newFakeGallery()
	backend.stocks[11] = 5
	backend.failStockPutFor[11] = true
	svc, _ := setupCheckoutTest(t, backend)

	lines := []models.CartLine{
		{VariantID: 11, PaintingID: 1, Price: money("10"), Quantity: 1},
	}
	result, err := svc.Submit(context.Background(), 7, validShipping(), lines)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.FinalStatus != constants.OrderStatusShipping {
		t.Fatalf("stock write failure should not block shipping, got %s", result.FinalStatus)
	}
	if result.Lines[0].StockUpdated || result.Lines[0].Note != constants.LineNoteStockSyncFailed {
		t.Fatalf("line should report stock sync failure: %+v", result.Lines[0])
	}
}

func TestSubmitOrderCreateFailureIsFatal(t *testing.T) {
	backend := newFakeGallery()
	backend.failOrderCreate = true
	svc, _ := setupCheckoutTest(t, backend)

	lines := []models.CartLine{
		{VariantID: 11, PaintingID: 1, Price: money("10"), Quantity: 1},
	}
	_, err := svc.Submit(context.Background(), 7, validShipping(), lines)
	if !errors.Is(err, ErrOrderCreateFailed) {
		t.Fatalf("want ErrOrderCreateFailed got %v", err)
	}
	if len(backend.details) != 0 || len(backend.stockPuts) != 0 {
		t.Fatalf("no line should be processed after create failure")
	}
}

func TestSubmitFinalizeFailureIsFatal(t *testing.T) {
	backend := newFakeGallery()
	backend.stocks[11] = 5
	backend.failFinalize = true
	svc, _ := setupCheckoutTest(t, backend)

	lines := []models.CartLine{
		{VariantID: 11, PaintingID: 1, Price: money("10"), Quantity: 1},
	}
	_, err := svc.Submit(context.Background(), 7, validShipping(), lines)
	if !errors.Is(err, ErrOrderFinalizeFailed) {
		t.Fatalf("want ErrOrderFinalizeFailed got %v", err)
	}
}

func TestSubmitValidation(t *testing.T) {
	backend := newFakeGallery()
	svc, _ := setupCheckoutTest(t, backend)

	_, err := svc.Submit(context.Background(), 7, ShippingInfo{FullName: "A"}, []models.CartLine{{VariantID: 1, Quantity: 1}})
	if !errors.Is(err, ErrShippingInfoInvalid) {
		t.Fatalf("want ErrShippingInfoInvalid got %v", err)
	}

	_, err = svc.Submit(context.Background(), 7, validShipping(), nil)
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("want ErrCartEmpty got %v", err)
	}
}

func TestComputeTotalDefaults(t *testing.T) {
	lines := []models.CartLine{
		{Price: money("100.00"), Quantity: 2},
		{Quantity: 0}, // 数量缺省按 1，价格缺省按 0
		{Price: money("0.50"), Quantity: -3},
	}
	total := computeTotal(lines)
	if got := total.String(); got != "200.50" {
		t.Fatalf("total want 200.50 got %s", got)
	}
}

func TestSubmitFromCartClearsCartOnSuccess(t *testing.T) {
	backend := newFakeGallery()
	backend.stocks[11] = 5
	svc, cartRepo := setupCheckoutTest(t, backend)

	if err := cartRepo.Upsert(&models.CartLine{
		DeviceID:   "device-1",
		VariantID:  11,
		PaintingID: 1,
		Price:      money("20"),
		Quantity:   1,
	}); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}

	result, err := svc.SubmitFromCart(context.Background(), 7, "device-1", validShipping())
	if err != nil {
		t.Fatalf("submit from cart failed: %v", err)
	}
	if result.OrderID == 0 {
		t.Fatalf("order id should be set")
	}
	count, err := cartRepo.CountByDevice("device-1")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("cart should be cleared, got %d lines", count)
	}
}

func TestSubmitFromCartKeepsCartOnFatalError(t *testing.T) {
	backend := newFakeGallery()
	backend.failOrderCreate = true
	svc, cartRepo := setupCheckoutTest(t, backend)

	if err := cartRepo.Upsert(&models.CartLine{
		DeviceID:  "device-2",
		VariantID: 11,
		Price:     money("20"),
		Quantity:  1,
	}); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}

	_, err := svc.SubmitFromCart(context.Background(), 7, "device-2", validShipping())
	if !errors.Is(err, ErrOrderCreateFailed) {
		t.Fatalf("want ErrOrderCreateFailed got %v", err)
	}
	count, err := cartRepo.CountByDevice("device-2")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("cart must be retained after fatal error, got %d lines", count)
	}
}

func TestSubmitFromCartRequiresDevice(t *testing.T) {
	backend := newFakeGallery()
	svc, _ := setupCheckoutTest(t, backend)

	_, err := svc.SubmitFromCart(context.Background(), 7, "  ", validShipping())
	if !errors.Is(err, ErrDeviceRequired) {
		t.Fatalf("want ErrDeviceRequired got %v", err)
	}
}

func TestSubmitProcessesLinesSequentially(t *testing.T) {
	backend := newFakeGallery()
	backend.stocks[21] = 5
	backend.stocks[22] = 5
	backend.stocks[23] = 5
	svc, _ := setupCheckoutTest(t, backend)

	lines := []models.CartLine{
		{VariantID: 21, PaintingID: 1, Price: money("10"), Quantity: 1},
		{VariantID: 22, PaintingID: 2, Price: money("20"), Quantity: 1},
		{VariantID: 23, PaintingID: 3, Price: money("30"), Quantity: 1},
	}
	if _, err := svc.Submit(context.Background(), 7, validShipping(), lines); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// 每行严格按 读库存 → 写明细 → 回写库存 串行执行，行间不交错
	want := []string{
		"order_create",
		"variant_get:21", "detail_create:21", "stock_put:21",
		"variant_get:22", "detail_create:22", "stock_put:22",
		"variant_get:23", "detail_create:23", "stock_put:23",
		"order_status",
	}
	if len(backend.calls) != len(want) {
		t.Fatalf("call count want %d got %d: %v", len(want), len(backend.calls), backend.calls)
	}
	for i := range want {
		if backend.calls[i] != want[i] {
			t.Fatalf("call %d want %s got %s (full: %v)", i, want[i], backend.calls[i], backend.calls)
		}
	}
}

func TestSubmitTwoLineShortScenario(t *testing.T) {
	backend := newFakeGallery()
	backend.stocks[1] = 5
	backend.stocks[2] = 0
	svc, cartRepo := setupCheckoutTest(t, backend)

	lines := []models.CartLine{
		{DeviceID: "device-a", VariantID: 1, PaintingID: 10, Price: money("500000"), Quantity: 2},
		{DeviceID: "device-a", VariantID: 2, PaintingID: 11, Price: money("1000000"), Quantity: 1},
	}
	for _, line := range lines {
		if err := cartRepo.Upsert(&line); err != nil {
			t.Fatalf("seed cart failed: %v", err)
		}
	}

	result, err := svc.SubmitFromCart(context.Background(), 7, "device-a", validShipping())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if result.OrderID != 100 {
		t.Fatalf("order id want 100 got %d", result.OrderID)
	}
	if got := result.TotalPrice.String(); got != "2000000.00" {
		t.Fatalf("total want 2000000.00 got %s", got)
	}
	if backend.createdOrder["status"] != constants.OrderStatusPending {
		t.Fatalf("order should be created as Pending, got %v", backend.createdOrder["status"])
	}
	// 足量行扣减到 3，缺货行抹到 0
	if backend.stocks[1] != 3 {
		t.Fatalf("variant 1 stock want 3 got %d", backend.stocks[1])
	}
	if backend.stocks[2] != 0 {
		t.Fatalf("variant 2 stock want 0 got %d", backend.stocks[2])
	}
	if len(backend.details) != 2 {
		t.Fatalf("detail count want 2 got %d", len(backend.details))
	}
	if result.FinalStatus != constants.OrderStatusPending {
		t.Fatalf("final status want Pending got %s", result.FinalStatus)
	}
	if len(backend.statusPuts) != 1 || backend.statusPuts[0] != constants.OrderStatusPending {
		t.Fatalf("finalize should send Pending: %v", backend.statusPuts)
	}
	remaining, err := cartRepo.ListByDevice("device-a")
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("cart should be cleared, %d lines left", len(remaining))
	}
}

func TestSubmitLineNotesAccumulate(t *testing.T) {
	backend := newFakeGallery()
	backend.failVariantGet[31] = true
	backend.failDetailFor[31] = true
	svc, _ := setupCheckoutTest(t, backend)

	lines := []models.CartLine{
		{VariantID: 31, PaintingID: 1, Price: money("100"), Quantity: 1},
	}
	result, err := svc.Submit(context.Background(), 7, validShipping(), lines)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// 库存读取与明细写入都失败时，两个失败都要体现在结果里
	want := constants.LineNoteVariantUnfetched + "," + constants.LineNoteDetailFailed
	if result.Lines[0].Note != want {
		t.Fatalf("note want %s got %s", want, result.Lines[0].Note)
	}
	if result.Lines[0].Stocked || result.Lines[0].DetailCreated {
		t.Fatalf("line should report both failures: %+v", result.Lines[0])
	}
}
