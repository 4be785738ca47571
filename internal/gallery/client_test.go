package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("init client failed: %v", err)
	}
	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "   "})
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("want ErrConfigInvalid got %v", err)
	}
}

func TestParseOrderID(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    uint
		wantErr bool
	}{
		{name: "number order_id", body: `{"order_id":42}`, want: 42},
		{name: "string order_id", body: `{"order_id":"42"}`, want: 42},
		{name: "id fallback", body: `{"id":7}`, want: 7},
		{name: "order_id preferred over id", body: `{"order_id":42,"id":7}`, want: 42},
		{name: "missing", body: `{"message":"created"}`, wantErr: true},
		{name: "not json", body: `created`, wantErr: true},
		{name: "zero id", body: `{"order_id":0}`, wantErr: true},
		{name: "garbage string", body: `{"order_id":"abc"}`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseOrderID([]byte(tc.body))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got id %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %d got %d", tc.want, got)
			}
		})
	}
}

func TestFlexIntUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{name: "number", body: `{"stock_quantity":5}`, want: 5},
		{name: "string", body: `{"stock_quantity":"5"}`, want: 5},
		{name: "float string", body: `{"stock_quantity":"5.0"}`, want: 5},
		{name: "null", body: `{"stock_quantity":null}`, want: 0},
		{name: "missing", body: `{}`, want: 0},
		{name: "garbage", body: `{"stock_quantity":"lots"}`, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var variant Variant
			if err := json.Unmarshal([]byte(tc.body), &variant); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if variant.StockQuantity.Int() != tc.want {
				t.Fatalf("want %d got %d", tc.want, variant.StockQuantity.Int())
			}
		})
	}
}

func TestCreateOrderParsesStringID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload failed: %v", err)
		}
		if payload["status"] != "Pending" {
			t.Errorf("status want Pending got %v", payload["status"])
		}
		_, _ = w.Write([]byte(`{"order_id":"88"}`))
	}))

	orderID, err := client.CreateOrder(context.Background(), CreateOrderInput{
		UserID:   1,
		FullName: "Test",
		Status:   "Pending",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if orderID != 88 {
		t.Fatalf("order id want 88 got %d", orderID)
	}
}

func TestGetVariantNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetVariant(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestDoWrapsServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.ListPaintings(context.Background())
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("want ErrRequestFailed got %v", err)
	}
}

func TestUpdateVariantStockBody(t *testing.T) {
	var got map[string]int
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/painting_variants/5" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body failed: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))

	if err := client.UpdateVariantStock(context.Background(), 5, 3); err != nil {
		t.Fatalf("update stock failed: %v", err)
	}
	if got["stock_quantity"] != 3 {
		t.Fatalf("stock_quantity want 3 got %d", got["stock_quantity"])
	}
}

func TestGetJSONInvalidPayload(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))

	_, err := client.ListArtists(context.Background())
	if !errors.Is(err, ErrResponseInvalid) {
		t.Fatalf("want ErrResponseInvalid got %v", err)
	}
}
