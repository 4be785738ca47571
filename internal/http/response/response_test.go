package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c, w
}

func TestSuccessEnvelope(t *testing.T) {
	c, w := newTestContext(t)
	Success(c, gin.H{"name": "Phố cổ"})

	var body Body
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body.StatusCode != 0 || body.Message != "success" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if body.Pagination != nil {
		t.Fatal("pagination should be omitted for plain success")
	}
}

func TestErrorAttachesRequestID(t *testing.T) {
	c, w := newTestContext(t)
	c.Set("request_id", "req-123")
	Error(c, CodeInternal, "lỗi hệ thống")

	var body Body
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body.StatusCode != CodeInternal {
		t.Fatalf("status_code want %d got %d", CodeInternal, body.StatusCode)
	}
	data, ok := body.Data.(map[string]interface{})
	if !ok || data["request_id"] != "req-123" {
		t.Fatalf("request_id missing from error data: %v", body.Data)
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		page      int
		pageSize  int
		total     int64
		totalPage int64
	}{
		{1, 20, 0, 0},
		{1, 20, 20, 1},
		{2, 20, 21, 2},
		{1, 0, 50, 0},
	}
	for _, tt := range tests {
		got := NewPagination(tt.page, tt.pageSize, tt.total)
		if got.TotalPage != tt.totalPage {
			t.Errorf("NewPagination(%d,%d,%d).TotalPage = %d, want %d",
				tt.page, tt.pageSize, tt.total, got.TotalPage, tt.totalPage)
		}
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	inner := json.Unmarshal([]byte("{"), &struct{}{})
	appErr := NewAppError(CodeBadRequest, "error.invalid_request", "yêu cầu không hợp lệ", inner)

	if appErr.Unwrap() != inner {
		t.Fatal("Unwrap should return the wrapped error")
	}
	if appErr.Error() == "yêu cầu không hợp lệ" {
		t.Fatal("Error() should include the wrapped error text")
	}
}
