package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/classicmodels/api/internal/service"
	"github.com/classicmodels/api/internal/storage/memory"
)

func newTestRouter() *gin.Engine {
	svcs := service.New(memory.New(), zerolog.Nop())
	return NewRouter(svcs, zerolog.Nop(), 0)
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func envelope(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal envelope: %v (body %q)", err, resp.Body.String())
	}
	return out
}

func dataOf(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	data, ok := envelope(t, resp)["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, body %q", resp.Body.String())
	}
	return data
}

func TestHello(t *testing.T) {
	r := newTestRouter()
	resp := do(t, r, http.MethodGet, "/", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if msg := envelope(t, resp)["message"]; msg != "Hello, World!" {
		t.Fatalf("unexpected message %v", msg)
	}
}

func TestOfficeLifecycle(t *testing.T) {
	r := newTestRouter()

	resp := do(t, r, http.MethodPost, "/offices", map[string]any{
		"office_code": "NYC",
		"city":        "New York",
		"phone":       "+1 212 555 0100",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if code := dataOf(t, resp)["office_code"]; code != "NYC" {
		t.Fatalf("unexpected office_code %v", code)
	}

	resp = do(t, r, http.MethodGet, "/offices/NYC", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if city := dataOf(t, resp)["city"]; city != "New York" {
		t.Fatalf("unexpected city %v", city)
	}

	resp = do(t, r, http.MethodGet, "/offices", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	list := dataOf(t, resp)
	if list["count"] != float64(1) {
		t.Fatalf("expected count 1, got %v", list["count"])
	}

	// A sparse PUT only overwrites the fields the body carries.
	resp = do(t, r, http.MethodPut, "/offices/NYC", map[string]any{
		"office_code": "NYC",
		"city":        "New York City",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	data := dataOf(t, resp)
	if data["city"] != "New York City" {
		t.Fatalf("city not updated: %v", data["city"])
	}
	if data["phone"] != "+1 212 555 0100" {
		t.Fatalf("omitted field must keep its value, got %v", data["phone"])
	}

	resp = do(t, r, http.MethodDelete, "/offices/NYC", nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	resp = do(t, r, http.MethodGet, "/offices/NYC", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.Code)
	}
}

func TestPutKeyMismatch(t *testing.T) {
	r := newTestRouter()

	resp := do(t, r, http.MethodPost, "/offices", map[string]any{
		"office_code": "SFO",
		"city":        "San Francisco",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	resp = do(t, r, http.MethodPut, "/offices/SFO", map[string]any{
		"office_code": "LAX",
		"city":        "San Francisco",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	errMsg, _ := envelope(t, resp)["error"].(string)
	if !bytes.Contains([]byte(errMsg), []byte("must match")) {
		t.Fatalf("expected must-match error, got %q", errMsg)
	}

	// The record must be untouched.
	resp = do(t, r, http.MethodGet, "/offices/SFO", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestDuplicateCreateIsConflict(t *testing.T) {
	r := newTestRouter()

	resp := do(t, r, http.MethodPost, "/offices", map[string]any{
		"office_code": "NYC",
		"city":        "New York",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	resp = do(t, r, http.MethodPost, "/offices", map[string]any{
		"office_code": "NYC",
		"city":        "Boston",
	})
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
	if errMsg, _ := envelope(t, resp)["error"].(string); errMsg == "" {
		t.Fatal("expected error in envelope")
	}

	// The stored row keeps its original values.
	resp = do(t, r, http.MethodGet, "/offices/NYC", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if city := dataOf(t, resp)["city"]; city != "New York" {
		t.Fatalf("duplicate create must not overwrite, city is %v", city)
	}
}

func TestMissingBody(t *testing.T) {
	r := newTestRouter()

	resp := do(t, r, http.MethodPost, "/offices", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if errMsg := envelope(t, resp)["error"]; errMsg != "No JSON data provided" {
		t.Fatalf("unexpected error %v", errMsg)
	}
}

func TestValidationFailure(t *testing.T) {
	r := newTestRouter()

	resp := do(t, r, http.MethodPost, "/offices", map[string]any{"office_code": "NYC"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing city, got %d", resp.Code)
	}

	resp = do(t, r, http.MethodPost, "/employees", map[string]any{
		"first_name": "Mary",
		"last_name":  "Patterson",
		"email":      "not-an-email",
		"job_title":  "VP Sales",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", resp.Code)
	}
}

func TestEmployeeNumberGenerated(t *testing.T) {
	r := newTestRouter()

	resp := do(t, r, http.MethodPost, "/employees", map[string]any{
		"first_name": "Diane",
		"last_name":  "Murphy",
		"email":      "dmurphy@classicmodels.example",
		"job_title":  "President",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if num, _ := dataOf(t, resp)["employee_number"].(float64); num == 0 {
		t.Fatal("expected a generated employee_number")
	}
}

func TestPaymentCompositeLifecycle(t *testing.T) {
	r := newTestRouter()

	resp := do(t, r, http.MethodPost, "/payments", map[string]any{
		"customer_number": 1,
		"check_number":    "A1",
		"payment_date":    "2024-01-01",
		"amount":          100.00,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = do(t, r, http.MethodGet, "/payments/1/A1", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if amount := dataOf(t, resp)["amount"]; amount != float64(100) {
		t.Fatalf("unexpected amount %v", amount)
	}

	// The URL supplies both key components; the body may omit them.
	resp = do(t, r, http.MethodPut, "/payments/1/A1", map[string]any{
		"payment_date": "2024-01-01",
		"amount":       250.00,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if amount := dataOf(t, resp)["amount"]; amount != float64(250) {
		t.Fatalf("amount not updated: %v", amount)
	}

	resp = do(t, r, http.MethodGet, "/customers/1/payments", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if count := dataOf(t, resp)["count"]; count != float64(1) {
		t.Fatalf("expected count 1, got %v", count)
	}

	resp = do(t, r, http.MethodDelete, "/payments/1/A1", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if msg := envelope(t, resp)["message"]; msg != "Deleted" {
		t.Fatalf("unexpected message %v", msg)
	}

	resp = do(t, r, http.MethodGet, "/payments/1/A1", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestOrderDetailsByOrder(t *testing.T) {
	r := newTestRouter()

	for _, d := range []map[string]any{
		{"order_number": 10, "product_code": "S10_1678", "quantity_ordered": 2, "price_each": 95.7, "order_line_number": 1},
		{"order_number": 10, "product_code": "S10_2016", "quantity_ordered": 1, "price_each": 119.0, "order_line_number": 2},
		{"order_number": 11, "product_code": "S10_1678", "quantity_ordered": 5, "price_each": 90.0, "order_line_number": 1},
	} {
		resp := do(t, r, http.MethodPost, "/order-details", d)
		if resp.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
		}
	}

	resp := do(t, r, http.MethodGet, "/orders/10/details", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if count := dataOf(t, resp)["count"]; count != float64(2) {
		t.Fatalf("expected count 2, got %v", count)
	}
}

func TestUnknownRecordIs404(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{
		"/offices/NOPE",
		"/employees/9999",
		"/payments/9999/NOPE",
	} {
		resp := do(t, r, http.MethodGet, path, nil)
		if resp.Code != http.StatusNotFound {
			t.Fatalf("GET %s: expected 404, got %d", path, resp.Code)
		}
	}

	resp := do(t, r, http.MethodDelete, "/offices/NOPE", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestListEnvelopeShape(t *testing.T) {
	r := newTestRouter()

	resp := do(t, r, http.MethodGet, "/products", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	data := dataOf(t, resp)
	items, ok := data["items"].([]any)
	if !ok {
		t.Fatalf("expected items array, body %q", resp.Body.String())
	}
	if len(items) != 0 || data["count"] != float64(0) {
		t.Fatalf("expected empty listing, got %v", data)
	}
}

func TestRateLimit(t *testing.T) {
	svcs := service.New(memory.New(), zerolog.Nop())
	r := NewRouter(svcs, zerolog.Nop(), 1)

	if resp := do(t, r, http.MethodGet, "/", nil); resp.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", resp.Code)
	}
	if resp := do(t, r, http.MethodGet, "/", nil); resp.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", resp.Code)
	}
}

func TestRateLimitFractionalRateAdmitsRequests(t *testing.T) {
	svcs := service.New(memory.New(), zerolog.Nop())
	r := NewRouter(svcs, zerolog.Nop(), 0.5)

	if resp := do(t, r, http.MethodGet, "/", nil); resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestHealthz(t *testing.T) {
	r := newTestRouter()
	resp := do(t, r, http.MethodGet, "/healthz", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
