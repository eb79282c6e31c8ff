package customer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"sop/apiserver/internal/app/domains/entity/etcustomer"
	"sop/apiserver/internal/app/domains/services/svcustomer"
	"sop/apiserver/internal/app/pkg/errorx"
	"sop/apiserver/internal/app/pkg/logger"
)

// fakeCustomerRepo 客户仓储桩，按邮箱模拟唯一约束
type fakeCustomerRepo struct {
	nextID int64
	emails map[string]bool
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{emails: make(map[string]bool)}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *etcustomer.Customer) error {
	if f.emails[customer.Email] {
		return errorx.ErrConflict
	}
	f.emails[customer.Email] = true
	f.nextID++
	customer.ID = f.nextID
	return nil
}
func (f *fakeCustomerRepo) GetByID(ctx context.Context, id int64) (*etcustomer.Customer, error) {
	return nil, errorx.ErrNotFound
}
func (f *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*etcustomer.Customer, error) {
	return nil, errorx.ErrNotFound
}
func (f *fakeCustomerRepo) List(ctx context.Context, page, limit int) ([]*etcustomer.Customer, int64, error) {
	return nil, 0, nil
}
func (f *fakeCustomerRepo) Update(ctx context.Context, customer *etcustomer.Customer) error {
	return nil
}
func (f *fakeCustomerRepo) Delete(ctx context.Context, id int64) error { return nil }
func (f *fakeCustomerRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := svcustomer.NewCustomerService(newFakeCustomerRepo())
	handler := NewCustomerHandler(service, logger.NopLogger{})

	r := gin.New()
	r.POST("/api/v1/customers", handler.Create)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const customerBody = `{"name": "Jane Smith", "email": "jane@example.com", "phone": "+44-20-7946-0100"}`

func TestCreateCustomer_Created(t *testing.T) {
	r := newTestRouter()
	w := postJSON(t, r, customerBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	data := body["data"].(map[string]interface{})
	if data["email"] != "jane@example.com" {
		t.Fatalf("data = %v", data)
	}
}

func TestCreateCustomer_DuplicateEmailConflicts(t *testing.T) {
	r := newTestRouter()
	if w := postJSON(t, r, customerBody); w.Code != http.StatusCreated {
		t.Fatalf("first create: status = %d", w.Code)
	}

	w := postJSON(t, r, customerBody)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate create: status = %d, want 409, body: %s", w.Code, w.Body.String())
	}
	// 响应只携带固定文案，不回显存储层错误
	if !strings.Contains(w.Body.String(), "record already exists") {
		t.Fatalf("body = %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "Duplicate entry") {
		t.Fatalf("storage error leaked: %s", w.Body.String())
	}
}
