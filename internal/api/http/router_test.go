package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/roster-service/internal/api/http"
	"github.com/spec-kit/roster-service/internal/api/http/handlers"
	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/observability"
	"github.com/spec-kit/roster-service/internal/remote"
	"github.com/spec-kit/roster-service/internal/service"
	apperrors "github.com/spec-kit/roster-service/pkg/util/errorutil"
)

type stubSource struct {
	mu      sync.Mutex
	records []remote.RawRecord
	nextID  int
	err     error
}

func (s *stubSource) FetchAll(context.Context) ([]remote.RawRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]remote.RawRecord(nil), s.records...), nil
}

func (s *stubSource) Create(_ context.Context, fields domain.EmployeeFields) (remote.RawRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return remote.RawRecord{}, s.err
	}
	s.nextID++
	return remote.FromFields(strconv.Itoa(s.nextID), fields), nil
}

func (s *stubSource) Delete(context.Context, string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *stubSource) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

type testApp struct {
	app     *fiber.App
	source  *stubSource
	metrics *observability.Metrics
}

func newTestApp(t *testing.T, n int) *testApp {
	t.Helper()
	src := &stubSource{nextID: n}
	for i := 1; i <= n; i++ {
		src.records = append(src.records, remote.RawRecord{
			ID:    strconv.Itoa(i),
			Name:  "User " + strconv.Itoa(i),
			Email: "user" + strconv.Itoa(i) + "@example.com",
		})
	}
	logger := zap.NewNop()
	data := service.NewDataService(service.DataDependencies{Source: src, IDPrefix: "emp_", Logger: logger})
	_, err := data.LoadAll(context.Background())
	require.NoError(t, err)

	view := service.NewRosterView(data, 10, 5)
	t.Cleanup(view.Close)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(handlers.HealthDependencies{ServiceName: "roster-service", Version: "test", Data: data, Metrics: metrics}),
		Employees: handlers.NewEmployeesHandler(data, 10, 5),
		View:      handlers.NewViewHandler(view),
		Export:    handlers.NewExportHandler(data),
	})
	return &testApp{app: app, source: src, metrics: metrics}
}

func (a *testApp) do(t *testing.T, method, target, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, ok := body["data"].(map[string]any)
	require.True(t, ok, "missing data object: %v", body)
	return d
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, "missing error object: %v", body)
	return e["code"].(string)
}

func TestHealth(t *testing.T) {
	a := newTestApp(t, 3)

	resp, body := a.do(t, http.MethodGet, "/health/live", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "alive", body["status"])

	resp, body = a.do(t, http.MethodGet, "/health/ready", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(3), body["employees"])
	require.Equal(t, float64(1), body["subscribers"])
	deps := body["dependencies"].(map[string]any)
	require.Equal(t, "disabled", deps["postgres"])
	require.Equal(t, "disabled", deps["redis"])
}

func TestListEmployeesPagesAndFilters(t *testing.T) {
	a := newTestApp(t, 25)

	resp, body := a.do(t, http.MethodGet, "/api/employees?page=3", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := data(t, body)
	require.Len(t, page["employees"], 5)
	pager := page["pagination"].(map[string]any)
	require.Equal(t, float64(3), pager["page"])
	require.Equal(t, "Showing 21-25 of 25 employees", pager["summary"])

	_, body = a.do(t, http.MethodGet, "/api/employees?department=Engineering,HR&department=Sales&page_size=50", "")
	page = data(t, body)
	require.Equal(t, float64(13), page["pagination"].(map[string]any)["total_items"])
	require.Equal(t, []any{"Engineering", "HR", "Sales"}, page["selected_departments"])

	_, body = a.do(t, http.MethodGet, "/api/employees?search=user%2025", "")
	employees := data(t, body)["employees"].([]any)
	require.Len(t, employees, 1)
	require.Equal(t, "emp_25", employees[0].(map[string]any)["id"])
}

func TestListEmployeesCapsPageSize(t *testing.T) {
	a := newTestApp(t, 150)

	resp, body := a.do(t, http.MethodGet, "/api/employees?page_size=9223372036854775807", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := data(t, body)
	require.Len(t, page["employees"], 100)
	pager := page["pagination"].(map[string]any)
	require.Equal(t, float64(2), pager["total_pages"])
	require.Equal(t, true, pager["has_next"])
	require.Equal(t, "Showing 1-100 of 150 employees", pager["summary"])

	_, body = a.do(t, http.MethodPut, "/api/view/page-size", `{"page_size":1000000}`)
	pager = data(t, body)["pagination"].(map[string]any)
	require.Equal(t, float64(2), pager["total_pages"])
}

func TestEmployeeLifecycle(t *testing.T) {
	a := newTestApp(t, 2)

	resp, body := a.do(t, http.MethodPost, "/api/employees",
		`{"name":"Ada","email":"ada@example.com","role":"CTO","department":"Board","salary":120000}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := data(t, body)
	require.Equal(t, "emp_3", created["id"])

	resp, body = a.do(t, http.MethodGet, "/api/employees/emp_3", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Ada", data(t, body)["name"])

	_, body = a.do(t, http.MethodGet, "/api/departments", "")
	require.Contains(t, body["data"], "Board")

	resp, _ = a.do(t, http.MethodDelete, "/api/employees/emp_3", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = a.do(t, http.MethodDelete, "/api/employees/emp_3", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOT_FOUND", errorCode(t, body))

	resp, body = a.do(t, http.MethodGet, "/api/employees/emp_3", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOT_FOUND", errorCode(t, body))
}

func TestCreateEmployeeValidation(t *testing.T) {
	a := newTestApp(t, 0)

	resp, body := a.do(t, http.MethodPost, "/api/employees", `{"name":" ","email":"not-an-email","salary":-1}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "VALIDATION_FAILED", errorCode(t, body))
	details := body["error"].(map[string]any)["details"].(map[string]any)
	require.Equal(t, "required", details["name"])
	require.Equal(t, "invalid", details["email"])
	require.Contains(t, details, "salary")
}

func TestRemoteFailuresMapToGatewayErrors(t *testing.T) {
	a := newTestApp(t, 1)

	a.source.fail(&apperrors.HTTPError{Op: "create", StatusCode: http.StatusInternalServerError})
	resp, body := a.do(t, http.MethodPost, "/api/employees", `{"name":"Ada","email":"ada@example.com"}`)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	require.Equal(t, "REMOTE_REJECTED", errorCode(t, body))

	a.source.fail(&apperrors.NetworkError{Op: "fetch_all", Err: io.ErrUnexpectedEOF})
	resp, body = a.do(t, http.MethodPost, "/api/employees/reload", "")
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	require.Equal(t, "REMOTE_UNAVAILABLE", errorCode(t, body))

	a.source.fail(nil)
	resp, body = a.do(t, http.MethodPost, "/api/employees/reload", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(1), data(t, body)["count"])

	snap := a.metrics.Snapshot()
	require.Equal(t, int64(1), snap.Errors["/api/employees|POST|REMOTE_REJECTED"])
	require.Equal(t, int64(1), snap.Requests["/api/employees/reload|POST|502"])
}

func TestViewEndpoints(t *testing.T) {
	a := newTestApp(t, 25)

	_, body := a.do(t, http.MethodPut, "/api/view/page", `{"page":3}`)
	require.Equal(t, float64(3), data(t, body)["pagination"].(map[string]any)["page"])

	_, body = a.do(t, http.MethodPut, "/api/view/search", `{"search":"User 1"}`)
	pager := data(t, body)["pagination"].(map[string]any)
	require.Equal(t, float64(2), pager["page"])
	require.Equal(t, float64(11), pager["total_items"])

	_, body = a.do(t, http.MethodPost, "/api/view/prev", "")
	require.Equal(t, float64(1), data(t, body)["pagination"].(map[string]any)["page"])

	_, body = a.do(t, http.MethodPut, "/api/view/search", `{"search":""}`)
	_, body = a.do(t, http.MethodPut, "/api/view/departments", `{"department":"Engineering","selected":true}`)
	view := data(t, body)
	require.Equal(t, []any{"Engineering"}, view["selected_departments"])
	require.Equal(t, float64(5), view["pagination"].(map[string]any)["total_items"])

	_, body = a.do(t, http.MethodPut, "/api/view/departments", `{"departments":[]}`)
	_, body = a.do(t, http.MethodPut, "/api/view/page-size", `{"page_size":5}`)
	pager = data(t, body)["pagination"].(map[string]any)
	require.Equal(t, float64(5), pager["total_pages"])
	require.Len(t, pager["buttons"], 5)

	_, body = a.do(t, http.MethodPost, "/api/view/next", "")
	require.Equal(t, float64(2), data(t, body)["pagination"].(map[string]any)["page"])

	resp, body := a.do(t, http.MethodPut, "/api/view/page-size", `{"page_size":0}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "VALIDATION_FAILED", errorCode(t, body))

	_, body = a.do(t, http.MethodGet, "/api/view", "")
	require.Equal(t, float64(2), data(t, body)["pagination"].(map[string]any)["page"])
}

func TestExport(t *testing.T) {
	a := newTestApp(t, 12)

	resp, _ := a.do(t, http.MethodGet, "/api/export/csv?department=Engineering", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Disposition"), `attachment; filename="employees_`)
	require.Contains(t, resp.Header.Get("Content-Disposition"), `.csv"`)

	req := httptest.NewRequest(http.MethodGet, "/api/export/xlsx", nil)
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Employees")
	require.NoError(t, err)
	require.Len(t, rows, 13)

	resp, body := a.do(t, http.MethodGet, "/api/export/json?search=nobody", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOTHING_TO_EXPORT", errorCode(t, body))

	resp, body = a.do(t, http.MethodGet, "/api/export/pdf", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "VALIDATION_FAILED", errorCode(t, body))
}

func TestUnknownRoute(t *testing.T) {
	a := newTestApp(t, 0)
	resp, body := a.do(t, http.MethodGet, "/api/unknown", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOT_FOUND", errorCode(t, body))
}
