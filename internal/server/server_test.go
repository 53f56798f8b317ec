package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"multibranch-backend/internal/auth"
	"multibranch-backend/internal/config"
	"multibranch-backend/internal/models"
	"multibranch-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:   "integration-secret-at-least-32-characters",
		CORSOrigins: "http://localhost:5173",
	}
	app, err := New(cfg, store.NewMemoryKV())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app
}

func do(t *testing.T, app *fiber.App, method, path, token, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func login(t *testing.T, app *fiber.App, user, pass string) auth.SessionResponse {
	t.Helper()
	resp := do(t, app, "POST", "/api/auth/login", "", `{"username":"`+user+`","password":"`+pass+`"}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login %s: status %d", user, resp.StatusCode)
	}
	return decode[auth.SessionResponse](t, resp)
}

func TestLoginAndNavigation(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "POST", "/api/auth/login", "", `{"username":"admin","password":"nope"}`)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	body := decode[map[string]string](t, resp)
	if body["error"] != auth.MsgInvalidCredentials {
		t.Fatalf("unexpected error body %v", body)
	}

	admin := login(t, app, "admin", "admin123")
	if admin.ActiveTab != auth.TabAnalytics || len(admin.Tabs) != 5 {
		t.Fatalf("unexpected admin session %+v", admin)
	}

	resp = do(t, app, "PUT", "/api/session/tab", admin.Token, `{"tab":"payroll"}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("set tab: %d", resp.StatusCode)
	}
	me := decode[auth.SessionResponse](t, do(t, app, "GET", "/api/auth/me", admin.Token, ""))
	if me.ActiveTab != auth.TabPayroll {
		t.Fatalf("tab not restored, got %s", me.ActiveTab)
	}

	resp = do(t, app, "POST", "/api/auth/logout", admin.Token, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("logout: %d", resp.StatusCode)
	}
	resp = do(t, app, "GET", "/api/branches", admin.Token, "")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("signed-out token must be rejected, got %d", resp.StatusCode)
	}
}

func TestStaffCannotReachAdminScreens(t *testing.T) {
	app := newApp(t)
	staff := login(t, app, "staff", "staff123")

	if resp := do(t, app, "GET", "/api/branches", staff.Token, ""); resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	resp := do(t, app, "GET", "/api/staff/dashboard", staff.Token, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("staff dashboard: %d", resp.StatusCode)
	}
	view := decode[map[string]any](t, resp)
	if wfs, _ := view["workflows"].([]any); len(wfs) != 2 {
		t.Fatalf("expected John's 2 workflows, got %v", view["workflows"])
	}
}

func TestBranchLifecycle(t *testing.T) {
	app := newApp(t)
	token := login(t, app, "admin", "admin123").Token

	resp := do(t, app, "POST", "/api/branches", token, `{"name":"Harbor Branch","location":"1 Pier Rd","manager":"Ann Lee","staff":7,"status":"inactive"}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create: %d", resp.StatusCode)
	}
	created := decode[models.Branch](t, resp)
	if created.Status != models.BranchActive {
		t.Fatalf("created branch must be active, got %s", created.Status)
	}

	resp = do(t, app, "POST", "/api/branches", token, `{"name":"","location":"x","manager":"y"}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", resp.StatusCode)
	}

	list := decode[[]models.Branch](t, do(t, app, "GET", "/api/branches?search=harbor", token, ""))
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("search did not find the new branch: %+v", list)
	}

	if resp := do(t, app, "DELETE", "/api/branches/"+created.ID, token, ""); resp.StatusCode != fiber.StatusPreconditionRequired {
		t.Fatalf("unconfirmed delete must be refused, got %d", resp.StatusCode)
	}
	if resp := do(t, app, "DELETE", "/api/branches/"+created.ID+"?confirm=true", token, ""); resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("confirmed delete: %d", resp.StatusCode)
	}
	if resp := do(t, app, "GET", "/api/branches/"+created.ID, token, ""); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
}

func TestPayrollPreviewAndExport(t *testing.T) {
	app := newApp(t)
	token := login(t, app, "admin", "admin123").Token

	resp := do(t, app, "POST", "/api/payroll/preview", token, `{"base_salary":100,"allowances":0,"deductions":250}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("preview: %d", resp.StatusCode)
	}
	preview := decode[map[string]string](t, resp)
	if preview["net_salary"] != "-150" {
		t.Fatalf("expected -150, got %v", preview)
	}

	resp = do(t, app, "GET", "/api/payroll/export", token, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("export: %d", resp.StatusCode)
	}
	defer resp.Body.Close()
	f, err := excelize.OpenReader(resp.Body)
	if err != nil {
		t.Fatalf("export is not a workbook: %v", err)
	}
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected header, 3 records and totals, got %d rows", len(rows))
	}
}

func TestAnalytics(t *testing.T) {
	app := newApp(t)
	token := login(t, app, "admin", "admin123").Token
	resp := do(t, app, "GET", "/api/analytics", token, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("analytics: %d", resp.StatusCode)
	}
	overview := decode[map[string]any](t, resp)
	counters, _ := overview["counters"].(map[string]any)
	if counters["total_branches"] != float64(4) {
		t.Fatalf("unexpected counters %v", counters)
	}
}
