package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cmms-backend/internal/adapters/http/middleware"
	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/config"
	"cmms-backend/internal/core/domain"
	"cmms-backend/internal/pkg/response"
	"cmms-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type server struct {
	t   *testing.T
	app *fiber.App
	db  *gorm.DB
}

func newServer(t *testing.T) *server {
	db := testutil.NewDB(t)
	cfg := &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: "routes-test-secret", AccessTokenMins: 60},
		Upload:  config.UploadConfig{MaxFiles: 10, BodyLimitMB: 32},
	}
	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	Setup(app, db, cfg, Options{})
	return &server{t: t, app: app, db: db}
}

func (s *server) do(req *http.Request, token string) (int, response.Response) {
	s.t.Helper()
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	var body response.Response
	_ = json.Unmarshal(raw, &body)
	return resp.StatusCode, body
}

func (s *server) json(method, path, token string, payload any) (int, response.Response) {
	s.t.Helper()
	var buf bytes.Buffer
	if payload != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return s.do(req, token)
}

func (s *server) form(path, token string, fields map[string]string, fileField string, files int) (int, response.Response) {
	s.t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(s.t, w.WriteField(k, v))
	}
	for i := 0; i < files; i++ {
		part, err := w.CreateFormFile(fileField, fmt.Sprintf("f%d.png", i))
		require.NoError(s.t, err)
		_, _ = part.Write([]byte(fmt.Sprintf("bytes-%d", i)))
	}
	require.NoError(s.t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, path, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return s.do(req, token)
}

func (s *server) login(email, password string) string {
	s.t.Helper()
	status, body := s.json(fiber.MethodPost, "/login", "", map[string]string{"email": email, "password": password})
	require.Equal(s.t, fiber.StatusOK, status, body.Error)
	data := body.Data.(map[string]any)
	return data["token"].(string)
}

func TestHealth(t *testing.T) {
	s := newServer(t)
	status, _ := s.do(httptest.NewRequest(fiber.MethodGet, "/health", nil), "")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestLoginFailures(t *testing.T) {
	s := newServer(t)
	testutil.Worker(t, s.db, "Wendy", "wendy@example.com", "workerpass")

	status, body := s.json(fiber.MethodPost, "/login", "", map[string]string{"email": "wendy@example.com", "password": "wrong-pass"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, response.CodeInvalidLogin, body.Code)

	status, body = s.json(fiber.MethodPost, "/login", "", map[string]string{"email": "ghost@example.com", "password": "workerpass"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, response.CodeInvalidLogin, body.Code)
}

func TestGateDistinguishesMissingBadAndUnauthorized(t *testing.T) {
	s := newServer(t)
	testutil.Client(t, s.db, "Carl", "carl@example.com", "clientpass")
	clientToken := s.login("carl@example.com", "clientpass")

	status, body := s.json(fiber.MethodGet, "/allWorkOrders", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, response.CodeUnauthenticated, body.Code)

	status, body = s.json(fiber.MethodGet, "/allWorkOrders", "not-a-token", nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, response.CodeForbidden, body.Code)

	status, body = s.json(fiber.MethodGet, "/allWorkOrders", clientToken, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, response.CodeNotAuthorized, body.Code)

	status, _ = s.json(fiber.MethodGet, "/assets", clientToken, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestWorkOrderLifecycleOverHTTP(t *testing.T) {
	s := newServer(t)
	testutil.Admin(t, s.db, "boss@example.com", "adminpass")
	c := testutil.Client(t, s.db, "Carl", "carl@example.com", "clientpass")
	adminToken := s.login("boss@example.com", "adminpass")
	clientToken := s.login("carl@example.com", "clientpass")

	// Admin registers a worker and an asset
	status, body := s.form("/registerWorker", adminToken, map[string]string{
		"name": "Wendy", "email": "wendy@example.com", "password": "workerpass", "role": "electrician",
	}, "image", 1)
	require.Equal(t, fiber.StatusOK, status, body.Error)
	workerID := uint(body.Data.(map[string]any)["id"].(float64))

	status, body = s.form("/registerClient", adminToken, map[string]string{
		"name": "Dup", "email": "wendy@example.com", "password": "whatever1",
	}, "", 0)
	assert.Equal(t, fiber.StatusConflict, status)

	status, body = s.form("/createAsset", adminToken, map[string]string{"name": "Pump", "status": "faulty"}, "image", 1)
	require.Equal(t, fiber.StatusOK, status, body.Error)
	assetID := uint(body.Data.(map[string]any)["id"].(float64))

	// Client files a request; client_id in the body is ignored
	status, body = s.json(fiber.MethodPost, "/createWorkRequest", clientToken, map[string]any{
		"client_id": 999, "site": "Basement", "asset_id": assetID, "date_of_fault": "2024-03-01", "description": "Leak",
	})
	require.Equal(t, fiber.StatusOK, status, body.Error)
	assert.EqualValues(t, c.ID, body.Data.(map[string]any)["client_id"])
	requestID := uint(body.Data.(map[string]any)["id"].(float64))

	// Admin turns it into a work order with images
	status, body = s.form("/createWorkOrder", adminToken, map[string]string{
		"worker_id":       fmt.Sprint(workerID),
		"asset_id":        fmt.Sprint(assetID),
		"work_request_id": fmt.Sprint(requestID),
		"name":            "Fix leak",
		"start_date":      "2024-03-02",
		"end_date":        "2024-03-05",
	}, "images", 3)
	require.Equal(t, fiber.StatusOK, status, body.Error)
	orderID := uint(body.Data.(map[string]any)["id"].(float64))
	assert.Equal(t, domain.WorkOrderOpen, body.Data.(map[string]any)["status"])

	status, _ = s.json(fiber.MethodGet, "/workRequests", adminToken, nil)
	assert.Equal(t, fiber.StatusOK, status)
	var left int64
	s.db.Model(&models.WorkRequest{}).Count(&left)
	assert.Zero(t, left)

	workerToken := s.login("wendy@example.com", "workerpass")

	// Any signed-in caller can browse the worker directory, without emails
	status, body = s.json(fiber.MethodGet, "/workers", clientToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	cards := body.Data.([]any)
	require.Len(t, cards, 1)
	assert.Equal(t, "Wendy", cards[0].(map[string]any)["name"])
	assert.NotContains(t, cards[0].(map[string]any), "email")
	status, _ = s.json(fiber.MethodGet, "/allWorkers", clientToken, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	status, _ = s.json(fiber.MethodGet, "/workers", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	// Worker sees the order with its images
	status, body = s.json(fiber.MethodGet, fmt.Sprintf("/workOrder/%d", orderID), workerToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body.Data.(map[string]any)["images"], 3)

	status, body = s.json(fiber.MethodGet, "/workerOrders", workerToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body.Data, 1)

	status, _ = s.json(fiber.MethodPut, fmt.Sprintf("/updateWorkOrderStatus/%d", orderID), workerToken, map[string]string{"status": "in_progress"})
	assert.Equal(t, fiber.StatusOK, status)

	// Worker files the report, which closes the order
	status, body = s.form("/createReport", workerToken, map[string]string{
		"work_order_id": fmt.Sprint(orderID), "answer_1": "Replaced seal", "answer_6": "No further action",
	}, "pictures", 2)
	require.Equal(t, fiber.StatusOK, status, body.Error)

	status, body = s.form("/createReport", workerToken, map[string]string{"work_order_id": fmt.Sprint(orderID)}, "", 0)
	assert.Equal(t, fiber.StatusConflict, status)

	status, body = s.json(fiber.MethodGet, "/allWorkOrders", adminToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	rows := body.Data.([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, domain.WorkOrderClosed, row["status"])
	assert.Equal(t, "Wendy", row["assigned_to"])
	assert.Equal(t, "2024-03-05", row["end_date"])

	status, body = s.json(fiber.MethodGet, fmt.Sprintf("/report/%d", orderID), adminToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	report := body.Data.(map[string]any)
	assert.Equal(t, "Wendy", report["worker_name"])
	assert.Len(t, report["pictures"], 2)

	// The asset is still referenced
	status, body = s.json(fiber.MethodDelete, fmt.Sprintf("/deleteAsset/%d", assetID), adminToken, nil)
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = s.json(fiber.MethodDelete, fmt.Sprintf("/deleteWorker/%d", workerID), adminToken, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = s.json(fiber.MethodDelete, fmt.Sprintf("/deleteAsset/%d", assetID), adminToken, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestUploadLimit(t *testing.T) {
	s := newServer(t)
	testutil.Admin(t, s.db, "boss@example.com", "adminpass")
	w := testutil.Worker(t, s.db, "Wendy", "wendy@example.com", "workerpass")
	a := testutil.Asset(t, s.db, "Pump", "faulty")
	adminToken := s.login("boss@example.com", "adminpass")

	status, body := s.form("/createWorkOrder", adminToken, map[string]string{
		"worker_id": fmt.Sprint(w.ID), "asset_id": fmt.Sprint(a.ID),
	}, "images", 11)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.True(t, strings.Contains(body.Error, "at most 10"))
}

func TestForeignWorkerCannotTouchOrder(t *testing.T) {
	s := newServer(t)
	owner := testutil.Worker(t, s.db, "Wendy", "wendy@example.com", "workerpass")
	testutil.Worker(t, s.db, "Walt", "walt@example.com", "workerpass")
	a := testutil.Asset(t, s.db, "Pump", "faulty")
	o := testutil.WorkOrder(t, s.db, owner.ID, a.ID, testutil.Date(2024, 5, 1))
	intruder := s.login("walt@example.com", "workerpass")

	status, body := s.json(fiber.MethodPut, fmt.Sprintf("/updateWorkOrderStatus/%d", o.ID), intruder, map[string]string{"status": "done"})
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, response.CodeNotAuthorized, body.Code)

	status, _ = s.form("/createReport", intruder, map[string]string{"work_order_id": fmt.Sprint(o.ID)}, "", 0)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = s.json(fiber.MethodGet, "/workOrder/abc", intruder, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
