package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/adapters/persistence/repositories"
	"cmms-backend/internal/config"
	"cmms-backend/internal/core/domain"
	"cmms-backend/internal/pkg/jwt"
	"cmms-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret-with-enough-entropy"

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

func testConfig() *config.Config {
	return &config.Config{JWT: config.JWTConfig{Secret: testSecret, AccessTokenMins: 60}}
}

func admin() *domain.Principal { return &domain.Principal{ID: 1, Role: domain.RoleAdmin} }

func workerP(id uint) *domain.Principal { return &domain.Principal{ID: id, Role: domain.RoleWorker} }

func clientP(id uint) *domain.Principal { return &domain.Principal{ID: id, Role: domain.RoleClient} }

type fixture struct {
	db     *gorm.DB
	events *recordingPublisher
	orders *WorkOrderService
	report *ReportService
	req    *WorkRequestService
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	events := &recordingPublisher{}
	orderRepo := repositories.NewWorkOrderRepository(db)
	return &fixture{
		db:     db,
		events: events,
		orders: NewWorkOrderService(orderRepo, events),
		report: NewReportService(repositories.NewReportRepository(db), orderRepo, events),
		req:    NewWorkRequestService(repositories.NewWorkRequestRepository(db), events),
	}
}

func (f *fixture) status(t *testing.T, id uint) string {
	var o models.WorkOrder
	require.NoError(t, f.db.Omit("images").First(&o, id).Error)
	return o.Status
}

// ============================================================
// Auth
// ============================================================

func TestAuthenticateResolutionOrder(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.Admin(t, db, "shared@example.com", "adminpass")
	w := testutil.Worker(t, db, "Wendy", "shared@example.com", "workerpass")
	testutil.Client(t, db, "Carl", "carl@example.com", "clientpass")

	svc := NewAuthService(repositories.NewIdentityRepository(db), testConfig())
	ctx := context.Background()

	res, err := svc.Authenticate(ctx, "shared@example.com", "adminpass")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, res.Role)

	res, err = svc.Authenticate(ctx, "shared@example.com", "workerpass")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleWorker, res.Role)

	claims, err := jwt.ValidateAccessToken(res.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, w.ID, claims.ID)
	assert.Equal(t, "worker", claims.Role)

	res, err = svc.Authenticate(ctx, " CARL@example.com ", "clientpass")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, res.Role)
}

func TestAuthenticateDoesNotRevealWhichFieldWasWrong(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.Worker(t, db, "Wendy", "wendy@example.com", "workerpass")
	svc := NewAuthService(repositories.NewIdentityRepository(db), testConfig())
	ctx := context.Background()

	_, errWrongPass := svc.Authenticate(ctx, "wendy@example.com", "nope-nope")
	_, errUnknown := svc.Authenticate(ctx, "ghost@example.com", "workerpass")
	_, errEmpty := svc.Authenticate(ctx, "", "")

	assert.Equal(t, domain.ErrInvalidCredentials, errWrongPass)
	assert.Equal(t, domain.ErrInvalidCredentials, errUnknown)
	assert.Equal(t, domain.ErrInvalidCredentials, errEmpty)
}

func TestAuthorize(t *testing.T) {
	svc := NewAuthService(nil, testConfig())

	token, err := jwt.GenerateAccessToken(7, "w@example.com", "worker", testSecret, time.Hour)
	require.NoError(t, err)

	p, err := svc.Authorize("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, &domain.Principal{ID: 7, Email: "w@example.com", Role: domain.RoleWorker}, p)

	_, err = svc.Authorize("")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = svc.Authorize(token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = svc.Authorize("Bearer ")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	other, err := jwt.GenerateAccessToken(7, "w@example.com", "worker", "another-secret", time.Hour)
	require.NoError(t, err)
	_, err = svc.Authorize("Bearer " + other)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	expired, err := jwt.GenerateAccessToken(7, "w@example.com", "worker", testSecret, -time.Minute)
	require.NoError(t, err)
	_, err = svc.Authorize("Bearer " + expired)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	rogue, err := jwt.GenerateAccessToken(7, "w@example.com", "superuser", testSecret, time.Hour)
	require.NoError(t, err)
	_, err = svc.Authorize("Bearer " + rogue)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ============================================================
// Users
// ============================================================

func TestRegisterWorkerEnforcesEmailAcrossTables(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.Client(t, db, "Carl", "carl@example.com", "clientpass")
	svc := NewUserService(
		repositories.NewIdentityRepository(db),
		repositories.NewWorkerRepository(db),
		repositories.NewClientRepository(db),
	)
	ctx := context.Background()

	_, err := svc.RegisterWorker(ctx, admin(), &RegisterInput{Name: "Dup", Email: "Carl@example.com", Password: "longenough"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)

	_, err = svc.RegisterWorker(ctx, workerP(3), &RegisterInput{Name: "W", Email: "w@example.com", Password: "longenough"})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	_, err = svc.RegisterWorker(ctx, admin(), &RegisterInput{Name: "W", Email: "w@example.com", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.RegisterWorker(ctx, admin(), &RegisterInput{Email: "w@example.com", Password: "longenough"})
	assert.ErrorIs(t, err, domain.ErrMissingField)

	w, err := svc.RegisterWorker(ctx, admin(), &RegisterInput{Name: "Wendy", Email: "wendy@example.com", Password: "longenough", Role: "electrician", Image: []byte{1, 2}})
	require.NoError(t, err)
	assert.NotEqual(t, "longenough", w.Password)

	auth := NewAuthService(repositories.NewIdentityRepository(db), testConfig())
	res, err := auth.Authenticate(ctx, "wendy@example.com", "longenough")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleWorker, res.Role)

	workers, err := svc.ListWorkers(ctx, admin())
	require.NoError(t, err)
	require.Len(t, workers, 1)
	assert.Equal(t, []byte{1, 2}, workers[0].Image)

	_, err = svc.ListWorkers(ctx, clientP(1))
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	cards, err := svc.ListWorkerDirectory(ctx, clientP(1))
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Wendy", cards[0].Name)
	assert.Equal(t, []byte{1, 2}, cards[0].Image)
}

func TestDeleteWorkerRemovesOrdersAndReports(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := testutil.Worker(t, f.db, "Wendy", "wendy@example.com", "workerpass")
	a := testutil.Asset(t, f.db, "Pump", "operational")
	o := testutil.WorkOrder(t, f.db, w.ID, a.ID, testutil.Date(2024, 5, 1))
	_, err := f.report.CreateReport(ctx, workerP(w.ID), &CreateReportInput{WorkOrderID: o.ID, Answers: []string{"done"}})
	require.NoError(t, err)

	users := NewUserService(
		repositories.NewIdentityRepository(f.db),
		repositories.NewWorkerRepository(f.db),
		repositories.NewClientRepository(f.db),
	)
	require.NoError(t, users.DeleteWorker(ctx, admin(), w.ID))
	assert.ErrorIs(t, users.DeleteWorker(ctx, admin(), w.ID), domain.ErrNotFound)

	var orders, reports int64
	f.db.Model(&models.WorkOrder{}).Count(&orders)
	f.db.Model(&models.Report{}).Count(&reports)
	assert.Zero(t, orders)
	assert.Zero(t, reports)
}

// ============================================================
// Assets
// ============================================================

func TestAssetService(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := NewAssetService(repositories.NewAssetRepository(db))

	_, err := svc.CreateAsset(ctx, admin(), "Pump", "", nil)
	assert.ErrorIs(t, err, domain.ErrMissingField)
	_, err = svc.CreateAsset(ctx, clientP(2), "Pump", "operational", nil)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	a, err := svc.CreateAsset(ctx, admin(), " Pump ", "operational", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "Pump", a.Name)

	require.NoError(t, svc.UpdateAssetStatus(ctx, admin(), a.ID, "faulty"))
	assert.ErrorIs(t, svc.UpdateAssetStatus(ctx, admin(), 999, "faulty"), domain.ErrNotFound)
	assert.ErrorIs(t, svc.UpdateAssetStatus(ctx, admin(), a.ID, " "), domain.ErrMissingField)

	assets, err := svc.ListAssets(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "faulty", assets[0].Status)

	require.NoError(t, svc.DeleteAsset(ctx, admin(), a.ID))
	assert.ErrorIs(t, svc.DeleteAsset(ctx, admin(), a.ID), domain.ErrNotFound)
}

// ============================================================
// Work requests
// ============================================================

func TestCreateWorkRequestUsesPrincipal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := testutil.Client(t, f.db, "Carl", "carl@example.com", "clientpass")
	other := testutil.Client(t, f.db, "Cleo", "cleo@example.com", "clientpass")
	a := testutil.Asset(t, f.db, "Chiller", "faulty")

	_, err := f.req.CreateWorkRequest(ctx, clientP(c.ID), &CreateWorkRequestInput{AssetID: a.ID, DateOfFault: "03/01/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.req.CreateWorkRequest(ctx, clientP(c.ID), &CreateWorkRequestInput{AssetID: 999})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.req.CreateWorkRequest(ctx, admin(), &CreateWorkRequestInput{AssetID: a.ID})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	r, err := f.req.CreateWorkRequest(ctx, clientP(c.ID), &CreateWorkRequestInput{
		Site: "Roof", AssetID: a.ID, DateOfFault: "2024-03-01", Description: "No cooling",
	})
	require.NoError(t, err)
	assert.Equal(t, c.ID, r.ClientID)
	assert.Equal(t, []string{domain.EventWorkRequestCreated}, f.events.types())

	mine, err := f.req.ListMyWorkRequests(ctx, clientP(other.ID))
	require.NoError(t, err)
	assert.Empty(t, mine)

	all, err := f.req.ListWorkRequests(ctx, admin())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Carl", all[0].ClientName)
	assert.Equal(t, "Chiller", all[0].AssetName)
	assert.Equal(t, "2024-03-01", all[0].DateOfFault)

	undated, err := f.req.CreateWorkRequest(ctx, clientP(other.ID), &CreateWorkRequestInput{AssetID: a.ID})
	require.NoError(t, err)
	assert.Nil(t, undated.DateOfFault)

	require.NoError(t, f.req.DeleteWorkRequest(ctx, admin(), r.ID))
	assert.ErrorIs(t, f.req.DeleteWorkRequest(ctx, admin(), r.ID), domain.ErrNotFound)
}

// ============================================================
// Work orders
// ============================================================

func TestCreateWorkOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := testutil.Worker(t, f.db, "Wendy", "wendy@example.com", "workerpass")
	c := testutil.Client(t, f.db, "Carl", "carl@example.com", "clientpass")
	a := testutil.Asset(t, f.db, "Pump", "faulty")
	req := testutil.WorkRequest(t, f.db, c.ID, a.ID)

	_, err := f.orders.CreateWorkOrder(ctx, admin(), &CreateWorkOrderInput{AssetID: a.ID})
	assert.ErrorIs(t, err, domain.ErrMissingField)
	_, err = f.orders.CreateWorkOrder(ctx, admin(), &CreateWorkOrderInput{WorkerID: 999, AssetID: a.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.orders.CreateWorkOrder(ctx, admin(), &CreateWorkOrderInput{WorkerID: w.ID, AssetID: a.ID, StartDate: "2024-05-10", EndDate: "2024-05-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.orders.CreateWorkOrder(ctx, workerP(w.ID), &CreateWorkOrderInput{WorkerID: w.ID, AssetID: a.ID})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	o, err := f.orders.CreateWorkOrder(ctx, admin(), &CreateWorkOrderInput{
		WorkerID:      w.ID,
		AssetID:       a.ID,
		WorkRequestID: &req.ID,
		Name:          "Replace seal",
		StartDate:     "2024-05-01",
		EndDate:       "2024-05-03",
		Images:        [][]byte{[]byte("a")},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.WorkOrderOpen, o.Status)
	assert.Equal(t, []string{domain.EventWorkOrderCreated}, f.events.types())

	var left int64
	f.db.Model(&models.WorkRequest{}).Count(&left)
	assert.Zero(t, left)

	got, err := f.orders.GetWorkOrder(ctx, workerP(w.ID), o.ID)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("a")}, got.Images)
	_, err = f.orders.GetWorkOrder(ctx, workerP(w.ID+100), o.ID)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestUpdateStatusOwnershipAndTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := testutil.Worker(t, f.db, "Wendy", "wendy@example.com", "workerpass")
	other := testutil.Worker(t, f.db, "Walt", "walt@example.com", "workerpass")
	a := testutil.Asset(t, f.db, "Pump", "faulty")
	o := testutil.WorkOrder(t, f.db, w.ID, a.ID, testutil.Date(2024, 5, 1))

	_, err := f.orders.UpdateStatus(ctx, workerP(other.ID), o.ID, "in_progress")
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	assert.Equal(t, "open", f.status(t, o.ID))

	_, err = f.orders.UpdateStatus(ctx, clientP(1), o.ID, "in_progress")
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	_, err = f.orders.UpdateStatus(ctx, workerP(w.ID), 999, "in_progress")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.orders.UpdateStatus(ctx, workerP(w.ID), o.ID, "")
	assert.ErrorIs(t, err, domain.ErrMissingField)

	updated, err := f.orders.UpdateStatus(ctx, workerP(w.ID), o.ID, "in_progress")
	require.NoError(t, err)
	assert.Equal(t, "in_progress", updated.Status)

	_, err = f.orders.UpdateStatus(ctx, admin(), o.ID, domain.WorkOrderClosed)
	require.NoError(t, err)

	_, err = f.orders.UpdateStatus(ctx, admin(), o.ID, domain.WorkOrderOpen)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.WorkOrderClosed, f.status(t, o.ID))

	assert.Equal(t, []string{domain.EventWorkOrderStatusChanged, domain.EventWorkOrderStatusChanged}, f.events.types())
}

func TestListMineIsScopedToPrincipal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w1 := testutil.Worker(t, f.db, "Wendy", "wendy@example.com", "workerpass")
	w2 := testutil.Worker(t, f.db, "Walt", "walt@example.com", "workerpass")
	a := testutil.Asset(t, f.db, "Pump", "faulty")
	testutil.WorkOrder(t, f.db, w1.ID, a.ID, testutil.Date(2024, 5, 1))
	testutil.WorkOrder(t, f.db, w1.ID, a.ID, testutil.Date(2024, 6, 1))
	testutil.WorkOrder(t, f.db, w2.ID, a.ID, testutil.Date(2024, 7, 1))

	mine, err := f.orders.ListMine(ctx, workerP(w1.ID))
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, o := range mine {
		assert.Equal(t, w1.ID, o.WorkerID)
	}

	_, err = f.orders.ListMine(ctx, admin())
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	all, err := f.orders.ListAll(ctx, admin())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.NotEmpty(t, all[0].AssignedTo)
	assert.Equal(t, "Pump", all[0].AssetName)
}

// ============================================================
// Reports
// ============================================================

func TestCreateReportClosesOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := testutil.Worker(t, f.db, "Wendy", "wendy@example.com", "workerpass")
	a := testutil.Asset(t, f.db, "Pump", "faulty")
	o := testutil.WorkOrder(t, f.db, w.ID, a.ID, testutil.Date(2024, 5, 1))

	answers := []string{"a1", "a2", "a3", "a4", "a5", "a6"}
	r, err := f.report.CreateReport(ctx, workerP(w.ID), &CreateReportInput{WorkOrderID: o.ID, Answers: answers, Pictures: [][]byte{[]byte("p")}})
	require.NoError(t, err)
	assert.Equal(t, domain.WorkOrderClosed, f.status(t, o.ID))
	assert.Equal(t, []string{domain.EventWorkOrderClosed}, f.events.types())

	_, err = f.report.CreateReport(ctx, workerP(w.ID), &CreateReportInput{WorkOrderID: o.ID, Answers: answers})
	assert.ErrorIs(t, err, domain.ErrAlreadyReported)

	got, err := f.report.GetByWorkOrder(ctx, workerP(w.ID), o.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, answers, got.Answers())
	assert.Equal(t, "Wendy", got.ToResponse().WorkerName)
}

func TestCreateReportRejectsForeignOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := testutil.Worker(t, f.db, "Wendy", "wendy@example.com", "workerpass")
	intruder := testutil.Worker(t, f.db, "Walt", "walt@example.com", "workerpass")
	a := testutil.Asset(t, f.db, "Pump", "faulty")
	o := testutil.WorkOrder(t, f.db, w.ID, a.ID, testutil.Date(2024, 5, 1))

	_, err := f.report.CreateReport(ctx, workerP(intruder.ID), &CreateReportInput{WorkOrderID: o.ID})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	assert.Equal(t, domain.WorkOrderOpen, f.status(t, o.ID))

	var reports int64
	f.db.Model(&models.Report{}).Count(&reports)
	assert.Zero(t, reports)

	_, err = f.report.CreateReport(ctx, workerP(w.ID), &CreateReportInput{WorkOrderID: 999})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.report.CreateReport(ctx, workerP(w.ID), &CreateReportInput{WorkOrderID: o.ID, Answers: make([]string, 7)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.report.GetByWorkOrder(ctx, workerP(intruder.ID), o.ID)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	_, err = f.report.GetByWorkOrder(ctx, admin(), o.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.events.types())
}

func TestEventFailureDoesNotFailWrite(t *testing.T) {
	f := newFixture(t)
	f.events.err = errors.New("broker down")
	ctx := context.Background()
	w := testutil.Worker(t, f.db, "Wendy", "wendy@example.com", "workerpass")
	a := testutil.Asset(t, f.db, "Pump", "faulty")

	o, err := f.orders.CreateWorkOrder(ctx, admin(), &CreateWorkOrderInput{WorkerID: w.ID, AssetID: a.ID})
	require.NoError(t, err)
	assert.NotZero(t, o.ID)
	assert.Len(t, f.events.types(), 1)
}

// ============================================================
// Overdue scan
// ============================================================

func TestOverdueScan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := testutil.Worker(t, f.db, "Wendy", "wendy@example.com", "workerpass")
	a := testutil.Asset(t, f.db, "Pump", "faulty")
	late := testutil.WorkOrder(t, f.db, w.ID, a.ID, testutil.Date(2024, 5, 1))
	testutil.WorkOrder(t, f.db, w.ID, a.ID, testutil.Date(2024, 7, 1))
	done := testutil.WorkOrder(t, f.db, w.ID, a.ID, testutil.Date(2024, 4, 1))
	require.NoError(t, f.db.Model(done).Update("status", domain.WorkOrderClosed).Error)

	svc := NewOverdueService(repositories.NewWorkOrderRepository(f.db), f.events)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC) }

	found, err := svc.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, late.ID, found[0].ID)
	assert.Equal(t, []string{domain.EventWorkOrderOverdue}, f.events.types())
	assert.Equal(t, domain.WorkOrderOpen, f.status(t, late.ID))
}

func TestOverdueScanSkipsOrdersWithoutEndDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := testutil.Worker(t, f.db, "Wendy", "wendy@example.com", "workerpass")
	a := testutil.Asset(t, f.db, "Pump", "faulty")

	o, err := f.orders.CreateWorkOrder(ctx, admin(), &CreateWorkOrderInput{WorkerID: w.ID, AssetID: a.ID, Name: "Someday"})
	require.NoError(t, err)
	assert.Nil(t, o.StartDate)
	assert.Nil(t, o.EndDate)

	all, err := f.orders.ListAll(ctx, admin())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].EndDate)

	svc := NewOverdueService(repositories.NewWorkOrderRepository(f.db), f.events)
	found, err := svc.Scan(ctx)
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.Equal(t, []string{domain.EventWorkOrderCreated}, f.events.types())
}

func TestOverdueStartRejectsBadSpec(t *testing.T) {
	svc := NewOverdueService(nil, NopPublisher{})
	assert.Error(t, svc.Start("not a spec"))
}

// ============================================================
// Async event delivery
// ============================================================

// stalledPublisher holds every send until released or timed out
type stalledPublisher struct {
	recordingPublisher
	release chan struct{}
}

func (p *stalledPublisher) Publish(ctx context.Context, e domain.Event) error {
	select {
	case <-p.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return p.recordingPublisher.Publish(ctx, e)
}

func TestAsyncPublisherDoesNotHoldUpWrites(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	w := testutil.Worker(t, db, "Wendy", "wendy@example.com", "workerpass")
	a := testutil.Asset(t, db, "Pump", "faulty")

	broker := &stalledPublisher{release: make(chan struct{})}
	events := NewAsyncPublisher(broker, 8, time.Minute)
	orders := NewWorkOrderService(repositories.NewWorkOrderRepository(db), events)

	start := time.Now()
	o, err := orders.CreateWorkOrder(ctx, admin(), &CreateWorkOrderInput{WorkerID: w.ID, AssetID: a.ID, Name: "Replace seal"})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.NotZero(t, o.ID)
	assert.Empty(t, broker.types())

	close(broker.release)
	events.Close()
	assert.Equal(t, []string{domain.EventWorkOrderCreated}, broker.types())
}

func TestAsyncPublisherTimesOutStalledSends(t *testing.T) {
	broker := &stalledPublisher{release: make(chan struct{})}
	events := NewAsyncPublisher(broker, 8, 50*time.Millisecond)

	require.NoError(t, events.Publish(context.Background(), newEvent(domain.EventWorkOrderCreated, nil)))
	require.NoError(t, events.Publish(context.Background(), newEvent(domain.EventWorkOrderClosed, nil)))

	start := time.Now()
	events.Close()
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Empty(t, broker.types())

	err := events.Publish(context.Background(), newEvent(domain.EventWorkOrderOverdue, nil))
	assert.ErrorIs(t, err, ErrPublisherClosed)
	events.Close()
}
