package repositories

import (
	"context"
	"time"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/core/domain"
)

// Identity is a row from one of the three identity tables
type Identity struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	Role         domain.Role
}

// OrderCheck inspects a locked work order inside a transaction.
// A non-nil error aborts the transaction and is returned to the caller.
type OrderCheck func(order *models.WorkOrder) error

// IdentityRepository probes the administrator, worker and client tables
type IdentityRepository interface {
	FindByEmail(ctx context.Context, role domain.Role, email string) (*Identity, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	CreateAdministrator(ctx context.Context, admin *models.Administrator) error
}

// WorkerRepository defines worker repository interface
type WorkerRepository interface {
	Create(ctx context.Context, worker *models.Worker) error
	GetByID(ctx context.Context, id uint) (*models.Worker, error)
	List(ctx context.Context) ([]*models.Worker, error)
	DeleteCascade(ctx context.Context, id uint) error
}

// ClientRepository defines client repository interface
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id uint) (*models.Client, error)
	List(ctx context.Context) ([]*models.Client, error)
	DeleteCascade(ctx context.Context, id uint) error
}

// AssetRepository defines asset repository interface
type AssetRepository interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetByID(ctx context.Context, id uint) (*models.Asset, error)
	List(ctx context.Context) ([]*models.Asset, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

// WorkRequestRepository defines work request repository interface
type WorkRequestRepository interface {
	Create(ctx context.Context, req *models.WorkRequest) error
	List(ctx context.Context) ([]*models.WorkRequest, error)
	ListByClient(ctx context.Context, clientID uint) ([]*models.WorkRequest, error)
	Delete(ctx context.Context, id uint) error
}

// WorkOrderRepository defines work order repository interface
type WorkOrderRepository interface {
	Create(ctx context.Context, order *models.WorkOrder, consumeRequestID *uint) error
	GetByID(ctx context.Context, id uint) (*models.WorkOrder, error)
	ListByWorker(ctx context.Context, workerID uint) ([]*models.WorkOrder, error)
	ListAll(ctx context.Context) ([]*models.WorkOrder, error)
	UpdateStatus(ctx context.Context, id uint, status string, check OrderCheck) (*models.WorkOrder, error)
	Delete(ctx context.Context, id uint) error
	ListOverdue(ctx context.Context, before time.Time) ([]*models.WorkOrder, error)
}

// ReportRepository defines report repository interface
type ReportRepository interface {
	CommitReportAndClose(ctx context.Context, report *models.Report, check OrderCheck) error
	GetByWorkOrder(ctx context.Context, workOrderID uint) (*models.Report, error)
}
