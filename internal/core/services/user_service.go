package services

import (
	"context"
	"fmt"
	"strings"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/adapters/persistence/repositories"
	"cmms-backend/internal/core/domain"
	"cmms-backend/internal/pkg/password"

	"github.com/gofiber/fiber/v2/log"
)

// UserService manages worker and client identity records (admin only)
type UserService struct {
	identityRepo repositories.IdentityRepository
	workerRepo   repositories.WorkerRepository
	clientRepo   repositories.ClientRepository
}

// NewUserService creates a new user service
func NewUserService(
	identityRepo repositories.IdentityRepository,
	workerRepo repositories.WorkerRepository,
	clientRepo repositories.ClientRepository,
) *UserService {
	return &UserService{
		identityRepo: identityRepo,
		workerRepo:   workerRepo,
		clientRepo:   clientRepo,
	}
}

// RegisterInput represents worker or client registration input
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // worker trade, ignored for clients
	SSN      string
	Image    []byte
}

func (in *RegisterInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case in.Name == "":
		return fmt.Errorf("%w: name", domain.ErrMissingField)
	case in.Email == "":
		return fmt.Errorf("%w: email", domain.ErrMissingField)
	case in.Password == "":
		return fmt.Errorf("%w: password", domain.ErrMissingField)
	case !password.ValidatePassword(in.Password):
		return fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidInput)
	}
	return nil
}

// RegisterWorker creates a worker account
func (s *UserService) RegisterWorker(ctx context.Context, actor *domain.Principal, in *RegisterInput) (*models.Worker, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}
	if err := ensureEmailFree(ctx, s.identityRepo, in.Email); err != nil {
		return nil, err
	}

	hashed, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	worker := &models.Worker{
		Name:     in.Name,
		Email:    in.Email,
		Password: hashed,
		Role:     strings.TrimSpace(in.Role),
		SSN:      strings.TrimSpace(in.SSN),
		Image:    in.Image,
	}
	if err := s.workerRepo.Create(ctx, worker); err != nil {
		return nil, err
	}

	log.Infof("✅ Worker registered: %s (ID: %d)", worker.Email, worker.ID)
	return worker, nil
}

// ListWorkers lists all workers
func (s *UserService) ListWorkers(ctx context.Context, actor *domain.Principal) ([]*models.WorkerResponse, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.WorkerResponse, len(workers))
	for i, w := range workers {
		out[i] = w.ToResponse()
	}
	return out, nil
}

// ListWorkerDirectory lists worker names and images for any signed-in caller
func (s *UserService) ListWorkerDirectory(ctx context.Context, actor *domain.Principal) ([]*models.WorkerCard, error) {
	if err := actor.Require(domain.RoleAdmin, domain.RoleWorker, domain.RoleClient); err != nil {
		return nil, err
	}
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.WorkerCard, len(workers))
	for i, w := range workers {
		out[i] = &models.WorkerCard{Name: w.Name, Image: w.Image}
	}
	return out, nil
}

// DeleteWorker removes a worker together with its work orders and reports
func (s *UserService) DeleteWorker(ctx context.Context, actor *domain.Principal, id uint) error {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.workerRepo.DeleteCascade(ctx, id); err != nil {
		return err
	}
	log.Infof("🗑️ Worker %d deleted with its work orders", id)
	return nil
}

// RegisterClient creates a client account
func (s *UserService) RegisterClient(ctx context.Context, actor *domain.Principal, in *RegisterInput) (*models.Client, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}
	if err := ensureEmailFree(ctx, s.identityRepo, in.Email); err != nil {
		return nil, err
	}

	hashed, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	client := &models.Client{
		Name:     in.Name,
		Email:    in.Email,
		Password: hashed,
		SSN:      strings.TrimSpace(in.SSN),
		Image:    in.Image,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	log.Infof("✅ Client registered: %s (ID: %d)", client.Email, client.ID)
	return client, nil
}

// ListClients lists all clients
func (s *UserService) ListClients(ctx context.Context, actor *domain.Principal) ([]*models.ClientResponse, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = c.ToResponse()
	}
	return out, nil
}

// DeleteClient removes a client and its work requests
func (s *UserService) DeleteClient(ctx context.Context, actor *domain.Principal, id uint) error {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.clientRepo.DeleteCascade(ctx, id); err != nil {
		return err
	}
	log.Infof("🗑️ Client %d deleted with its work requests", id)
	return nil
}
