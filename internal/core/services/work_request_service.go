package services

import (
	"context"
	"fmt"
	"strings"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/adapters/persistence/repositories"
	"cmms-backend/internal/core/domain"
)

// WorkRequestService handles client fault intake
type WorkRequestService struct {
	requestRepo repositories.WorkRequestRepository
	events      EventPublisher
}

// NewWorkRequestService creates a new work request service
func NewWorkRequestService(requestRepo repositories.WorkRequestRepository, events EventPublisher) *WorkRequestService {
	return &WorkRequestService{requestRepo: requestRepo, events: events}
}

// CreateWorkRequestInput represents a client fault report
type CreateWorkRequestInput struct {
	Site        string
	AssetID     uint
	DateOfFault string
	Description string
}

// CreateWorkRequest records a fault report for the calling client
func (s *WorkRequestService) CreateWorkRequest(ctx context.Context, actor *domain.Principal, in *CreateWorkRequestInput) (*models.WorkRequest, error) {
	if err := actor.Require(domain.RoleClient); err != nil {
		return nil, err
	}
	if in.AssetID == 0 {
		return nil, fmt.Errorf("%w: asset_id", domain.ErrMissingField)
	}

	faultDate, err := parseDate("date_of_fault", in.DateOfFault)
	if err != nil {
		return nil, err
	}

	req := &models.WorkRequest{
		ClientID:    actor.ID,
		Site:        strings.TrimSpace(in.Site),
		AssetID:     in.AssetID,
		DateOfFault: faultDate,
		Description: strings.TrimSpace(in.Description),
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	publish(ctx, s.events, domain.EventWorkRequestCreated, map[string]any{
		"work_request_id": req.ID,
		"client_id":       req.ClientID,
		"asset_id":        req.AssetID,
	})
	return req, nil
}

// ListWorkRequests lists all requests with client and asset names
func (s *WorkRequestService) ListWorkRequests(ctx context.Context, actor *domain.Principal) ([]*models.WorkRequestView, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	reqs, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toRequestViews(reqs), nil
}

// ListMyWorkRequests lists the calling client's own requests
func (s *WorkRequestService) ListMyWorkRequests(ctx context.Context, actor *domain.Principal) ([]*models.WorkRequestView, error) {
	if err := actor.Require(domain.RoleClient); err != nil {
		return nil, err
	}
	reqs, err := s.requestRepo.ListByClient(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return toRequestViews(reqs), nil
}

// DeleteWorkRequest removes a request
func (s *WorkRequestService) DeleteWorkRequest(ctx context.Context, actor *domain.Principal, id uint) error {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return err
	}
	return s.requestRepo.Delete(ctx, id)
}

func toRequestViews(reqs []*models.WorkRequest) []*models.WorkRequestView {
	out := make([]*models.WorkRequestView, len(reqs))
	for i, r := range reqs {
		out[i] = r.ToView()
	}
	return out
}
