package handlers

import (
	"fmt"

	"cmms-backend/internal/adapters/http/middleware"
	"cmms-backend/internal/core/domain"
	"cmms-backend/internal/core/services"
	"cmms-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles worker and client account endpoints (Admin only)
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRequest represents worker or client registration fields
type RegisterRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
	SSN      string `json:"ssn" form:"ssn"`
}

func (h *UserHandler) parseRegister(c *fiber.Ctx) (*services.RegisterInput, error) {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fmt.Errorf("%w: invalid request body", domain.ErrInvalidInput)
	}
	image, err := receiveFile(c, "image")
	if err != nil {
		return nil, err
	}
	return &services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		SSN:      req.SSN,
		Image:    image,
	}, nil
}

// RegisterWorker handles worker registration
// @Summary Register worker
// @Description Create a worker account with an optional profile image
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param role formData string false "Trade"
// @Param ssn formData string false "SSN"
// @Param image formData file false "Profile image"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /registerWorker [post]
func (h *UserHandler) RegisterWorker(c *fiber.Ctx) error {
	input, err := h.parseRegister(c)
	if err != nil {
		return respondError(c, err, "register worker")
	}

	worker, err := h.userService.RegisterWorker(c.Context(), middleware.GetPrincipal(c), input)
	if err != nil {
		return respondError(c, err, "register worker")
	}

	return response.Success(c, "Worker registered successfully", worker.ToResponse())
}

// ListWorkers handles listing all workers
// @Summary List workers
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /allWorkers [get]
func (h *UserHandler) ListWorkers(c *fiber.Ctx) error {
	workers, err := h.userService.ListWorkers(c.Context(), middleware.GetPrincipal(c))
	if err != nil {
		return respondError(c, err, "list workers")
	}
	return response.Success(c, "Workers retrieved successfully", workers)
}

// ListWorkerDirectory handles the worker directory
// @Summary Worker directory
// @Description Names and images of all workers
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /workers [get]
func (h *UserHandler) ListWorkerDirectory(c *fiber.Ctx) error {
	workers, err := h.userService.ListWorkerDirectory(c.Context(), middleware.GetPrincipal(c))
	if err != nil {
		return respondError(c, err, "list workers")
	}
	return response.Success(c, "Workers retrieved successfully", workers)
}

// DeleteWorker handles worker deletion together with the worker's orders
// @Summary Delete worker
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Worker ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /deleteWorker/{id} [delete]
func (h *UserHandler) DeleteWorker(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "delete worker")
	}
	if err := h.userService.DeleteWorker(c.Context(), middleware.GetPrincipal(c), id); err != nil {
		return respondError(c, err, "delete worker")
	}
	return response.Success(c, "Worker deleted successfully", nil)
}

// RegisterClient handles client registration
// @Summary Register client
// @Description Create a client account with an optional profile image
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param ssn formData string false "SSN"
// @Param image formData file false "Profile image"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /registerClient [post]
func (h *UserHandler) RegisterClient(c *fiber.Ctx) error {
	input, err := h.parseRegister(c)
	if err != nil {
		return respondError(c, err, "register client")
	}

	client, err := h.userService.RegisterClient(c.Context(), middleware.GetPrincipal(c), input)
	if err != nil {
		return respondError(c, err, "register client")
	}

	return response.Success(c, "Client registered successfully", client.ToResponse())
}

// ListClients handles listing all clients
// @Summary List clients
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /allClients [get]
func (h *UserHandler) ListClients(c *fiber.Ctx) error {
	clients, err := h.userService.ListClients(c.Context(), middleware.GetPrincipal(c))
	if err != nil {
		return respondError(c, err, "list clients")
	}
	return response.Success(c, "Clients retrieved successfully", clients)
}

// DeleteClient handles client deletion together with the client's requests
// @Summary Delete client
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /deleteClient/{id} [delete]
func (h *UserHandler) DeleteClient(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "delete client")
	}
	if err := h.userService.DeleteClient(c.Context(), middleware.GetPrincipal(c), id); err != nil {
		return respondError(c, err, "delete client")
	}
	return response.Success(c, "Client deleted successfully", nil)
}
