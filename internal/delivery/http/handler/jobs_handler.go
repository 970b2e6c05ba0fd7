package handler

import (
	"errors"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	ucjob "jobmatch/internal/usecase/job"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	uc ucjob.Usecase
}

func NewJobsHandler(uc ucjob.Usecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

// RegisterRoutes leaves reads and seeding public; writes run auth first.
func (h *JobsHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("", h.List)
	r.Post("/seed", h.Seed)
	r.Get("/:id", h.Get)

	r.Post("", auth, h.Create)
	r.Put("/:id", auth, h.Update)
	r.Delete("/:id", auth, h.Delete)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	jobs, err := h.uc.List(c.Context())
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobs)
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	j, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.Create(c.Context(), req.Input())
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, j)
}

func (h *JobsHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.Update(c.Context(), id, req.Input())
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func (h *JobsHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job removed", nil)
}

func (h *JobsHandler) Seed(c fiber.Ctx) error {
	n, err := h.uc.Seed(c.Context())
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Jobs seeded", dto.SeedResponse{Count: n})
}

func mapJobUsecaseError(err error) error {
	switch {
	case errors.Is(err, ucjob.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, ucjob.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
