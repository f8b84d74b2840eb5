package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lexsite/internal/delivery/http/response"
	"lexsite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CaseHandler holds dependencies for case-study handlers.
type CaseHandler struct {
	directoryUC usecase.DirectoryUsecase
	caseUC      usecase.CaseStudyUsecase
	logger      *slog.Logger
}

// NewCaseHandler is the constructor for CaseHandler, injected by Fx.
func NewCaseHandler(
	directoryUC usecase.DirectoryUsecase,
	caseUC usecase.CaseStudyUsecase,
	logger *slog.Logger,
) *CaseHandler {
	return &CaseHandler{
		directoryUC: directoryUC,
		caseUC:      caseUC,
		logger:      logger,
	}
}

// CreateCaseRequest represents the request body for adding a case.
type CreateCaseRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description" validate:"required"`
	Result      string     `json:"result" validate:"omitempty,max=255"`
	Date        *time.Time `json:"date"`
}

// CreateCase adds a case to the caller's page.
func (h *CaseHandler) CreateCase(c echo.Context) error {
	account, err := callerAccount(c, h.directoryUC)
	if err != nil {
		return err
	}

	var req CreateCaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid case input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	caseStudy, err := h.caseUC.CreateCaseStudy(c.Request().Context(), account.ID, &usecase.CreateCaseStudyInput{
		Title:       req.Title,
		Description: req.Description,
		Result:      req.Result,
		Date:        req.Date,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, caseStudy, "Case created successfully")
}

// ListCases returns the caller's cases in display order.
func (h *CaseHandler) ListCases(c echo.Context) error {
	account, err := callerAccount(c, h.directoryUC)
	if err != nil {
		return err
	}

	cases, err := h.caseUC.ListCaseStudies(c.Request().Context(), account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cases, "Cases retrieved successfully")
}

// DeleteCase removes one of the caller's cases.
func (h *CaseHandler) DeleteCase(c echo.Context) error {
	account, err := callerAccount(c, h.directoryUC)
	if err != nil {
		return err
	}

	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid case id")
	}

	if err := h.caseUC.DeleteCaseStudy(c.Request().Context(), account.ID, caseID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": caseID.String()}, "Case deleted successfully")
}

// ListSpecialties returns the caller's practice areas.
func (h *CaseHandler) ListSpecialties(c echo.Context) error {
	account, err := callerAccount(c, h.directoryUC)
	if err != nil {
		return err
	}

	specialties, err := h.caseUC.ListSpecialties(c.Request().Context(), account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, specialties, "Specialties retrieved successfully")
}
