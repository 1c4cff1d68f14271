package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"talenthub/internal/common"
	"talenthub/internal/models"
	"talenthub/internal/repositories"
	"talenthub/internal/services"

	"github.com/labstack/echo/v4"
)

// CandidateHandlers handles candidate-related HTTP requests
type CandidateHandlers struct {
	candidateService services.CandidateService
}

// NewCandidateHandlers creates a new candidate handlers instance
func NewCandidateHandlers(candidateService services.CandidateService) *CandidateHandlers {
	return &CandidateHandlers{candidateService: candidateService}
}

// CandidateRequest represents the candidate create/update payload. All fields
// are required; updates are a full replace.
type CandidateRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Skills     string `json:"skills"`
	Experience *int   `json:"experience"`
	Department string `json:"department"`
}

func (r *CandidateRequest) validate() []common.FieldError {
	var errs []common.FieldError
	if !common.RequiredString(r.Name) {
		errs = append(errs, common.FieldError{Field: "name", Message: "Name is required"})
	}
	if !common.ValidEmail(r.Email) {
		errs = append(errs, common.FieldError{Field: "email", Message: "Please provide a valid email"})
	}
	if !common.RequiredString(r.Phone) {
		errs = append(errs, common.FieldError{Field: "phone", Message: "Phone is required"})
	} else if !common.ValidPhone(r.Phone) {
		errs = append(errs, common.FieldError{Field: "phone", Message: "Please provide a valid phone number"})
	}
	if !common.RequiredString(r.Skills) {
		errs = append(errs, common.FieldError{Field: "skills", Message: "Skills are required"})
	}
	if r.Experience == nil || *r.Experience < 0 {
		errs = append(errs, common.FieldError{Field: "experience", Message: "Experience must be a positive number"})
	}
	if !common.RequiredString(r.Department) {
		errs = append(errs, common.FieldError{Field: "department", Message: "Department is required"})
	}
	return errs
}

// ListCandidates handles getting all candidates owned by the caller,
// newest-created first
func (h *CandidateHandlers) ListCandidates(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}

	candidates, err := h.candidateService.List(ctx, userID)
	if err != nil {
		log.Printf("Get candidates error: %v", err)
		return common.SendServerError(c, "Error fetching candidates")
	}

	if candidates == nil {
		candidates = []*models.Candidate{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"count":  len(candidates),
		"data": echo.Map{
			"candidates": candidates,
		},
	})
}

// CreateCandidate handles creating a new candidate
func (h *CandidateHandlers) CreateCandidate(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}

	var req CandidateRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if errs := req.validate(); len(errs) > 0 {
		return common.SendValidationErrors(c, errs)
	}

	candidate := &models.Candidate{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Skills:     req.Skills,
		Experience: *req.Experience,
		Department: req.Department,
		UserID:     userID,
	}

	if err := h.candidateService.Create(ctx, candidate); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return common.SendClientError(c, "Candidate with this email already exists")
		}
		log.Printf("Create candidate error: %v", err)
		return common.SendServerError(c, "Error creating candidate")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"status": "success",
		"data": echo.Map{
			"candidate": candidate,
		},
	})
}

// GetCandidate handles getting candidate details by ID
func (h *CandidateHandlers) GetCandidate(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}

	candidateID, err := parseCandidateID(c)
	if err != nil {
		return common.SendNotFoundError(c, "Candidate not found")
	}

	candidate, err := h.candidateService.GetByID(ctx, candidateID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return common.SendNotFoundError(c, "Candidate not found")
		}
		log.Printf("Get candidate error: %v", err)
		return common.SendServerError(c, "Error fetching candidate")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"data": echo.Map{
			"candidate": candidate,
		},
	})
}

// UpdateCandidate handles a full-record candidate update
func (h *CandidateHandlers) UpdateCandidate(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}

	candidateID, err := parseCandidateID(c)
	if err != nil {
		return common.SendNotFoundError(c, "Candidate not found")
	}

	var req CandidateRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if errs := req.validate(); len(errs) > 0 {
		return common.SendValidationErrors(c, errs)
	}

	candidate := &models.Candidate{
		ID:         candidateID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Skills:     req.Skills,
		Experience: *req.Experience,
		Department: req.Department,
		UserID:     userID,
	}

	if err := h.candidateService.Update(ctx, candidate); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return common.SendNotFoundError(c, "Candidate not found")
		}
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return common.SendClientError(c, "Candidate with this email already exists")
		}
		log.Printf("Update candidate error: %v", err)
		return common.SendServerError(c, "Error updating candidate")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"data": echo.Map{
			"candidate": candidate,
		},
	})
}

// DeleteCandidate handles deleting a candidate
func (h *CandidateHandlers) DeleteCandidate(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}

	candidateID, err := parseCandidateID(c)
	if err != nil {
		return common.SendNotFoundError(c, "Candidate not found")
	}

	deleted, err := h.candidateService.Delete(ctx, candidateID, userID)
	if err != nil {
		log.Printf("Delete candidate error: %v", err)
		return common.SendServerError(c, "Error deleting candidate")
	}
	if !deleted {
		return common.SendNotFoundError(c, "Candidate not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "Candidate deleted successfully",
	})
}

// parseCandidateID reads the :id path parameter. A non-numeric id matches no
// row, so callers surface it as not found.
func parseCandidateID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
