package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/EduardoSlee/StudentRegistry/internal/models"
	"github.com/EduardoSlee/StudentRegistry/internal/services"
	"github.com/EduardoSlee/StudentRegistry/internal/utils"
	"github.com/EduardoSlee/StudentRegistry/internal/validator"
	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	BaseHandler
	service services.StudentService
}

func NewStudentHandler(service services.StudentService, logger utils.Logger) *StudentHandler {
	return &StudentHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ===== STUDENT ENDPOINTS =====

// CreateStudent creates a new student
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param X-Api-Key header string true "API key"
// @Param request body models.StudentInput true "Student"
// @Success 201 {object} models.StudentResult
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 401 {string} string "Invalid API key"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /students [post]
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	h.LogRequest(c, "Creating student")

	var req models.StudentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	student, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, student)
}

// GetStudent returns a student by id
// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.StudentResult
// @Failure 400 {object} ErrorResponse "Invalid student ID"
// @Failure 404 {object} ErrorResponse "Student not found."
// @Router /students/{id} [get]
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Getting student", "student_id", id)

	student, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// ListStudents lists every student
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {array} models.StudentResult
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /students [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	h.LogRequest(c, "Listing students")

	students, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

// UpdateStudent replaces every writable field of a student
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body models.StudentInput true "Student"
// @Success 200 {object} models.StudentResult
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Student not found."
// @Router /students/{id} [put]
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Updating student", "student_id", id)

	var req models.StudentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	student, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Tags students
// @Param id path int true "Student ID"
// @Success 200
// @Failure 400 {object} ErrorResponse "Invalid student ID"
// @Failure 404 {object} ErrorResponse "Student not found."
// @Router /students/{id} [delete]
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Deleting student", "student_id", id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// ExportStudentsExcel downloads the student report workbook
// @Summary Export students to xlsx
// @Tags students
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param createDate query string false "Creation day (2006-01-02 or RFC3339)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid createDate"
// @Router /students/excel [get]
func (h *StudentHandler) ExportStudentsExcel(c *gin.Context) {
	createDate, err := parseCreateDate(c.Query("createDate"))
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid createDate", err)
		return
	}

	h.LogRequest(c, "Exporting students", "create_date", c.Query("createDate"))

	data, err := h.service.ExportExcelReport(c.Request.Context(), createDate)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+services.ReportFileName)
	c.Data(http.StatusOK, services.ReportMediaType, data)
}

// ===== HELPERS =====

func (h *StudentHandler) parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid student ID",
		})
		return 0, false
	}
	return uint(id), true
}

// parseCreateDate accepts a calendar day or an RFC3339 timestamp; empty means no filter
func parseCreateDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("createDate %q is not a date", raw)
}

func (h *StudentHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrValidationFailed):
		resp := ErrorResponse{Message: "Validation failed"}
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			resp.Details = ve
		} else {
			resp.Details = err.Error()
		}
		c.JSON(http.StatusBadRequest, resp)
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
