package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EduardoSlee/StudentRegistry/internal/models"
	"github.com/EduardoSlee/StudentRegistry/internal/services"
	"github.com/EduardoSlee/StudentRegistry/internal/utils"
)

const serviceName = "student-registry"

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type HandlerManager struct {
	studentHandler *StudentHandler
	health         HealthChecker
	logger         utils.Logger
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		studentHandler: NewStudentHandler(serviceManager.Student(), logger),
		health:         serviceManager,
		logger:         logger,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.HealthCheck)

	students := router.Group("/students")
	{
		students.POST("", hm.studentHandler.CreateStudent)
		students.GET("", hm.studentHandler.ListStudents)
		students.GET("/excel", hm.studentHandler.ExportStudentsExcel)
		students.GET("/:id", hm.studentHandler.GetStudent)
		students.PUT("/:id", hm.studentHandler.UpdateStudent)
		students.DELETE("/:id", hm.studentHandler.DeleteStudent)
	}
}

// HealthCheck endpoint
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func (hm *HandlerManager) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := hm.health.HealthCheck(ctx); err != nil {
		utils.GetLogger(c, hm.logger).Warn("Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, models.HealthResponse{
			Status:  "unhealthy",
			Service: serviceName,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Service: serviceName,
	})
}
