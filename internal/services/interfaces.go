package services

import (
	"context"
	"time"

	"github.com/EduardoSlee/StudentRegistry/internal/models"
)

// ===== STUDENT SERVICE =====

type StudentService interface {
	Create(ctx context.Context, req *models.StudentInput) (*models.StudentResult, error)
	GetByID(ctx context.Context, id uint) (*models.StudentResult, error)
	Update(ctx context.Context, id uint, req *models.StudentInput) (*models.StudentResult, error)
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context) ([]*models.StudentResult, error)

	// ExportExcelReport returns an xlsx workbook of the students created on the
	// calendar day of createDate, or of every student when createDate is nil.
	ExportExcelReport(ctx context.Context, createDate *time.Time) ([]byte, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	Student() StudentService

	// Health and lifecycle
	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
