package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/EduardoSlee/StudentRegistry/internal/models"
	"github.com/EduardoSlee/StudentRegistry/internal/repositories"
)

type studentPostgreSQL struct {
	db *gorm.DB
}

func NewStudentPostgreSQL(db *gorm.DB) repositories.StudentRepository {
	return &studentPostgreSQL{db: db}
}

// ===== BASIC CRUD OPERATIONS =====

func (r *studentPostgreSQL) Create(ctx context.Context, student *models.Student) error {
	if err := r.db.WithContext(ctx).Create(student).Error; err != nil {
		return handleDBError(err, "create student")
	}
	return nil
}

func (r *studentPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student

	err := r.db.WithContext(ctx).First(&student, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, handleDBError(err, "get student by id")
	}

	return &student, nil
}

func (r *studentPostgreSQL) Update(ctx context.Context, student *models.Student) error {
	// Select("*") writes zero values too; create_date is set once at insert.
	err := r.db.WithContext(ctx).
		Model(student).
		Select("*").
		Omit("ID", "CreateDate").
		Updates(student).Error
	if err != nil {
		return handleDBError(err, "update student")
	}
	return nil
}

func (r *studentPostgreSQL) Delete(ctx context.Context, student *models.Student) error {
	if err := r.db.WithContext(ctx).Delete(student).Error; err != nil {
		return handleDBError(err, "delete student")
	}
	return nil
}

// ===== QUERY OPERATIONS =====

func (r *studentPostgreSQL) List(ctx context.Context, createDate *time.Time) ([]*models.Student, error) {
	var students []*models.Student

	query := r.db.WithContext(ctx).Model(&models.Student{})
	if createDate != nil {
		start, end := dayBounds(*createDate)
		query = query.Where("create_date >= ? AND create_date < ?", start, end)
	}

	if err := query.Order("id").Find(&students).Error; err != nil {
		return nil, handleDBError(err, "list students")
	}

	return students, nil
}

func (r *studentPostgreSQL) ListAll(ctx context.Context) ([]*models.Student, error) {
	return r.List(ctx, nil)
}

// ===== HELPER METHODS =====

// dayBounds returns the UTC half-open range [00:00, next 00:00) of the calendar
// date carried by t in its own location.
func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// handleDBError is a package-level helper for handling database errors
func handleDBError(err error, operation string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s failed: %w", operation, err)
}
