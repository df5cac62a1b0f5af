package repositories

import (
	"context"
	"time"

	"github.com/EduardoSlee/StudentRegistry/internal/models"
)

// StudentRepository is the data access contract for students.
// Every method may fail on store connectivity; GetByID reports a missing
// record as (nil, nil) rather than an error.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, student *models.Student) error

	// List returns students created on the UTC calendar day of createDate,
	// or every student when createDate is nil.
	List(ctx context.Context, createDate *time.Time) ([]*models.Student, error)
	ListAll(ctx context.Context) ([]*models.Student, error)
}
