package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/EduardoSlee/StudentRegistry/internal/models"
	"github.com/EduardoSlee/StudentRegistry/internal/repositories"
)

// fakeRepository is an in-memory repositories.Repository for service tests
type fakeRepository struct {
	students *fakeStudentRepository
	pingErr  error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{students: &fakeStudentRepository{rows: map[uint]models.Student{}}}
}

func (r *fakeRepository) Student() repositories.StudentRepository { return r.students }
func (r *fakeRepository) Ping(ctx context.Context) error          { return r.pingErr }
func (r *fakeRepository) Close() error                            { return nil }

type fakeStudentRepository struct {
	rows   map[uint]models.Student
	nextID uint
	err    error

	updates      int
	deletes      int
	listCalls    int
	listAllCalls int
}

func (f *fakeStudentRepository) Create(ctx context.Context, s *models.Student) error {
	if f.err != nil {
		return f.err
	}
	_ = s.BeforeCreate(nil)
	f.nextID++
	s.ID = f.nextID
	f.rows[s.ID] = *s
	return nil
}

func (f *fakeStudentRepository) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeStudentRepository) Update(ctx context.Context, s *models.Student) error {
	if f.err != nil {
		return f.err
	}
	f.updates++
	existing := f.rows[s.ID]
	row := *s
	row.CreateDate = existing.CreateDate
	f.rows[s.ID] = row
	return nil
}

func (f *fakeStudentRepository) Delete(ctx context.Context, s *models.Student) error {
	if f.err != nil {
		return f.err
	}
	f.deletes++
	delete(f.rows, s.ID)
	return nil
}

func (f *fakeStudentRepository) List(ctx context.Context, createDate *time.Time) ([]*models.Student, error) {
	f.listCalls++
	all, err := f.all()
	if err != nil || createDate == nil {
		return all, err
	}

	y, m, d := createDate.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	out := make([]*models.Student, 0, len(all))
	for _, s := range all {
		if !s.CreateDate.Before(start) && s.CreateDate.Before(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	f.listAllCalls++
	return f.all()
}

func (f *fakeStudentRepository) all() ([]*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Student, 0, len(f.rows))
	for _, s := range f.rows {
		row := s
		out = append(out, &row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStudentRepository) seed(s models.Student) *models.Student {
	f.nextID++
	s.ID = f.nextID
	f.rows[s.ID] = s
	return &s
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func validInput() *models.StudentInput {
	return &models.StudentInput{
		Name:           "Ada",
		LastName:       "Lovelace",
		EmailAddress:   "ada@example.com",
		DocumentType:   "DNI",
		DocumentNumber: "12345678",
		BirthDate:      models.NewCalendarDate(1990, time.December, 10),
		Sex:            boolPtr(false),
		PhoneNumber:    strPtr("555-0100"),
		Nationality:    strPtr("British"),
	}
}
