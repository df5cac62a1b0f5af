package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/EduardoSlee/StudentRegistry/internal/events"
	"github.com/EduardoSlee/StudentRegistry/internal/models"
	"github.com/EduardoSlee/StudentRegistry/internal/repositories"
	"github.com/EduardoSlee/StudentRegistry/internal/validator"
)

const studentEntity = "Student"

type studentService struct {
	repo           repositories.Repository
	eventPublisher events.EventPublisher
	logger         *slog.Logger
	validator      *validator.Validator
}

func NewStudentService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) StudentService {
	return &studentService{
		repo:           repo,
		eventPublisher: publisher,
		logger:         logger,
		validator:      validator,
	}
}

func (s *studentService) Create(ctx context.Context, req *models.StudentInput) (*models.StudentResult, error) {
	s.logger.Info("Creating student", "email_address", req.EmailAddress)

	if err := s.validate(req); err != nil {
		return nil, err
	}

	student := ToStudent(req)
	if err := s.repo.Student().Create(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	s.logger.Info("Student created successfully", "student_id", student.ID)
	s.publish(ctx, events.EventStudentCreated, student)

	return ToStudentResult(student), nil
}

func (s *studentService) GetByID(ctx context.Context, id uint) (*models.StudentResult, error) {
	student, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToStudentResult(student), nil
}

func (s *studentService) List(ctx context.Context) ([]*models.StudentResult, error) {
	students, err := s.repo.Student().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return ToStudentResults(students), nil
}

func (s *studentService) Update(ctx context.Context, id uint, req *models.StudentInput) (*models.StudentResult, error) {
	s.logger.Info("Updating student", "student_id", id)

	if err := s.validate(req); err != nil {
		return nil, err
	}

	student, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	ApplyStudentInput(req, student)
	if err := s.repo.Student().Update(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	s.logger.Info("Student updated successfully", "student_id", id)
	s.publish(ctx, events.EventStudentUpdated, student)

	return ToStudentResult(student), nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	s.logger.Info("Deleting student", "student_id", id)

	student, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Student().Delete(ctx, student); err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	s.logger.Info("Student deleted successfully", "student_id", id)
	s.publish(ctx, events.EventStudentDeleted, student)

	return nil
}

func (s *studentService) ExportExcelReport(ctx context.Context, createDate *time.Time) ([]byte, error) {
	students, err := s.repo.Student().List(ctx, createDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list students for report: %w", err)
	}

	reports := make([]*models.StudentReport, 0, len(students))
	for _, student := range students {
		reports = append(reports, ToStudentReport(student))
	}

	data, err := BuildStudentWorkbook(reports)
	if err != nil {
		return nil, fmt.Errorf("failed to build student report: %w", err)
	}

	s.logger.Info("Student report exported", "rows", len(reports), "bytes", len(data))
	return data, nil
}

// ===== HELPERS =====

func (s *studentService) find(ctx context.Context, id uint) (*models.Student, error) {
	student, err := s.repo.Student().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	if student == nil {
		return nil, NewNotFoundError(studentEntity)
	}
	return student, nil
}

func (s *studentService) validate(req *models.StudentInput) error {
	if req == nil {
		return &ValidationFailedError{Cause: fmt.Errorf("request body is required")}
	}
	if err := s.validator.Validate(req); err != nil {
		return &ValidationFailedError{Cause: err}
	}
	return nil
}

// publish never fails the caller; the write has already been committed.
func (s *studentService) publish(ctx context.Context, eventType string, student *models.Student) {
	if s.eventPublisher == nil {
		return
	}

	event := events.NewEvent(eventType, events.StudentEventData{
		StudentID:    student.ID,
		Name:         student.Name,
		LastName:     student.LastName,
		EmailAddress: student.EmailAddress,
	})

	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish student event",
			"event_type", eventType,
			"student_id", student.ID,
			"error", err)
	}
}
