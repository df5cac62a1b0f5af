package services

import (
	"time"

	"github.com/EduardoSlee/StudentRegistry/internal/models"
	"gorm.io/datatypes"
)

const (
	viewDateLayout = "02/01/2006"

	sexMale   = "Male"
	sexFemale = "Female"
)

func ToStudentResult(s *models.Student) *models.StudentResult {
	if s == nil {
		return nil
	}

	return &models.StudentResult{
		ID:             s.ID,
		Name:           s.Name,
		LastName:       s.LastName,
		EmailAddress:   s.EmailAddress,
		DocumentType:   s.DocumentType,
		DocumentNumber: s.DocumentNumber,
		BirthDate:      time.Time(s.BirthDate),
		Sex:            s.Sex,
		PhoneNumber:    s.PhoneNumber,
		Nationality:    s.Nationality,
		Photo:          s.Photo,
		CreateDate:     s.CreateDate.UTC().Format(viewDateLayout),
	}
}

func ToStudentResults(students []*models.Student) []*models.StudentResult {
	results := make([]*models.StudentResult, 0, len(students))
	for _, s := range students {
		results = append(results, ToStudentResult(s))
	}
	return results
}

// ToStudent builds a new entity from input. ID and CreateDate stay zero so the
// store and the create hook assign them.
func ToStudent(in *models.StudentInput) *models.Student {
	s := &models.Student{}
	ApplyStudentInput(in, s)
	return s
}

// ApplyStudentInput overwrites every writable field of s with the input values.
// Absent optional fields become nil.
func ApplyStudentInput(in *models.StudentInput, s *models.Student) {
	s.Name = in.Name
	s.LastName = in.LastName
	s.EmailAddress = in.EmailAddress
	s.DocumentType = in.DocumentType
	s.DocumentNumber = in.DocumentNumber
	s.BirthDate = datatypes.Date(in.BirthDate.Time())
	s.Sex = in.Sex != nil && *in.Sex
	s.PhoneNumber = in.PhoneNumber
	s.Nationality = in.Nationality
	s.Photo = in.Photo
}

func ToStudentReport(s *models.Student) *models.StudentReport {
	return &models.StudentReport{
		Name:           s.Name,
		LastName:       s.LastName,
		EmailAddress:   s.EmailAddress,
		DocumentType:   s.DocumentType,
		DocumentNumber: s.DocumentNumber,
		BirthDate:      time.Time(s.BirthDate),
		SexDescription: sexDescription(s.Sex),
		PhoneNumber:    s.PhoneNumber,
		CreateDate:     s.CreateDate,
		Nationality:    s.Nationality,
	}
}

func sexDescription(male bool) string {
	if male {
		return sexMale
	}
	return sexFemale
}
