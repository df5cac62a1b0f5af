package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Student struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Name           string         `json:"name" gorm:"not null;size:50;index:idx_students_name_last_name,priority:1"`
	LastName       string         `json:"last_name" gorm:"not null;size:100;index:idx_students_name_last_name,priority:2"`
	EmailAddress   string         `json:"email_address" gorm:"not null;size:50"`
	DocumentType   string         `json:"document_type" gorm:"not null;size:20"`
	DocumentNumber string         `json:"document_number" gorm:"not null;size:20"`
	BirthDate      datatypes.Date `json:"birth_date" gorm:"not null"`
	Sex            bool           `json:"sex" gorm:"not null"`
	PhoneNumber    *string        `json:"phone_number" gorm:"type:text"`

	// Assigned once at insert, never touched by updates.
	CreateDate time.Time `json:"create_date" gorm:"not null"`

	Nationality *string `json:"nationality" gorm:"type:text"`
	Photo       *string `json:"photo" gorm:"type:text"`
}

func (Student) TableName() string {
	return "students"
}

// BeforeCreate defaults CreateDate to the current UTC time when the caller left it empty.
func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.CreateDate.IsZero() {
		s.CreateDate = time.Now().UTC()
	}
	return nil
}
