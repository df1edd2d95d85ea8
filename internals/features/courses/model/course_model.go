// file: internals/features/courses/model/course_model.go
package model

import (
	"time"

	userModel "kelasku_backend/internals/features/users/model"
)

type CourseModel struct {
	// PK
	CourseID uint `gorm:"primaryKey;autoIncrement;column:course_id" json:"id"`

	// Atribut
	CourseSubject string `gorm:"size:40;not null;column:course_subject" json:"subject"`
	CourseNumber  int    `gorm:"not null;column:course_number" json:"number"`
	CourseTitle   string `gorm:"size:255;not null;column:course_title" json:"title"`
	CourseTerm    string `gorm:"size:40;not null;column:course_term" json:"term"`

	// FK instruktur pemilik; hapus user → course ikut terhapus
	CourseInstructorID uint                `gorm:"not null;index;column:course_instructor_id" json:"instructorId"`
	Instructor         userModel.UserModel `gorm:"foreignKey:CourseInstructorID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	// Audit
	CourseCreatedAt time.Time `gorm:"autoCreateTime;column:course_created_at" json:"created_at"`
	CourseUpdatedAt time.Time `gorm:"autoUpdateTime;column:course_updated_at" json:"updated_at"`
}

func (CourseModel) TableName() string { return "courses" }
