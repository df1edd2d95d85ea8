// file: internals/features/assignments/model/assignment_model.go
package model

import (
	"time"

	courseModel "kelasku_backend/internals/features/courses/model"
)

type AssignmentModel struct {
	// PK
	AssignmentID uint `gorm:"primaryKey;autoIncrement;column:assignment_id" json:"id"`

	// FK course pemilik; hapus course → assignment ikut terhapus
	AssignmentCourseID uint                    `gorm:"not null;index;column:assignment_course_id" json:"courseId"`
	Course             courseModel.CourseModel `gorm:"foreignKey:AssignmentCourseID;references:CourseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	// Atribut
	AssignmentTitle  string `gorm:"size:255;not null;column:assignment_title" json:"title"`
	AssignmentPoints int    `gorm:"not null;column:assignment_points" json:"points"`
	AssignmentDue    string `gorm:"size:64;not null;column:assignment_due" json:"due"`

	// Audit
	AssignmentCreatedAt time.Time `gorm:"autoCreateTime;column:assignment_created_at" json:"created_at"`
	AssignmentUpdatedAt time.Time `gorm:"autoUpdateTime;column:assignment_updated_at" json:"updated_at"`
}

func (AssignmentModel) TableName() string { return "assignments" }
