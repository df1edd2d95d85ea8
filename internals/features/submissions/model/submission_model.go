// file: internals/features/submissions/model/submission_model.go
package model

import (
	"time"

	assignmentModel "kelasku_backend/internals/features/assignments/model"
	userModel "kelasku_backend/internals/features/users/model"
)

type SubmissionModel struct {
	// PK
	SubmissionID uint `gorm:"primaryKey;autoIncrement;column:submission_id" json:"id"`

	// FK assignment & student; keduanya cascade saat parent dihapus
	SubmissionAssignmentID uint                            `gorm:"not null;index;column:submission_assignment_id" json:"assignmentId"`
	Assignment             assignmentModel.AssignmentModel `gorm:"foreignKey:SubmissionAssignmentID;references:AssignmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	SubmissionStudentID    uint                            `gorm:"not null;index;column:submission_student_id" json:"studentId"`
	Student                userModel.UserModel             `gorm:"foreignKey:SubmissionStudentID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	// Atribut
	SubmissionTimestamp time.Time `gorm:"not null;column:submission_timestamp" json:"timestamp"`
	SubmissionFilePath  string    `gorm:"size:512;column:submission_file_path" json:"path"`

	// Audit
	SubmissionCreatedAt time.Time `gorm:"autoCreateTime;column:submission_created_at" json:"created_at"`
	SubmissionUpdatedAt time.Time `gorm:"autoUpdateTime;column:submission_updated_at" json:"updated_at"`
}

func (SubmissionModel) TableName() string { return "submissions" }
