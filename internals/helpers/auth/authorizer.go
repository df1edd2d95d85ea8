// file: internals/helpers/auth/authorizer.go
package helper

import (
	"gorm.io/gorm"

	assignmentModel "kelasku_backend/internals/features/assignments/model"
	courseModel "kelasku_backend/internals/features/courses/model"
	submissionModel "kelasku_backend/internals/features/submissions/model"
	userModel "kelasku_backend/internals/features/users/model"

	"kelasku_backend/internals/constants"
)

// Authorizer adalah gate terpusat admin-atau-pemilik untuk semua
// operasi mutasi. Semua check di sini menelan error storage menjadi
// false: "false" berarti "hak tidak bisa dipastikan", bukan selalu
// "pasti tidak berhak". Evaluasi dilakukan ulang pada tiap request,
// tanpa cache.
type Authorizer struct {
	DB *gorm.DB
}

func NewAuthorizer(db *gorm.DB) *Authorizer {
	return &Authorizer{DB: db}
}

// HasRole: true hanya jika user ada dan role-nya sama persis
// (case-sensitive). Lookup gagal → false, tidak pernah error.
func (a *Authorizer) HasRole(userID uint, role string) bool {
	var u userModel.UserModel
	if err := a.DB.Select("user_role").First(&u, userID).Error; err != nil {
		return false
	}
	return u.UserRole == role
}

// OwnsCourse: ada baris course dengan id & instructor id yang cocok.
func (a *Authorizer) OwnsCourse(userID, courseID uint) bool {
	var n int64
	err := a.DB.Model(&courseModel.CourseModel{}).
		Where("course_id = ? AND course_instructor_id = ?", courseID, userID).
		Count(&n).Error
	if err != nil {
		return false
	}
	return n > 0
}

// CanCreateCourse: membuat course baru butuh role admin — ownership
// belum ada yang bisa dicek pada saat create.
func (a *Authorizer) CanCreateCourse(userID uint) bool {
	return a.HasRole(userID, constants.RoleAdmin)
}

// CanMutateCourse: admin ∨ pemilik course.
func (a *Authorizer) CanMutateCourse(userID, courseID uint) bool {
	if a.HasRole(userID, constants.RoleAdmin) {
		return true
	}
	return a.OwnsCourse(userID, courseID)
}

// CanMutateAssignment: resolve dulu assignment → course pemiliknya,
// lalu jalankan check kepemilikan yang sama.
func (a *Authorizer) CanMutateAssignment(userID, assignmentID uint) bool {
	if a.HasRole(userID, constants.RoleAdmin) {
		return true
	}
	courseID, ok := a.courseOfAssignment(assignmentID)
	if !ok {
		return false
	}
	return a.OwnsCourse(userID, courseID)
}

// CanMutateSubmission: resolve submission → assignment → course.
func (a *Authorizer) CanMutateSubmission(userID, submissionID uint) bool {
	if a.HasRole(userID, constants.RoleAdmin) {
		return true
	}
	var s submissionModel.SubmissionModel
	if err := a.DB.Select("submission_assignment_id").First(&s, submissionID).Error; err != nil {
		return false
	}
	courseID, ok := a.courseOfAssignment(s.SubmissionAssignmentID)
	if !ok {
		return false
	}
	return a.OwnsCourse(userID, courseID)
}

func (a *Authorizer) courseOfAssignment(assignmentID uint) (uint, bool) {
	var as assignmentModel.AssignmentModel
	if err := a.DB.Select("assignment_course_id").First(&as, assignmentID).Error; err != nil {
		return 0, false
	}
	return as.AssignmentCourseID, true
}
