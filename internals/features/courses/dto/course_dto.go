// file: internals/features/courses/dto/course_dto.go
package dto

import (
	m "kelasku_backend/internals/features/courses/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateCourseRequest struct {
	Subject string `json:"subject" validate:"required,min=1,max=40"`
	Number  int    `json:"number" validate:"required,gt=0"`
	Title   string `json:"title" validate:"required,min=1,max=255"`
	Term    string `json:"term" validate:"required,min=1,max=40"`
}

func (r CreateCourseRequest) ToModel(instructorID uint) m.CourseModel {
	return m.CourseModel{
		CourseSubject:      r.Subject,
		CourseNumber:       r.Number,
		CourseTitle:        r.Title,
		CourseTerm:         r.Term,
		CourseInstructorID: instructorID,
	}
}

/* =========================================================
   UPDATE — pointer fields: absent ≠ zero value.
   Field yang tidak dikirim mempertahankan nilai lama; field yang
   dikirim (termasuk 0 / string kosong) ditulis apa adanya.
   ========================================================= */

type UpdateCourseRequest struct {
	Subject      *string `json:"subject" validate:"omitempty,min=1,max=40"`
	Number       *int    `json:"number" validate:"omitempty,gt=0"`
	Title        *string `json:"title" validate:"omitempty,min=1,max=255"`
	Term         *string `json:"term" validate:"omitempty,min=1,max=40"`
	InstructorID *uint   `json:"instructorId" validate:"omitempty,gt=0"`
}

func (r UpdateCourseRequest) Apply(mm *m.CourseModel) {
	if r.Subject != nil {
		mm.CourseSubject = *r.Subject
	}
	if r.Number != nil {
		mm.CourseNumber = *r.Number
	}
	if r.Title != nil {
		mm.CourseTitle = *r.Title
	}
	if r.Term != nil {
		mm.CourseTerm = *r.Term
	}
	if r.InstructorID != nil {
		mm.CourseInstructorID = *r.InstructorID
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

// CourseResponse: payload publik — instructor id disembunyikan.
type CourseResponse struct {
	ID      uint   `json:"id"`
	Subject string `json:"subject"`
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Term    string `json:"term"`
}

// CourseOwnerResponse: payload create/update, termasuk instructor id.
type CourseOwnerResponse struct {
	CourseResponse
	InstructorID uint `json:"instructorId"`
}

func FromCourseModel(c m.CourseModel) CourseResponse {
	return CourseResponse{
		ID:      c.CourseID,
		Subject: c.CourseSubject,
		Number:  c.CourseNumber,
		Title:   c.CourseTitle,
		Term:    c.CourseTerm,
	}
}

func FromCourseModelWithInstructor(c m.CourseModel) CourseOwnerResponse {
	return CourseOwnerResponse{
		CourseResponse: FromCourseModel(c),
		InstructorID:   c.CourseInstructorID,
	}
}

func FromCourseModels(list []m.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromCourseModel(c))
	}
	return out
}
