// file: internals/features/assignments/dto/assignment_dto.go
package dto

import (
	m "kelasku_backend/internals/features/assignments/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateAssignmentRequest struct {
	CourseID uint   `json:"courseId" validate:"required,gt=0"`
	Title    string `json:"title" validate:"required,min=1,max=255"`
	Points   int    `json:"points" validate:"gte=0"`
	Due      string `json:"due" validate:"required,min=1,max=64"`
}

func (r CreateAssignmentRequest) ToModel() m.AssignmentModel {
	return m.AssignmentModel{
		AssignmentCourseID: r.CourseID,
		AssignmentTitle:    r.Title,
		AssignmentPoints:   r.Points,
		AssignmentDue:      r.Due,
	}
}

/* =========================================================
   UPDATE — pointer fields: absent ≠ zero value.
   {"points":0} menulis 0; field yang tidak dikirim tetap.
   ========================================================= */

type UpdateAssignmentRequest struct {
	CourseID *uint   `json:"courseId" validate:"omitempty,gt=0"`
	Title    *string `json:"title" validate:"omitempty,min=1,max=255"`
	Points   *int    `json:"points" validate:"omitempty,gte=0"`
	Due      *string `json:"due" validate:"omitempty,min=1,max=64"`
}

func (r UpdateAssignmentRequest) Apply(mm *m.AssignmentModel) {
	if r.CourseID != nil {
		mm.AssignmentCourseID = *r.CourseID
	}
	if r.Title != nil {
		mm.AssignmentTitle = *r.Title
	}
	if r.Points != nil {
		mm.AssignmentPoints = *r.Points
	}
	if r.Due != nil {
		mm.AssignmentDue = *r.Due
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type AssignmentResponse struct {
	ID       uint   `json:"id"`
	CourseID uint   `json:"courseId"`
	Title    string `json:"title"`
	Points   int    `json:"points"`
	Due      string `json:"due"`
}

func FromAssignmentModel(a m.AssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		ID:       a.AssignmentID,
		CourseID: a.AssignmentCourseID,
		Title:    a.AssignmentTitle,
		Points:   a.AssignmentPoints,
		Due:      a.AssignmentDue,
	}
}
