// file: internals/features/submissions/dto/submission_dto.go
package dto

import (
	"time"

	m "kelasku_backend/internals/features/submissions/model"
)

type SubmissionResponse struct {
	ID           uint      `json:"id"`
	AssignmentID uint      `json:"assignmentId"`
	StudentID    uint      `json:"studentId"`
	Timestamp    time.Time `json:"timestamp"`
	FilePath     string    `json:"path"`
}

func FromSubmissionModel(s m.SubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		ID:           s.SubmissionID,
		AssignmentID: s.SubmissionAssignmentID,
		StudentID:    s.SubmissionStudentID,
		Timestamp:    s.SubmissionTimestamp,
		FilePath:     s.SubmissionFilePath,
	}
}

func FromSubmissionModels(list []m.SubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSubmissionModel(s))
	}
	return out
}
