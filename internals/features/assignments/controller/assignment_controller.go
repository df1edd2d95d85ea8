// file: internals/features/assignments/controller/assignment_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	"kelasku_backend/internals/constants"
	assignmentDTO "kelasku_backend/internals/features/assignments/dto"
	assignmentModel "kelasku_backend/internals/features/assignments/model"
	submissionDTO "kelasku_backend/internals/features/submissions/dto"
	submissionModel "kelasku_backend/internals/features/submissions/model"
	helper "kelasku_backend/internals/helpers"
	helperAuth "kelasku_backend/internals/helpers/auth"
)

type AssignmentController struct {
	DB       *gorm.DB
	Config   *configs.AppConfig
	Authz    *helperAuth.Authorizer
	validate *validator.Validate
}

func NewAssignmentController(db *gorm.DB, cfg *configs.AppConfig) *AssignmentController {
	return &AssignmentController{
		DB:       db,
		Config:   cfg,
		Authz:    helperAuth.NewAuthorizer(db),
		validate: validator.New(),
	}
}

// CREATE
// POST /assignments (auth, admin ∨ pemilik course tujuan)
func (ctl *AssignmentController) CreateAssignment(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req assignmentDTO.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Due = strings.TrimSpace(req.Due)

	if err := ctl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if !ctl.Authz.CanMutateCourse(callerID, req.CourseID) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdminOrOwner("assignment"))
	}

	assignment := req.ToModel()
	if err := ctl.DB.Create(&assignment).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "foreign key") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Course tujuan tidak ditemukan")
		}
		log.Printf("[ERROR] create assignment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat assignment")
	}

	return helper.JsonCreated(c, "Assignment berhasil dibuat", assignmentDTO.FromAssignmentModel(assignment))
}

// GET BY ID
// GET /assignments/:id (publik)
func (ctl *AssignmentController) GetAssignment(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var assignment assignmentModel.AssignmentModel
	if err := ctl.DB.First(&assignment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data assignment")
	}

	return helper.JsonOK(c, "Detail assignment ditemukan", assignmentDTO.FromAssignmentModel(assignment))
}

// UPDATE (partial)
// PATCH /assignments/:id (auth, admin ∨ pemilik course induk)
func (ctl *AssignmentController) UpdateAssignment(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req assignmentDTO.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var assignment assignmentModel.AssignmentModel
	if err := ctl.DB.First(&assignment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data assignment")
	}

	if !ctl.Authz.CanMutateAssignment(callerID, id) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdminOrOwner("assignment"))
	}

	req.Apply(&assignment)
	if err := ctl.DB.Save(&assignment).Error; err != nil {
		log.Printf("[ERROR] update assignment %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan assignment")
	}

	return helper.JsonUpdated(c, "Assignment berhasil diperbarui", assignmentDTO.FromAssignmentModel(assignment))
}

// DELETE
// DELETE /assignments/:id (auth, admin ∨ pemilik course induk)
func (ctl *AssignmentController) DeleteAssignment(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var assignment assignmentModel.AssignmentModel
	if err := ctl.DB.First(&assignment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data assignment")
	}

	if !ctl.Authz.CanMutateAssignment(callerID, id) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdminOrOwner("assignment"))
	}

	if err := ctl.DB.Delete(&assignment).Error; err != nil {
		log.Printf("[ERROR] delete assignment %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus assignment")
	}

	return helper.JsonDeleted(c)
}

// LIST SUBMISSIONS
// GET /assignments/:id/submissions (auth, admin ∨ pemilik course induk)
func (ctl *AssignmentController) ListSubmissions(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var exists int64
	if err := ctl.DB.Model(&assignmentModel.AssignmentModel{}).
		Where("assignment_id = ?", id).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data assignment")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	}

	if !ctl.Authz.CanMutateAssignment(callerID, id) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdminOrOwner("submission"))
	}

	var list []submissionModel.SubmissionModel
	if err := ctl.DB.
		Where("submission_assignment_id = ?", id).
		Order("submission_id ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar submission")
	}

	return helper.JsonOK(c, "Daftar submission", submissionDTO.FromSubmissionModels(list))
}

// CREATE SUBMISSION (multipart)
// POST /assignments/:id/submissions (auth) — student = caller dari
// token, bukan dari form.
func (ctl *AssignmentController) CreateSubmission(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var exists int64
	if err := ctl.DB.Model(&assignmentModel.AssignmentModel{}).
		Where("assignment_id = ?", id).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data assignment")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	}

	path, err := helper.SaveSubmissionFile(c, "file", ctl.Config.UploadDir)
	if err != nil {
		return err
	}

	// timestamp opsional dari form; default waktu server
	ts := time.Now()
	if raw := strings.TrimSpace(c.FormValue("timestamp")); raw != "" {
		if parsed, perr := time.Parse(time.RFC3339, raw); perr == nil {
			ts = parsed
		}
	}

	submission := submissionModel.SubmissionModel{
		SubmissionAssignmentID: id,
		SubmissionStudentID:    callerID,
		SubmissionTimestamp:    ts,
		SubmissionFilePath:     path,
	}
	if err := ctl.DB.Create(&submission).Error; err != nil {
		log.Printf("[ERROR] create submission: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan submission")
	}

	return helper.JsonCreated(c, "Submission berhasil dibuat", submissionDTO.FromSubmissionModel(submission))
}
