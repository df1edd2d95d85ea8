// file: internals/features/courses/controller/course_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	"kelasku_backend/internals/constants"
	assignmentModel "kelasku_backend/internals/features/assignments/model"
	courseDTO "kelasku_backend/internals/features/courses/dto"
	courseModel "kelasku_backend/internals/features/courses/model"
	helper "kelasku_backend/internals/helpers"
	helperAuth "kelasku_backend/internals/helpers/auth"
)

type CourseController struct {
	DB       *gorm.DB
	Config   *configs.AppConfig
	Authz    *helperAuth.Authorizer
	validate *validator.Validate
}

func NewCourseController(db *gorm.DB, cfg *configs.AppConfig) *CourseController {
	return &CourseController{
		DB:       db,
		Config:   cfg,
		Authz:    helperAuth.NewAuthorizer(db),
		validate: validator.New(),
	}
}

// LIST
// GET /courses?page=N (publik, page size tetap)
func (ctl *CourseController) ListCourses(c *fiber.Ctx) error {
	page := helper.ResolvePage(c)
	pageSize := ctl.Config.CoursePageSize

	var total int64
	if err := ctl.DB.Model(&courseModel.CourseModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung course")
	}

	var list []courseModel.CourseModel
	if err := ctl.DB.
		Order("course_id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar course")
	}

	lastPage := helper.TotalPages(total, pageSize)
	return helper.JsonOK(c, "Daftar course", fiber.Map{
		"courses":    courseDTO.FromCourseModels(list),
		"pageNumber": page,
		"totalPages": lastPage,
		"pageSize":   pageSize,
		"totalCount": total,
		"links":      helper.BuildPageLinks("/courses", page, lastPage),
	})
}

// CREATE
// POST /courses (auth, admin) — instruktur pemilik = caller.
func (ctl *CourseController) CreateCourse(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req courseDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Subject = strings.TrimSpace(req.Subject)
	req.Title = strings.TrimSpace(req.Title)
	req.Term = strings.TrimSpace(req.Term)

	if err := ctl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if !ctl.Authz.CanCreateCourse(callerID) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin("course"))
	}

	course := req.ToModel(callerID)
	if err := ctl.DB.Create(&course).Error; err != nil {
		log.Printf("[ERROR] create course: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat course")
	}

	return helper.JsonCreated(c, "Course berhasil dibuat", courseDTO.FromCourseModelWithInstructor(course))
}

// GET BY ID
// GET /courses/:id (publik) — instructor id tidak ikut di payload.
func (ctl *CourseController) GetCourse(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var course courseModel.CourseModel
	if err := ctl.DB.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data course")
	}

	return helper.JsonOK(c, "Detail course ditemukan", courseDTO.FromCourseModel(course))
}

// UPDATE (partial)
// PATCH /courses/:id (auth, admin ∨ pemilik)
func (ctl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req courseDTO.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var course courseModel.CourseModel
	if err := ctl.DB.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data course")
	}

	if !ctl.Authz.CanMutateCourse(callerID, id) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdminOrOwner("course"))
	}

	req.Apply(&course)
	if err := ctl.DB.Save(&course).Error; err != nil {
		log.Printf("[ERROR] update course %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan course")
	}

	return helper.JsonUpdated(c, "Course berhasil diperbarui", courseDTO.FromCourseModelWithInstructor(course))
}

// DELETE
// DELETE /courses/:id (auth, admin ∨ pemilik) — cascade ke assignment
// dan submission di bawahnya lewat FK.
func (ctl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var course courseModel.CourseModel
	if err := ctl.DB.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data course")
	}

	if !ctl.Authz.CanMutateCourse(callerID, id) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdminOrOwner("course"))
	}

	if err := ctl.DB.Delete(&course).Error; err != nil {
		log.Printf("[ERROR] delete course %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus course")
	}

	return helper.JsonDeleted(c)
}

// LIST ASSIGNMENT IDS
// GET /courses/:id/assignments (publik)
func (ctl *CourseController) ListCourseAssignments(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var exists int64
	if err := ctl.DB.Model(&courseModel.CourseModel{}).
		Where("course_id = ?", id).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data course")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	ids := make([]uint, 0)
	if err := ctl.DB.Model(&assignmentModel.AssignmentModel{}).
		Where("assignment_course_id = ?", id).
		Order("assignment_id ASC").
		Pluck("assignment_id", &ids).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar assignment")
	}

	return helper.JsonOK(c, "Daftar assignment course", fiber.Map{"assignments": ids})
}
