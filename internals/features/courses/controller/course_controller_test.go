// file: internals/features/courses/controller/course_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kelasku_backend/internals/configs"
	"kelasku_backend/internals/constants"
	assignmentModel "kelasku_backend/internals/features/assignments/model"
	courseModel "kelasku_backend/internals/features/courses/model"
	courseRoute "kelasku_backend/internals/features/courses/route"
	submissionModel "kelasku_backend/internals/features/submissions/model"
	userModel "kelasku_backend/internals/features/users/model"
	userService "kelasku_backend/internals/features/users/service"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

func setupTest(t *testing.T) (*fiber.App, *gorm.DB, *configs.AppConfig) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_fk=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&courseModel.CourseModel{},
		&assignmentModel.AssignmentModel{},
		&submissionModel.SubmissionModel{},
	))

	cfg := &configs.AppConfig{
		JWTSecret:      "test-secret",
		AccessTokenTTL: time.Hour,
		UploadDir:      t.TempDir(),
		CoursePageSize: 10,
	}

	app := fiber.New()
	courseRoute.CourseRoutes(app, db, cfg, authMiddleware.AuthMiddleware(cfg))
	return app, db, cfg
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{UserName: name, UserEmail: email, UserPassword: "hash", UserRole: role}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func tokenFor(t *testing.T, cfg *configs.AppConfig, u userModel.UserModel) string {
	t.Helper()
	token, err := userService.CreateAccessToken(cfg, u)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) (map[string]any, string) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m, string(raw)
}

func TestCreateCourseGate(t *testing.T) {
	app, db, cfg := setupTest(t)

	admin := seedUser(t, db, "Admin", "admin@kelasku.id", constants.RoleAdmin)
	instructor := seedUser(t, db, "Guru", "guru@kelasku.id", constants.RoleInstructor)

	payload := fiber.Map{"subject": "CS", "number": 493, "title": "Cloud Dev", "term": "sp26"}

	// tanpa token → 401
	resp := doJSON(t, app, http.MethodPost, "/courses", "", payload)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// bukan admin → 403
	resp = doJSON(t, app, http.MethodPost, "/courses", tokenFor(t, cfg, instructor), payload)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// admin → 201, pemilik = caller
	resp = doJSON(t, app, http.MethodPost, "/courses", tokenFor(t, cfg, admin), payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body, _ := readBody(t, resp)
	data := body["data"].(map[string]any)
	assert.EqualValues(t, admin.UserID, data["instructorId"])
}

func TestGetCourseExcludesInstructor(t *testing.T) {
	app, db, _ := setupTest(t)

	owner := seedUser(t, db, "Guru", "guru@kelasku.id", constants.RoleInstructor)
	course := courseModel.CourseModel{
		CourseSubject: "CS", CourseNumber: 493, CourseTitle: "Cloud Dev",
		CourseTerm: "sp26", CourseInstructorID: owner.UserID,
	}
	require.NoError(t, db.Create(&course).Error)

	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/courses/%d", course.CourseID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, raw := readBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, "CS", data["subject"])
	assert.NotContains(t, raw, "instructorId")

	resp = doJSON(t, app, http.MethodGet, "/courses/999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListCoursesPagination(t *testing.T) {
	app, db, _ := setupTest(t)

	owner := seedUser(t, db, "Guru", "guru@kelasku.id", constants.RoleInstructor)
	for i := 0; i < 12; i++ {
		c := courseModel.CourseModel{
			CourseSubject: "CS", CourseNumber: 100 + i, CourseTitle: fmt.Sprintf("Course %d", i),
			CourseTerm: "sp26", CourseInstructorID: owner.UserID,
		}
		require.NoError(t, db.Create(&c).Error)
	}

	resp := doJSON(t, app, http.MethodGet, "/courses", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := readBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Len(t, data["courses"], 10)
	assert.EqualValues(t, 1, data["pageNumber"])
	assert.EqualValues(t, 2, data["totalPages"])
	assert.EqualValues(t, 12, data["totalCount"])
	links := data["links"].(map[string]any)
	assert.Equal(t, "/courses?page=2", links["nextPage"])
	assert.Equal(t, "/courses?page=2", links["lastPage"])
	assert.NotContains(t, links, "prevPage")

	resp = doJSON(t, app, http.MethodGet, "/courses?page=2", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ = readBody(t, resp)
	data = body["data"].(map[string]any)
	assert.Len(t, data["courses"], 2)
	links = data["links"].(map[string]any)
	assert.Equal(t, "/courses?page=1", links["prevPage"])
	assert.Equal(t, "/courses?page=1", links["firstPage"])
	assert.NotContains(t, links, "nextPage")
}

func TestUpdateCourseOwnership(t *testing.T) {
	app, db, cfg := setupTest(t)

	admin := seedUser(t, db, "Admin", "admin@kelasku.id", constants.RoleAdmin)
	owner := seedUser(t, db, "Pemilik", "pemilik@kelasku.id", constants.RoleInstructor)
	other := seedUser(t, db, "Lain", "lain@kelasku.id", constants.RoleInstructor)

	course := courseModel.CourseModel{
		CourseSubject: "CS", CourseNumber: 493, CourseTitle: "Cloud Dev",
		CourseTerm: "sp26", CourseInstructorID: owner.UserID,
	}
	require.NoError(t, db.Create(&course).Error)
	path := fmt.Sprintf("/courses/%d", course.CourseID)

	// instruktur lain → 403
	resp := doJSON(t, app, http.MethodPatch, path, tokenFor(t, cfg, other), fiber.Map{"title": "Hacked"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// pemilik → 200
	resp = doJSON(t, app, http.MethodPatch, path, tokenFor(t, cfg, owner), fiber.Map{"title": "Cloud Dev II"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := readBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Cloud Dev II", data["title"])
	assert.Equal(t, "CS", data["subject"]) // field absen tetap

	// admin → 200 tanpa ownership
	resp = doJSON(t, app, http.MethodPatch, path, tokenFor(t, cfg, admin), fiber.Map{"term": "fa26"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// PATCH body kosong = no-op: semua field tetap.
func TestUpdateCourseEmptyBodyNoop(t *testing.T) {
	app, db, cfg := setupTest(t)

	owner := seedUser(t, db, "Pemilik", "pemilik@kelasku.id", constants.RoleInstructor)
	course := courseModel.CourseModel{
		CourseSubject: "CS", CourseNumber: 493, CourseTitle: "Cloud Dev",
		CourseTerm: "sp26", CourseInstructorID: owner.UserID,
	}
	require.NoError(t, db.Create(&course).Error)

	resp := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/courses/%d", course.CourseID),
		tokenFor(t, cfg, owner), fiber.Map{})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var after courseModel.CourseModel
	require.NoError(t, db.First(&after, course.CourseID).Error)
	assert.Equal(t, "CS", after.CourseSubject)
	assert.Equal(t, 493, after.CourseNumber)
	assert.Equal(t, "Cloud Dev", after.CourseTitle)
	assert.Equal(t, "sp26", after.CourseTerm)
}

// Hapus course → assignment dan submission di bawahnya ikut hilang.
func TestDeleteCourseCascades(t *testing.T) {
	app, db, cfg := setupTest(t)

	admin := seedUser(t, db, "Admin", "admin@kelasku.id", constants.RoleAdmin)
	owner := seedUser(t, db, "Pemilik", "pemilik@kelasku.id", constants.RoleInstructor)
	student := seedUser(t, db, "Siswa", "siswa@kelasku.id", constants.RoleStudent)

	course := courseModel.CourseModel{
		CourseSubject: "CS", CourseNumber: 493, CourseTitle: "Cloud Dev",
		CourseTerm: "sp26", CourseInstructorID: owner.UserID,
	}
	require.NoError(t, db.Create(&course).Error)
	assignment := assignmentModel.AssignmentModel{
		AssignmentCourseID: course.CourseID, AssignmentTitle: "A1",
		AssignmentPoints: 100, AssignmentDue: "2026-06-14T17:00:00Z",
	}
	require.NoError(t, db.Create(&assignment).Error)
	submission := submissionModel.SubmissionModel{
		SubmissionAssignmentID: assignment.AssignmentID,
		SubmissionStudentID:    student.UserID,
		SubmissionTimestamp:    time.Now(),
		SubmissionFilePath:     "uploads/a.pdf",
	}
	require.NoError(t, db.Create(&submission).Error)

	resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/courses/%d", course.CourseID),
		tokenFor(t, cfg, admin), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var n int64
	require.NoError(t, db.Model(&assignmentModel.AssignmentModel{}).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&submissionModel.SubmissionModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestListCourseAssignments(t *testing.T) {
	app, db, _ := setupTest(t)

	owner := seedUser(t, db, "Pemilik", "pemilik@kelasku.id", constants.RoleInstructor)
	course := courseModel.CourseModel{
		CourseSubject: "CS", CourseNumber: 493, CourseTitle: "Cloud Dev",
		CourseTerm: "sp26", CourseInstructorID: owner.UserID,
	}
	require.NoError(t, db.Create(&course).Error)
	for i := 0; i < 3; i++ {
		a := assignmentModel.AssignmentModel{
			AssignmentCourseID: course.CourseID, AssignmentTitle: fmt.Sprintf("A%d", i),
			AssignmentPoints: 10, AssignmentDue: "2026-06-14T17:00:00Z",
		}
		require.NoError(t, db.Create(&a).Error)
	}

	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/courses/%d/assignments", course.CourseID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := readBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Len(t, data["assignments"], 3)

	resp = doJSON(t, app, http.MethodGet, "/courses/999/assignments", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
