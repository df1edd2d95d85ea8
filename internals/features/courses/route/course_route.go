// file: internals/features/courses/route/course_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	courseController "kelasku_backend/internals/features/courses/controller"
)

/*
Course routes.
Read (list/detail/daftar assignment) publik; semua mutasi di belakang
auth middleware — gate admin-atau-pemilik jalan di controller.
*/
func CourseRoutes(app fiber.Router, db *gorm.DB, cfg *configs.AppConfig, authMW fiber.Handler) {
	ctl := courseController.NewCourseController(db, cfg)

	courses := app.Group("/courses")
	courses.Get("/", ctl.ListCourses)                        // GET    /courses
	courses.Post("/", authMW, ctl.CreateCourse)              // POST   /courses
	courses.Get("/:id", ctl.GetCourse)                       // GET    /courses/:id
	courses.Patch("/:id", authMW, ctl.UpdateCourse)          // PATCH  /courses/:id
	courses.Delete("/:id", authMW, ctl.DeleteCourse)         // DELETE /courses/:id
	courses.Get("/:id/assignments", ctl.ListCourseAssignments) // GET  /courses/:id/assignments
}
