// file: internals/features/assignments/route/assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	assignmentController "kelasku_backend/internals/features/assignments/controller"
)

/*
Assignment routes (termasuk submissions di bawah assignment).
Detail assignment publik; sisanya auth.
*/
func AssignmentRoutes(app fiber.Router, db *gorm.DB, cfg *configs.AppConfig, authMW fiber.Handler) {
	ctl := assignmentController.NewAssignmentController(db, cfg)

	assignments := app.Group("/assignments")
	assignments.Post("/", authMW, ctl.CreateAssignment)        // POST   /assignments
	assignments.Get("/:id", ctl.GetAssignment)                 // GET    /assignments/:id
	assignments.Patch("/:id", authMW, ctl.UpdateAssignment)    // PATCH  /assignments/:id
	assignments.Delete("/:id", authMW, ctl.DeleteAssignment)   // DELETE /assignments/:id
	assignments.Get("/:id/submissions", authMW, ctl.ListSubmissions)   // GET  /assignments/:id/submissions
	assignments.Post("/:id/submissions", authMW, ctl.CreateSubmission) // POST /assignments/:id/submissions (multipart)
}
