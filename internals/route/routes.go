// file: internals/route/routes.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	assignmentRoute "kelasku_backend/internals/features/assignments/route"
	courseRoute "kelasku_backend/internals/features/courses/route"
	userRoute "kelasku_backend/internals/features/users/route"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.AppConfig) {
	authMW := authMiddleware.AuthMiddleware(cfg)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db, cfg, authMW)

	log.Println("[INFO] Setting up CourseRoutes...")
	courseRoute.CourseRoutes(app, db, cfg, authMW)

	log.Println("[INFO] Setting up AssignmentRoutes...")
	assignmentRoute.AssignmentRoutes(app, db, cfg, authMW)
}
