// file: internals/features/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	userController "kelasku_backend/internals/features/users/controller"
)

/*
User routes.
Register & login publik; detail user butuh auth.
*/
func UserRoutes(app fiber.Router, db *gorm.DB, cfg *configs.AppConfig, authMW fiber.Handler) {
	ctl := userController.NewUserController(db, cfg)

	users := app.Group("/users")
	users.Post("/", ctl.Register)       // POST /users
	users.Post("/login", ctl.Login)     // POST /users/login
	users.Get("/:id", authMW, ctl.GetUser) // GET  /users/:id
}
