// file: internals/features/users/controller/user_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	userDTO "kelasku_backend/internals/features/users/dto"
	userModel "kelasku_backend/internals/features/users/model"
	userService "kelasku_backend/internals/features/users/service"
	helper "kelasku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Config   *configs.AppConfig
	validate *validator.Validate
}

func NewUserController(db *gorm.DB, cfg *configs.AppConfig) *UserController {
	return &UserController{DB: db, Config: cfg, validate: validator.New()}
}

// REGISTER
// POST /users
func (ctl *UserController) Register(c *fiber.Ctx) error {
	var req userDTO.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := ctl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := userService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing gagal")
	}

	user := userModel.UserModel{
		UserName:     req.Name,
		UserEmail:    req.Email,
		UserPassword: hash,
		UserRole:     req.Role,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email sudah terdaftar")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", userDTO.FromUserModel(user))
}

// LOGIN
// POST /users/login
// Email tak dikenal dan password salah menghasilkan response 401 yang
// identik — caller tidak bisa membedakan keduanya.
func (ctl *UserController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := ctl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := ctl.DB.Where("user_email = ?", req.Email).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if err := userService.CheckPasswordHash(user.UserPassword, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := userService.CreateAccessToken(ctl.Config, user)
	if err != nil {
		log.Printf("[ERROR] login: sign token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{"token": token})
}

// GET BY ID
// GET /users/:id (auth)
func (ctl *UserController) GetUser(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.JsonOK(c, "Detail user ditemukan", userDTO.FromUserModel(user))
}
