// file: internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	m "kelasku_backend/internals/features/users/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role" validate:"required,oneof=admin instructor student"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

// UserResponse: payload publik user — tanpa password.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUserModel(u m.UserModel) UserResponse {
	return UserResponse{
		ID:        u.UserID,
		Name:      u.UserName,
		Email:     u.UserEmail,
		Role:      u.UserRole,
		CreatedAt: u.UserCreatedAt,
	}
}
