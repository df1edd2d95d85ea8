// file: internals/features/users/model/user_model.go
package model

import (
	"time"
)

// UserModel merepresentasikan tabel users di database.
// Password tidak pernah ikut ter-serialize (json:"-").
type UserModel struct {
	UserID        uint      `gorm:"primaryKey;autoIncrement;column:user_id" json:"id"`
	UserName      string    `gorm:"size:120;not null;column:user_name" json:"name" validate:"required,min=3,max=120"`
	UserEmail     string    `gorm:"size:255;uniqueIndex;not null;column:user_email" json:"email" validate:"required,email"`
	UserPassword  string    `gorm:"not null;column:user_password" json:"-"`
	UserRole      string    `gorm:"type:varchar(20);not null;default:'student';column:user_role" json:"role" validate:"required,oneof=admin instructor student"`
	UserCreatedAt time.Time `gorm:"autoCreateTime;column:user_created_at" json:"created_at"`
	UserUpdatedAt time.Time `gorm:"autoUpdateTime;column:user_updated_at" json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }
