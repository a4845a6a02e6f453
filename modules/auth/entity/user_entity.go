package entity

import (
	"campus-recommender/core/entity"
)

// User is an account holder; Role is either admin or student
type User struct {
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         string `db:"role" json:"role"`
	entity.BaseEntity
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

func (u *User) IsStudent() bool {
	return u.Role == "student"
}
