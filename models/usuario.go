package models

import "gorm.io/gorm"

type Usuario struct {
	gorm.Model
	Login        string `json:"login" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
}

func (Usuario) TableName() string { return "usuarios" }
