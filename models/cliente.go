package models

import "gorm.io/gorm"

// Cliente representa a una persona de la cartera de la agencia.
type Cliente struct {
	gorm.Model
	Nombre    string `json:"nombre" gorm:"not null"`
	Apellido  string `json:"apellido" gorm:"not null"`
	Documento string `json:"documento" gorm:"uniqueIndex"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Domicilio string `json:"domicilio"`
}

func (Cliente) TableName() string { return "clientes" }
