package entities

import "time"

const (
	RolAdmin    = "ADMIN"
	RolOperador = "OPERADOR"
)

type Usuario struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nombre    string `json:"nombre"`
	Email     string `gorm:"index" json:"email"`
	Rol       string `json:"rol"` // ADMIN|OPERADOR
	CreatedAt time.Time
}
