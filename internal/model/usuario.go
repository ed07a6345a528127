package model

import "time"

type Rol struct {
	RolID     uint   `gorm:"primaryKey;autoIncrement" json:"rol_id"`
	NombreRol string `gorm:"size:50;unique;not null" json:"nombre_rol"`
}

func (Rol) TableName() string {
	return "roles"
}

type Usuario struct {
	UsuarioID      uint      `gorm:"primaryKey;autoIncrement" json:"usuario_id"`
	Nombre         string    `gorm:"size:100;not null" json:"nombre"`
	Email          string    `gorm:"size:100;unique;not null" json:"email"`
	ContrasenaHash string    `gorm:"size:100;not null" json:"-"`
	RolID          uint      `gorm:"index;not null" json:"rol_id"`
	FechaRegistro  time.Time `gorm:"autoCreateTime" json:"fecha_registro"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

// UsuarioDetalle es la vista de lectura con el nombre del rol resuelto y sin
// el hash de contraseña.
type UsuarioDetalle struct {
	UsuarioID     uint      `json:"usuario_id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Rol           string    `json:"rol"`
	FechaRegistro time.Time `json:"fecha_registro"`
}
