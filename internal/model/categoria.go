package model

// Categoria agrupa conceptos dentro del catálogo.
type Categoria struct {
	CategoriaID     uint   `gorm:"primaryKey;autoIncrement" json:"categoria_id"`
	NombreCategoria string `gorm:"size:100;not null" json:"nombre_categoria"`
}

func (Categoria) TableName() string {
	return "categorias"
}
