package model

// Concepto es un artículo del catálogo, opcionalmente con una imagen asociada.
type Concepto struct {
	ConceptoID  uint   `gorm:"primaryKey;autoIncrement" json:"concepto_id"`
	Titulo      string `gorm:"size:255;not null" json:"titulo"`
	Descripcion string `gorm:"type:text;not null" json:"descripcion"`
	Imagen      string `gorm:"size:255" json:"imagen"`
	CategoriaID uint   `gorm:"index;not null" json:"categoria_id"`
	// Sin default en columna: un default de GORM descartaría el false
	// explícito en el INSERT. El valor siempre llega fijado por el servicio.
	Estado bool `gorm:"not null" json:"estado"`
}

func (Concepto) TableName() string {
	return "conceptos"
}

// ConceptoDetalle es la vista de lectura con el nombre de la categoría resuelto.
type ConceptoDetalle struct {
	ConceptoID  uint   `json:"concepto_id"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Imagen      string `json:"imagen"`
	CategoriaID uint   `json:"categoria_id"`
	Categoria   string `json:"categoria"`
	Estado      bool   `json:"estado"`
}
