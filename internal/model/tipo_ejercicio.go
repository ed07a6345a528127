package model

// TipoEjercicio clasifica los ejercicios (selección múltiple, Punnett, ...).
type TipoEjercicio struct {
	TipoID     uint   `gorm:"primaryKey;autoIncrement" json:"tipo_id"`
	NombreTipo string `gorm:"size:50;not null" json:"nombre_tipo"`
}

func (TipoEjercicio) TableName() string {
	return "tipo_ejercicios"
}
