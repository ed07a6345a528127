package model

// TipoOpcion discrimina los roles de las filas de opciones_ejercicios, que
// comparten tabla.
type TipoOpcion string

const (
	OpcionMultiple    TipoOpcion = "multiple"
	OpcionInteractiva TipoOpcion = "interactiva"
)

// Ejercicio es la fila padre; sus opciones y celdas Punnett viven en tablas
// hijas y se reemplazan en bloque en cada actualización.
type Ejercicio struct {
	EjercicioID         uint   `gorm:"primaryKey;autoIncrement" json:"ejercicio_id"`
	Pregunta            string `gorm:"type:text;not null" json:"pregunta"`
	Imagen              string `gorm:"size:255" json:"imagen"`
	TipoID              uint   `gorm:"index;not null" json:"tipo_id"`
	Detalles            string `gorm:"type:text" json:"detalles"`
	MostrarSolucion     bool   `gorm:"not null" json:"mostrar_solucion"`
	ExplicacionSolucion string `gorm:"type:text" json:"explicacion_solucion"`
	Estado              bool   `gorm:"not null" json:"estado"`
}

func (Ejercicio) TableName() string {
	return "ejercicios"
}

type OpcionEjercicio struct {
	OpcionID    uint       `gorm:"primaryKey;autoIncrement" json:"opcion_id"`
	EjercicioID uint       `gorm:"index;not null" json:"ejercicio_id"`
	TextoOpcion string     `gorm:"type:text;not null" json:"texto_opcion"`
	EsCorrecta  bool       `gorm:"not null" json:"es_correcta"`
	Tipo        TipoOpcion `gorm:"size:20;not null" json:"tipo"`
}

func (OpcionEjercicio) TableName() string {
	return "opciones_ejercicios"
}

type CeldaPunnett struct {
	CeldaID     uint   `gorm:"primaryKey;autoIncrement" json:"celda_id"`
	EjercicioID uint   `gorm:"index;not null" json:"ejercicio_id"`
	Alelo1      string `gorm:"size:10;not null" json:"alelo1"`
	Alelo2      string `gorm:"size:10;not null" json:"alelo2"`
	Resultado   string `gorm:"size:20;not null" json:"resultado"`
}

func (CeldaPunnett) TableName() string {
	return "matriz_punnett"
}

// EjercicioDetalle reensambla el padre con sus colecciones hijas. Las
// colecciones vacías serializan como [] y nunca como null.
type EjercicioDetalle struct {
	Ejercicio
	NombreTipo           string            `json:"nombre_tipo,omitempty"`
	OpcionesInteractivas []OpcionEjercicio `json:"opciones_interactivas"`
	OpcionesMultiples    []OpcionEjercicio `json:"opciones_multiples"`
	MatrizPunnett        []CeldaPunnett    `json:"matriz_punnett"`
}
