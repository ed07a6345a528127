package model

// PreguntaEvaluacion es un ítem de evaluación. Puede referenciar un concepto o
// un ejercicio de origen; nunca ambos a la vez (se valida en el servicio, el
// esquema solo tiene dos columnas anulables).
type PreguntaEvaluacion struct {
	PreguntaID          uint   `gorm:"primaryKey;autoIncrement" json:"pregunta_id"`
	TextoPregunta       string `gorm:"type:text;not null" json:"texto_pregunta"`
	Imagen              string `gorm:"size:255" json:"imagen"`
	TipoPregunta        string `gorm:"size:50;not null" json:"tipo_pregunta"`
	Detalles            string `gorm:"type:text" json:"detalles"`
	ExplicacionSolucion string `gorm:"type:text" json:"explicacion_solucion"`
	Estado              bool   `gorm:"not null" json:"estado"`
	ConceptoID          *uint  `gorm:"index" json:"concepto_id"`
	EjercicioID         *uint  `gorm:"index" json:"ejercicio_id"`
}

func (PreguntaEvaluacion) TableName() string {
	return "preguntas_evaluacion"
}

type OpcionPregunta struct {
	OpcionID    uint   `gorm:"primaryKey;autoIncrement" json:"opcion_id"`
	PreguntaID  uint   `gorm:"index;not null" json:"pregunta_id"`
	TextoOpcion string `gorm:"type:text;not null" json:"texto_opcion"`
	EsCorrecta  bool   `gorm:"not null" json:"es_correcta"`
}

func (OpcionPregunta) TableName() string {
	return "opciones_preguntas"
}

// PreguntaDetalle agrega los títulos de origen y las opciones de respuesta.
type PreguntaDetalle struct {
	PreguntaEvaluacion
	ConceptoTitulo    string           `json:"concepto_titulo,omitempty"`
	EjercicioPregunta string           `json:"ejercicio_pregunta,omitempty"`
	Opciones          []OpcionPregunta `json:"opciones"`
}
