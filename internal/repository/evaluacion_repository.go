package repository

import (
	"strings"

	"biocatalog_backend/internal/model"

	"gorm.io/gorm"
)

type EvaluacionRepository struct {
	DB *gorm.DB
}

func NewEvaluacionRepository(db *gorm.DB) *EvaluacionRepository {
	return &EvaluacionRepository{DB: db}
}

// FuentePregunta restringe el listado a preguntas ligadas a un concepto o a
// un ejercicio.
type FuentePregunta string

const (
	FuenteConceptos  FuentePregunta = "conceptos"
	FuenteEjercicios FuentePregunta = "ejercicios"
)

// PreguntaFilter compone los filtros con AND. Estado en nil aplica la
// visibilidad por defecto (solo activas); Texto busca por subcadena sin
// distinguir mayúsculas.
type PreguntaFilter struct {
	Texto  string
	Estado *bool
	Fuente FuentePregunta
}

type preguntaRow struct {
	model.PreguntaEvaluacion
	ConceptoTitulo    string
	EjercicioPregunta string
}

const preguntaSelect = "preguntas_evaluacion.*, conceptos.titulo AS concepto_titulo, ejercicios.pregunta AS ejercicio_pregunta"

func (r *EvaluacionRepository) baseQuery() *gorm.DB {
	return r.DB.Table("preguntas_evaluacion").
		Select(preguntaSelect).
		Joins("LEFT JOIN conceptos ON preguntas_evaluacion.concepto_id = conceptos.concepto_id").
		Joins("LEFT JOIN ejercicios ON preguntas_evaluacion.ejercicio_id = ejercicios.ejercicio_id")
}

// ListDetalles trae las preguntas filtradas y después las opciones de todo el
// conjunto en una única consulta, redistribuidas en memoria por pregunta_id.
func (r *EvaluacionRepository) ListDetalles(filter PreguntaFilter) ([]model.PreguntaDetalle, error) {
	query := r.baseQuery()

	if filter.Texto != "" {
		query = query.Where("LOWER(preguntas_evaluacion.texto_pregunta) LIKE ?", "%"+strings.ToLower(filter.Texto)+"%")
	}
	if filter.Estado != nil {
		query = query.Where("preguntas_evaluacion.estado = ?", *filter.Estado)
	} else {
		query = query.Where("preguntas_evaluacion.estado = ?", true)
	}
	switch filter.Fuente {
	case FuenteConceptos:
		query = query.Where("preguntas_evaluacion.concepto_id IS NOT NULL")
	case FuenteEjercicios:
		query = query.Where("preguntas_evaluacion.ejercicio_id IS NOT NULL")
	}

	var rows []preguntaRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	detalles := make([]model.PreguntaDetalle, 0, len(rows))
	if len(rows) == 0 {
		return detalles, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.PreguntaID)
	}

	var opciones []model.OpcionPregunta
	if err := r.DB.Where("pregunta_id IN ?", ids).Find(&opciones).Error; err != nil {
		return nil, err
	}
	opcionesPorID := make(map[uint][]model.OpcionPregunta)
	for _, o := range opciones {
		opcionesPorID[o.PreguntaID] = append(opcionesPorID[o.PreguntaID], o)
	}

	for _, row := range rows {
		detalle := model.PreguntaDetalle{
			PreguntaEvaluacion: row.PreguntaEvaluacion,
			ConceptoTitulo:     row.ConceptoTitulo,
			EjercicioPregunta:  row.EjercicioPregunta,
			Opciones:           make([]model.OpcionPregunta, 0),
		}
		detalle.Opciones = append(detalle.Opciones, opcionesPorID[row.PreguntaID]...)
		detalles = append(detalles, detalle)
	}

	return detalles, nil
}

func (r *EvaluacionRepository) FindDetalle(id uint) (*model.PreguntaDetalle, error) {
	var row preguntaRow
	res := r.baseQuery().
		Where("preguntas_evaluacion.pregunta_id = ?", id).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	detalle := &model.PreguntaDetalle{
		PreguntaEvaluacion: row.PreguntaEvaluacion,
		ConceptoTitulo:     row.ConceptoTitulo,
		EjercicioPregunta:  row.EjercicioPregunta,
		Opciones:           make([]model.OpcionPregunta, 0),
	}

	var opciones []model.OpcionPregunta
	if err := r.DB.Where("pregunta_id = ?", id).Find(&opciones).Error; err != nil {
		return nil, err
	}
	detalle.Opciones = append(detalle.Opciones, opciones...)

	return detalle, nil
}

func (r *EvaluacionRepository) FindByID(id uint) (*model.PreguntaEvaluacion, error) {
	var pregunta model.PreguntaEvaluacion
	err := r.DB.First(&pregunta, id).Error
	return &pregunta, err
}

func (r *EvaluacionRepository) ImageFilenames() ([]string, error) {
	var imagenes []string
	err := r.DB.Model(&model.PreguntaEvaluacion{}).
		Where("imagen IS NOT NULL AND imagen <> ''").
		Pluck("imagen", &imagenes).Error
	return imagenes, err
}
