package repository

import (
	"strings"

	"biocatalog_backend/internal/model"

	"gorm.io/gorm"
)

type EjercicioRepository struct {
	DB *gorm.DB
}

func NewEjercicioRepository(db *gorm.DB) *EjercicioRepository {
	return &EjercicioRepository{DB: db}
}

// EjercicioFilter compone los filtros del listado con AND. Estado en nil
// aplica la visibilidad por defecto (solo activos). Los requisitos de
// colecciones hijas no vacías se aplican tras el reensamblado, no en SQL.
type EjercicioFilter struct {
	Pregunta           string
	TipoID             uint
	Estado             *bool
	RequiereMultiples  bool
	RequierePunnett    bool
	RequiereAmbasHijas bool
}

// FindDetalle reensambla un ejercicio con sus tres colecciones hijas. Una
// colección sin filas queda como slice vacío, nunca nil.
func (r *EjercicioRepository) FindDetalle(id uint) (*model.EjercicioDetalle, error) {
	var ejercicio model.Ejercicio
	if err := r.DB.First(&ejercicio, id).Error; err != nil {
		return nil, err
	}

	detalle := &model.EjercicioDetalle{
		Ejercicio:            ejercicio,
		OpcionesInteractivas: make([]model.OpcionEjercicio, 0),
		OpcionesMultiples:    make([]model.OpcionEjercicio, 0),
		MatrizPunnett:        make([]model.CeldaPunnett, 0),
	}

	var tipo model.TipoEjercicio
	if err := r.DB.First(&tipo, ejercicio.TipoID).Error; err == nil {
		detalle.NombreTipo = tipo.NombreTipo
	}

	var opciones []model.OpcionEjercicio
	if err := r.DB.Where("ejercicio_id = ?", id).Find(&opciones).Error; err != nil {
		return nil, err
	}
	for _, o := range opciones {
		switch o.Tipo {
		case model.OpcionInteractiva:
			detalle.OpcionesInteractivas = append(detalle.OpcionesInteractivas, o)
		default:
			detalle.OpcionesMultiples = append(detalle.OpcionesMultiples, o)
		}
	}

	var celdas []model.CeldaPunnett
	if err := r.DB.Where("ejercicio_id = ?", id).Find(&celdas).Error; err != nil {
		return nil, err
	}
	detalle.MatrizPunnett = append(detalle.MatrizPunnett, celdas...)

	return detalle, nil
}

// ListDetalles trae los padres filtrados y después todas las filas hijas del
// conjunto completo en una consulta por tabla hija, redistribuyéndolas en
// memoria por ejercicio_id. El número de consultas no depende del número de
// ejercicios.
func (r *EjercicioRepository) ListDetalles(filter EjercicioFilter) ([]model.EjercicioDetalle, error) {
	query := r.DB.Model(&model.Ejercicio{})

	if filter.Pregunta != "" {
		query = query.Where("LOWER(pregunta) LIKE ?", "%"+strings.ToLower(filter.Pregunta)+"%")
	}
	if filter.TipoID > 0 {
		query = query.Where("tipo_id = ?", filter.TipoID)
	}
	if filter.Estado != nil {
		query = query.Where("estado = ?", *filter.Estado)
	} else {
		query = query.Where("estado = ?", true)
	}

	var ejercicios []model.Ejercicio
	if err := query.Order("ejercicio_id DESC").Find(&ejercicios).Error; err != nil {
		return nil, err
	}

	detalles := make([]model.EjercicioDetalle, 0, len(ejercicios))
	if len(ejercicios) == 0 {
		return detalles, nil
	}

	ids := make([]uint, 0, len(ejercicios))
	tipoIDs := make([]uint, 0, len(ejercicios))
	for _, e := range ejercicios {
		ids = append(ids, e.EjercicioID)
		tipoIDs = append(tipoIDs, e.TipoID)
	}

	var tipos []model.TipoEjercicio
	if err := r.DB.Where("tipo_id IN ?", tipoIDs).Find(&tipos).Error; err != nil {
		return nil, err
	}
	nombresTipo := make(map[uint]string, len(tipos))
	for _, t := range tipos {
		nombresTipo[t.TipoID] = t.NombreTipo
	}

	var opciones []model.OpcionEjercicio
	if err := r.DB.Where("ejercicio_id IN ?", ids).Find(&opciones).Error; err != nil {
		return nil, err
	}
	multiplesPorID := make(map[uint][]model.OpcionEjercicio)
	interactivasPorID := make(map[uint][]model.OpcionEjercicio)
	for _, o := range opciones {
		if o.Tipo == model.OpcionInteractiva {
			interactivasPorID[o.EjercicioID] = append(interactivasPorID[o.EjercicioID], o)
		} else {
			multiplesPorID[o.EjercicioID] = append(multiplesPorID[o.EjercicioID], o)
		}
	}

	var celdas []model.CeldaPunnett
	if err := r.DB.Where("ejercicio_id IN ?", ids).Find(&celdas).Error; err != nil {
		return nil, err
	}
	celdasPorID := make(map[uint][]model.CeldaPunnett)
	for _, c := range celdas {
		celdasPorID[c.EjercicioID] = append(celdasPorID[c.EjercicioID], c)
	}

	for _, e := range ejercicios {
		detalle := model.EjercicioDetalle{
			Ejercicio:            e,
			NombreTipo:           nombresTipo[e.TipoID],
			OpcionesInteractivas: make([]model.OpcionEjercicio, 0),
			OpcionesMultiples:    make([]model.OpcionEjercicio, 0),
			MatrizPunnett:        make([]model.CeldaPunnett, 0),
		}
		detalle.OpcionesInteractivas = append(detalle.OpcionesInteractivas, interactivasPorID[e.EjercicioID]...)
		detalle.OpcionesMultiples = append(detalle.OpcionesMultiples, multiplesPorID[e.EjercicioID]...)
		detalle.MatrizPunnett = append(detalle.MatrizPunnett, celdasPorID[e.EjercicioID]...)

		if filter.RequiereMultiples && len(detalle.OpcionesMultiples) == 0 {
			continue
		}
		if filter.RequierePunnett && len(detalle.MatrizPunnett) == 0 {
			continue
		}
		if filter.RequiereAmbasHijas && (len(detalle.OpcionesMultiples) == 0 || len(detalle.MatrizPunnett) == 0) {
			continue
		}

		detalles = append(detalles, detalle)
	}

	return detalles, nil
}

func (r *EjercicioRepository) FindByID(id uint) (*model.Ejercicio, error) {
	var ejercicio model.Ejercicio
	err := r.DB.First(&ejercicio, id).Error
	return &ejercicio, err
}

func (r *EjercicioRepository) ImageFilenames() ([]string, error) {
	var imagenes []string
	err := r.DB.Model(&model.Ejercicio{}).
		Where("imagen IS NOT NULL AND imagen <> ''").
		Pluck("imagen", &imagenes).Error
	return imagenes, err
}
