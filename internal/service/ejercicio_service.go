package service

import (
	"errors"

	"biocatalog_backend/internal/model"
	"biocatalog_backend/internal/repository"
	"biocatalog_backend/internal/util"

	"gorm.io/gorm"
)

// tipoSeleccionMultipleID es el id sembrado del tipo "Selección Múltiple";
// las búsquedas por tipo dependen de él igual que el esquema original.
const tipoSeleccionMultipleID = 1

type EjercicioService struct {
	Repo *repository.EjercicioRepository
	DB   *gorm.DB
}

func NewEjercicioService(repo *repository.EjercicioRepository, db *gorm.DB) *EjercicioService {
	return &EjercicioService{Repo: repo, DB: db}
}

type OpcionInput struct {
	TextoOpcion string `json:"texto_opcion" binding:"required"`
	EsCorrecta  bool   `json:"es_correcta"`
}

type CeldaPunnettInput struct {
	Alelo1    string `json:"alelo1" binding:"required"`
	Alelo2    string `json:"alelo2" binding:"required"`
	Resultado string `json:"resultado" binding:"required"`
}

// EjercicioInput es la carga ya decodificada del handler: el padre más las
// colecciones hijas tipadas.
type EjercicioInput struct {
	Pregunta             string
	Imagen               string
	TipoID               uint
	Detalles             string
	MostrarSolucion      bool
	ExplicacionSolucion  string
	Estado               bool
	OpcionesMultiples    []OpcionInput
	OpcionesInteractivas []OpcionInput
	MatrizPunnett        []CeldaPunnettInput
}

func buildOpciones(ejercicioID uint, inputs []OpcionInput, tipo model.TipoOpcion) []model.OpcionEjercicio {
	opciones := make([]model.OpcionEjercicio, 0, len(inputs))
	for _, in := range inputs {
		opciones = append(opciones, model.OpcionEjercicio{
			EjercicioID: ejercicioID,
			TextoOpcion: in.TextoOpcion,
			EsCorrecta:  in.EsCorrecta,
			Tipo:        tipo,
		})
	}
	return opciones
}

func buildCeldas(ejercicioID uint, inputs []CeldaPunnettInput) []model.CeldaPunnett {
	celdas := make([]model.CeldaPunnett, 0, len(inputs))
	for _, in := range inputs {
		celdas = append(celdas, model.CeldaPunnett{
			EjercicioID: ejercicioID,
			Alelo1:      in.Alelo1,
			Alelo2:      in.Alelo2,
			Resultado:   in.Resultado,
		})
	}
	return celdas
}

func (s *EjercicioService) insertarHijas(tx *gorm.DB, ejercicioID uint, input EjercicioInput) error {
	if opciones := buildOpciones(ejercicioID, input.OpcionesMultiples, model.OpcionMultiple); len(opciones) > 0 {
		if err := tx.Create(&opciones).Error; err != nil {
			return err
		}
	}
	if opciones := buildOpciones(ejercicioID, input.OpcionesInteractivas, model.OpcionInteractiva); len(opciones) > 0 {
		if err := tx.Create(&opciones).Error; err != nil {
			return err
		}
	}
	if celdas := buildCeldas(ejercicioID, input.MatrizPunnett); len(celdas) > 0 {
		if err := tx.Create(&celdas).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateEjercicio inserta el padre y todas las colecciones hijas en una sola
// transacción; cualquier fallo revierte el conjunto completo.
func (s *EjercicioService) CreateEjercicio(input EjercicioInput) (*model.EjercicioDetalle, error) {
	var created model.Ejercicio

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ejercicio := model.Ejercicio{
			Pregunta:            input.Pregunta,
			Imagen:              input.Imagen,
			TipoID:              input.TipoID,
			Detalles:            input.Detalles,
			MostrarSolucion:     input.MostrarSolucion,
			ExplicacionSolucion: input.ExplicacionSolucion,
			Estado:              input.Estado,
		}
		if err := tx.Create(&ejercicio).Error; err != nil {
			return err
		}

		if err := s.insertarHijas(tx, ejercicio.EjercicioID, input); err != nil {
			return err
		}

		created = ejercicio
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.FindDetalle(created.EjercicioID)
}

// UpdateEjercicio sobreescribe el padre (la imagen solo si llegó una nueva) y
// reemplaza el conjunto completo de filas hijas: borrar todo y reinsertar,
// nunca parcheo incremental.
func (s *EjercicioService) UpdateEjercicio(id uint, input EjercicioInput) (*model.EjercicioDetalle, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var ejercicio model.Ejercicio
		if err := tx.First(&ejercicio, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrEjercicioNoEncontrado
			}
			return err
		}

		ejercicio.Pregunta = input.Pregunta
		ejercicio.TipoID = input.TipoID
		ejercicio.Detalles = input.Detalles
		ejercicio.MostrarSolucion = input.MostrarSolucion
		ejercicio.ExplicacionSolucion = input.ExplicacionSolucion
		ejercicio.Estado = input.Estado
		if input.Imagen != "" {
			ejercicio.Imagen = input.Imagen
		}

		if err := tx.Save(&ejercicio).Error; err != nil {
			return err
		}

		if err := tx.Where("ejercicio_id = ?", id).Delete(&model.OpcionEjercicio{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ejercicio_id = ?", id).Delete(&model.CeldaPunnett{}).Error; err != nil {
			return err
		}

		return s.insertarHijas(tx, id, input)
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.FindDetalle(id)
}

// DeleteEjercicio elimina primero las filas hijas y después el padre, todo en
// una transacción; si el padre no existe nada queda borrado.
func (s *EjercicioService) DeleteEjercicio(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ejercicio_id = ?", id).Delete(&model.OpcionEjercicio{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ejercicio_id = ?", id).Delete(&model.CeldaPunnett{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.Ejercicio{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrEjercicioNoEncontrado
		}
		return nil
	})
}

func (s *EjercicioService) GetEjercicio(id uint) (*model.EjercicioDetalle, error) {
	detalle, err := s.Repo.FindDetalle(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEjercicioNoEncontrado
	}
	return detalle, err
}

func (s *EjercicioService) ListEjercicios() ([]model.EjercicioDetalle, error) {
	return s.Repo.ListDetalles(repository.EjercicioFilter{})
}

// ListInteractivos devuelve los ejercicios activos que tienen tanto opciones
// múltiples como matriz de Punnett.
func (s *EjercicioService) ListInteractivos() ([]model.EjercicioDetalle, error) {
	return s.Repo.ListDetalles(repository.EjercicioFilter{RequiereAmbasHijas: true})
}

func (s *EjercicioService) ListConOpcionesMultiples() ([]model.EjercicioDetalle, error) {
	return s.Repo.ListDetalles(repository.EjercicioFilter{RequiereMultiples: true})
}

func (s *EjercicioService) ListOpcionMultipleActivos() ([]model.EjercicioDetalle, error) {
	return s.Repo.ListDetalles(repository.EjercicioFilter{TipoID: tipoSeleccionMultipleID})
}

func (s *EjercicioService) BuscarPorPregunta(pregunta string) ([]model.EjercicioDetalle, error) {
	return s.Repo.ListDetalles(repository.EjercicioFilter{Pregunta: pregunta})
}

func (s *EjercicioService) BuscarPorTipo(tipo string) ([]model.EjercicioDetalle, error) {
	switch tipo {
	case "":
		return nil, util.ErrTipoEjercicioRequerido
	case "seleccion_multiple":
		return s.Repo.ListDetalles(repository.EjercicioFilter{TipoID: tipoSeleccionMultipleID})
	case "punnett":
		return s.Repo.ListDetalles(repository.EjercicioFilter{RequiereAmbasHijas: true})
	}
	return nil, util.ErrTipoEjercicioInvalido
}

func (s *EjercicioService) BuscarPorEstado(estado bool) ([]model.EjercicioDetalle, error) {
	return s.Repo.ListDetalles(repository.EjercicioFilter{Estado: &estado})
}
