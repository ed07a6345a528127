package service

import (
	"errors"

	"biocatalog_backend/internal/model"
	"biocatalog_backend/internal/repository"
	"biocatalog_backend/internal/util"

	"gorm.io/gorm"
)

type EvaluacionService struct {
	Repo *repository.EvaluacionRepository
	DB   *gorm.DB
}

func NewEvaluacionService(repo *repository.EvaluacionRepository, db *gorm.DB) *EvaluacionService {
	return &EvaluacionService{Repo: repo, DB: db}
}

// PreguntaInput es la carga ya decodificada del handler. ConceptoID y
// EjercicioID señalan el origen de la pregunta; a lo sumo uno puede estar
// presente.
type PreguntaInput struct {
	TextoPregunta       string
	Imagen              string
	TipoPregunta        string
	Detalles            string
	ExplicacionSolucion string
	Estado              bool
	ConceptoID          *uint
	EjercicioID         *uint
	Opciones            []OpcionInput
}

func (input PreguntaInput) validar() error {
	if input.ConceptoID != nil && input.EjercicioID != nil {
		return util.ErrFuenteAmbigua
	}
	if input.TipoPregunta == "" {
		return util.ErrTipoPreguntaRequerido
	}
	if len(input.Opciones) == 0 {
		return util.ErrOpcionesRequeridas
	}
	for _, opcion := range input.Opciones {
		if opcion.TextoOpcion == "" {
			return util.ErrTextoOpcionRequerido
		}
	}
	return nil
}

func buildOpcionesPregunta(preguntaID uint, inputs []OpcionInput) []model.OpcionPregunta {
	opciones := make([]model.OpcionPregunta, 0, len(inputs))
	for _, in := range inputs {
		opciones = append(opciones, model.OpcionPregunta{
			PreguntaID:  preguntaID,
			TextoOpcion: in.TextoOpcion,
			EsCorrecta:  in.EsCorrecta,
		})
	}
	return opciones
}

// CreatePregunta inserta la pregunta y sus opciones en una transacción.
func (s *EvaluacionService) CreatePregunta(input PreguntaInput) (*model.PreguntaDetalle, error) {
	if err := input.validar(); err != nil {
		return nil, err
	}

	var created model.PreguntaEvaluacion

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		pregunta := model.PreguntaEvaluacion{
			TextoPregunta:       input.TextoPregunta,
			Imagen:              input.Imagen,
			TipoPregunta:        input.TipoPregunta,
			Detalles:            input.Detalles,
			ExplicacionSolucion: input.ExplicacionSolucion,
			Estado:              input.Estado,
			ConceptoID:          input.ConceptoID,
			EjercicioID:         input.EjercicioID,
		}
		if err := tx.Create(&pregunta).Error; err != nil {
			return err
		}

		if opciones := buildOpcionesPregunta(pregunta.PreguntaID, input.Opciones); len(opciones) > 0 {
			if err := tx.Create(&opciones).Error; err != nil {
				return err
			}
		}

		created = pregunta
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.FindDetalle(created.PreguntaID)
}

// UpdatePregunta sobreescribe la pregunta (imagen solo si llegó una nueva) y
// reemplaza el conjunto de opciones completo.
func (s *EvaluacionService) UpdatePregunta(id uint, input PreguntaInput) (*model.PreguntaDetalle, error) {
	if err := input.validar(); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var pregunta model.PreguntaEvaluacion
		if err := tx.First(&pregunta, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrPreguntaNoEncontrada
			}
			return err
		}

		pregunta.TextoPregunta = input.TextoPregunta
		pregunta.TipoPregunta = input.TipoPregunta
		pregunta.Detalles = input.Detalles
		pregunta.ExplicacionSolucion = input.ExplicacionSolucion
		pregunta.Estado = input.Estado
		pregunta.ConceptoID = input.ConceptoID
		pregunta.EjercicioID = input.EjercicioID
		if input.Imagen != "" {
			pregunta.Imagen = input.Imagen
		}

		if err := tx.Save(&pregunta).Error; err != nil {
			return err
		}

		if err := tx.Where("pregunta_id = ?", id).Delete(&model.OpcionPregunta{}).Error; err != nil {
			return err
		}

		if opciones := buildOpcionesPregunta(id, input.Opciones); len(opciones) > 0 {
			if err := tx.Create(&opciones).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.FindDetalle(id)
}

func (s *EvaluacionService) DeletePregunta(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pregunta_id = ?", id).Delete(&model.OpcionPregunta{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.PreguntaEvaluacion{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrPreguntaNoEncontrada
		}
		return nil
	})
}

func (s *EvaluacionService) GetPregunta(id uint) (*model.PreguntaDetalle, error) {
	detalle, err := s.Repo.FindDetalle(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPreguntaNoEncontrada
	}
	return detalle, err
}

func (s *EvaluacionService) ListPreguntas() ([]model.PreguntaDetalle, error) {
	return s.Repo.ListDetalles(repository.PreguntaFilter{})
}

func (s *EvaluacionService) BuscarPreguntas(texto string) ([]model.PreguntaDetalle, error) {
	return s.Repo.ListDetalles(repository.PreguntaFilter{Texto: texto})
}

func (s *EvaluacionService) ListPorEstado(estado bool) ([]model.PreguntaDetalle, error) {
	return s.Repo.ListDetalles(repository.PreguntaFilter{Estado: &estado})
}

func (s *EvaluacionService) ListPorFuente(fuente string) ([]model.PreguntaDetalle, error) {
	switch repository.FuentePregunta(fuente) {
	case repository.FuenteConceptos, repository.FuenteEjercicios:
		return s.Repo.ListDetalles(repository.PreguntaFilter{Fuente: repository.FuentePregunta(fuente)})
	}
	return nil, util.ErrFuenteInvalida
}
