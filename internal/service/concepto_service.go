package service

import (
	"errors"

	"biocatalog_backend/internal/model"
	"biocatalog_backend/internal/repository"
	"biocatalog_backend/internal/util"

	"gorm.io/gorm"
)

type ConceptoService struct {
	Repo *repository.ConceptoRepository
}

func NewConceptoService(repo *repository.ConceptoRepository) *ConceptoService {
	return &ConceptoService{Repo: repo}
}

// ConceptoInput es la carga ya validada del handler. Imagen es el nombre del
// archivo recién subido, o vacío para conservar el existente en la
// actualización.
type ConceptoInput struct {
	Titulo      string
	Descripcion string
	Imagen      string
	CategoriaID uint
	Estado      bool
}

func (s *ConceptoService) ListConceptos(titulo string, categoriaID uint) ([]model.ConceptoDetalle, error) {
	return s.Repo.FindAll(repository.ConceptoFilter{
		Titulo:      titulo,
		CategoriaID: categoriaID,
	})
}

func (s *ConceptoService) ListActivos() ([]model.ConceptoDetalle, error) {
	estado := true
	return s.Repo.FindAll(repository.ConceptoFilter{Estado: &estado})
}

func (s *ConceptoService) ListPorEstado(estado bool) ([]model.ConceptoDetalle, error) {
	return s.Repo.FindAll(repository.ConceptoFilter{Estado: &estado})
}

func (s *ConceptoService) GetConcepto(id uint) (*model.ConceptoDetalle, error) {
	concepto, err := s.Repo.FindDetalle(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrConceptoNoEncontrado
	}
	return concepto, err
}

func (s *ConceptoService) CreateConcepto(input ConceptoInput) (*model.ConceptoDetalle, error) {
	concepto := &model.Concepto{
		Titulo:      input.Titulo,
		Descripcion: input.Descripcion,
		Imagen:      input.Imagen,
		CategoriaID: input.CategoriaID,
		Estado:      input.Estado,
	}
	if err := s.Repo.Create(concepto); err != nil {
		return nil, err
	}
	return s.GetConcepto(concepto.ConceptoID)
}

func (s *ConceptoService) UpdateConcepto(id uint, input ConceptoInput) (*model.ConceptoDetalle, error) {
	concepto, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrConceptoNoEncontrado
	}
	if err != nil {
		return nil, err
	}

	concepto.Titulo = input.Titulo
	concepto.Descripcion = input.Descripcion
	concepto.CategoriaID = input.CategoriaID
	concepto.Estado = input.Estado
	// La imagen solo se sobreescribe si llegó un archivo nuevo.
	if input.Imagen != "" {
		concepto.Imagen = input.Imagen
	}

	if err := s.Repo.Update(concepto); err != nil {
		return nil, err
	}
	return s.GetConcepto(id)
}

func (s *ConceptoService) DeleteConcepto(id uint) error {
	rows, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return util.ErrConceptoNoEncontrado
	}
	return nil
}
