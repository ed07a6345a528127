package service

import (
	"errors"

	"biocatalog_backend/internal/model"
	"biocatalog_backend/internal/repository"
	"biocatalog_backend/internal/util"

	"gorm.io/gorm"
)

type CategoriaService struct {
	Repo *repository.CategoriaRepository
}

func NewCategoriaService(repo *repository.CategoriaRepository) *CategoriaService {
	return &CategoriaService{Repo: repo}
}

func (s *CategoriaService) ListCategorias() ([]model.Categoria, error) {
	return s.Repo.FindAll()
}

func (s *CategoriaService) GetCategoria(id uint) (*model.Categoria, error) {
	categoria, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCategoriaNoEncontrada
	}
	return categoria, err
}

func (s *CategoriaService) CreateCategoria(nombre string) (*model.Categoria, error) {
	categoria := &model.Categoria{NombreCategoria: nombre}
	if err := s.Repo.Create(categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

func (s *CategoriaService) UpdateCategoria(id uint, nombre string) (*model.Categoria, error) {
	categoria, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCategoriaNoEncontrada
	}
	if err != nil {
		return nil, err
	}

	categoria.NombreCategoria = nombre
	if err := s.Repo.Update(categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

func (s *CategoriaService) DeleteCategoria(id uint) error {
	rows, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return util.ErrCategoriaNoEncontrada
	}
	return nil
}
