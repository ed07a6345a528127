package service

import (
	"errors"

	"biocatalog_backend/internal/model"
	"biocatalog_backend/internal/repository"
	"biocatalog_backend/internal/util"

	"gorm.io/gorm"
)

type TipoEjercicioService struct {
	Repo *repository.TipoEjercicioRepository
}

func NewTipoEjercicioService(repo *repository.TipoEjercicioRepository) *TipoEjercicioService {
	return &TipoEjercicioService{Repo: repo}
}

func (s *TipoEjercicioService) ListTipos() ([]model.TipoEjercicio, error) {
	return s.Repo.FindAll()
}

func (s *TipoEjercicioService) GetTipo(id uint) (*model.TipoEjercicio, error) {
	tipo, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTipoNoEncontrado
	}
	return tipo, err
}

func (s *TipoEjercicioService) CreateTipo(nombre string) (*model.TipoEjercicio, error) {
	tipo := &model.TipoEjercicio{NombreTipo: nombre}
	if err := s.Repo.Create(tipo); err != nil {
		return nil, err
	}
	return tipo, nil
}

func (s *TipoEjercicioService) UpdateTipo(id uint, nombre string) (*model.TipoEjercicio, error) {
	tipo, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTipoNoEncontrado
	}
	if err != nil {
		return nil, err
	}

	tipo.NombreTipo = nombre
	if err := s.Repo.Update(tipo); err != nil {
		return nil, err
	}
	return tipo, nil
}

func (s *TipoEjercicioService) DeleteTipo(id uint) error {
	rows, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return util.ErrTipoNoEncontrado
	}
	return nil
}
