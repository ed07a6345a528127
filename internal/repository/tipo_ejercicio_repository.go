package repository

import (
	"biocatalog_backend/internal/model"

	"gorm.io/gorm"
)

type TipoEjercicioRepository struct {
	DB *gorm.DB
}

func NewTipoEjercicioRepository(db *gorm.DB) *TipoEjercicioRepository {
	return &TipoEjercicioRepository{DB: db}
}

func (r *TipoEjercicioRepository) FindAll() ([]model.TipoEjercicio, error) {
	tipos := make([]model.TipoEjercicio, 0)
	err := r.DB.Order("tipo_id").Find(&tipos).Error
	return tipos, err
}

func (r *TipoEjercicioRepository) FindByID(id uint) (*model.TipoEjercicio, error) {
	var tipo model.TipoEjercicio
	err := r.DB.First(&tipo, id).Error
	return &tipo, err
}

func (r *TipoEjercicioRepository) Create(tipo *model.TipoEjercicio) error {
	return r.DB.Create(tipo).Error
}

func (r *TipoEjercicioRepository) Update(tipo *model.TipoEjercicio) error {
	return r.DB.Save(tipo).Error
}

func (r *TipoEjercicioRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&model.TipoEjercicio{}, id)
	return res.RowsAffected, res.Error
}
