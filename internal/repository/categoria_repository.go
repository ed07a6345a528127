package repository

import (
	"biocatalog_backend/internal/model"

	"gorm.io/gorm"
)

type CategoriaRepository struct {
	DB *gorm.DB
}

func NewCategoriaRepository(db *gorm.DB) *CategoriaRepository {
	return &CategoriaRepository{DB: db}
}

func (r *CategoriaRepository) FindAll() ([]model.Categoria, error) {
	categorias := make([]model.Categoria, 0)
	err := r.DB.Find(&categorias).Error
	return categorias, err
}

func (r *CategoriaRepository) FindByID(id uint) (*model.Categoria, error) {
	var categoria model.Categoria
	err := r.DB.First(&categoria, id).Error
	return &categoria, err
}

func (r *CategoriaRepository) Create(categoria *model.Categoria) error {
	return r.DB.Create(categoria).Error
}

func (r *CategoriaRepository) Update(categoria *model.Categoria) error {
	return r.DB.Save(categoria).Error
}

// Delete devuelve el número de filas eliminadas; cero significa que la
// categoría no existía.
func (r *CategoriaRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&model.Categoria{}, id)
	return res.RowsAffected, res.Error
}
