package repository

import (
	"strings"

	"biocatalog_backend/internal/model"

	"gorm.io/gorm"
)

type ConceptoRepository struct {
	DB *gorm.DB
}

func NewConceptoRepository(db *gorm.DB) *ConceptoRepository {
	return &ConceptoRepository{DB: db}
}

// ConceptoFilter compone los filtros del listado con AND. Estado en nil aplica
// la visibilidad por defecto (solo activos).
type ConceptoFilter struct {
	Titulo      string
	CategoriaID uint
	Estado      *bool
}

const conceptoSelect = "conceptos.concepto_id, conceptos.titulo, conceptos.descripcion, conceptos.imagen, conceptos.categoria_id, categorias.nombre_categoria AS categoria, conceptos.estado"

func (r *ConceptoRepository) FindAll(filter ConceptoFilter) ([]model.ConceptoDetalle, error) {
	query := r.DB.Table("conceptos").
		Select(conceptoSelect).
		Joins("JOIN categorias ON conceptos.categoria_id = categorias.categoria_id")

	if filter.Titulo != "" {
		query = query.Where("LOWER(conceptos.titulo) LIKE ?", "%"+strings.ToLower(filter.Titulo)+"%")
	}
	if filter.CategoriaID > 0 {
		query = query.Where("conceptos.categoria_id = ?", filter.CategoriaID)
	}
	if filter.Estado != nil {
		query = query.Where("conceptos.estado = ?", *filter.Estado)
	} else {
		query = query.Where("conceptos.estado = ?", true)
	}

	conceptos := make([]model.ConceptoDetalle, 0)
	err := query.Scan(&conceptos).Error
	return conceptos, err
}

func (r *ConceptoRepository) FindDetalle(id uint) (*model.ConceptoDetalle, error) {
	var concepto model.ConceptoDetalle
	res := r.DB.Table("conceptos").
		Select(conceptoSelect).
		Joins("JOIN categorias ON conceptos.categoria_id = categorias.categoria_id").
		Where("conceptos.concepto_id = ?", id).
		Scan(&concepto)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &concepto, nil
}

func (r *ConceptoRepository) FindByID(id uint) (*model.Concepto, error) {
	var concepto model.Concepto
	err := r.DB.First(&concepto, id).Error
	return &concepto, err
}

func (r *ConceptoRepository) Create(concepto *model.Concepto) error {
	return r.DB.Create(concepto).Error
}

func (r *ConceptoRepository) Update(concepto *model.Concepto) error {
	return r.DB.Save(concepto).Error
}

func (r *ConceptoRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&model.Concepto{}, id)
	return res.RowsAffected, res.Error
}

// ImageFilenames lista las imágenes referenciadas, para el barrido de
// archivos huérfanos.
func (r *ConceptoRepository) ImageFilenames() ([]string, error) {
	var imagenes []string
	err := r.DB.Model(&model.Concepto{}).
		Where("imagen IS NOT NULL AND imagen <> ''").
		Pluck("imagen", &imagenes).Error
	return imagenes, err
}
