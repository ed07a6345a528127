package repository

import (
	"strings"

	"biocatalog_backend/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository struct {
	DB *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) *UsuarioRepository {
	return &UsuarioRepository{DB: db}
}

const usuarioSelect = "usuarios.usuario_id, usuarios.nombre, usuarios.email, roles.nombre_rol AS rol, usuarios.fecha_registro"

func (r *UsuarioRepository) detalleQuery() *gorm.DB {
	return r.DB.Table("usuarios").
		Select(usuarioSelect).
		Joins("JOIN roles ON usuarios.rol_id = roles.rol_id")
}

func (r *UsuarioRepository) FindAllDetalles() ([]model.UsuarioDetalle, error) {
	usuarios := make([]model.UsuarioDetalle, 0)
	err := r.detalleQuery().Scan(&usuarios).Error
	return usuarios, err
}

func (r *UsuarioRepository) FindDetalle(id uint) (*model.UsuarioDetalle, error) {
	var usuario model.UsuarioDetalle
	res := r.detalleQuery().Where("usuarios.usuario_id = ?", id).Scan(&usuario)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &usuario, nil
}

// Search filtra por nombre y nombre de rol, ambos por subcadena sin distinguir
// mayúsculas, compuestos con AND.
func (r *UsuarioRepository) Search(nombre, rol string) ([]model.UsuarioDetalle, error) {
	query := r.detalleQuery()
	if nombre != "" {
		query = query.Where("LOWER(usuarios.nombre) LIKE ?", "%"+strings.ToLower(nombre)+"%")
	}
	if rol != "" {
		query = query.Where("LOWER(roles.nombre_rol) LIKE ?", "%"+strings.ToLower(rol)+"%")
	}

	usuarios := make([]model.UsuarioDetalle, 0)
	err := query.Scan(&usuarios).Error
	return usuarios, err
}

func (r *UsuarioRepository) FindByID(id uint) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.DB.First(&usuario, id).Error
	return &usuario, err
}

func (r *UsuarioRepository) FindByEmail(email string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.DB.Where("email = ?", email).First(&usuario).Error
	return &usuario, err
}

func (r *UsuarioRepository) Create(usuario *model.Usuario) error {
	return r.DB.Create(usuario).Error
}

func (r *UsuarioRepository) Update(usuario *model.Usuario) error {
	return r.DB.Save(usuario).Error
}

func (r *UsuarioRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&model.Usuario{}, id)
	return res.RowsAffected, res.Error
}

func (r *UsuarioRepository) FindRolByNombre(nombre string) (*model.Rol, error) {
	var rol model.Rol
	err := r.DB.Where("nombre_rol = ?", nombre).First(&rol).Error
	return &rol, err
}
