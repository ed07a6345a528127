package service

import (
	"errors"

	"biocatalog_backend/internal/model"
	"biocatalog_backend/internal/repository"
	"biocatalog_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UsuarioService struct {
	Repo *repository.UsuarioRepository
}

func NewUsuarioService(repo *repository.UsuarioRepository) *UsuarioService {
	return &UsuarioService{Repo: repo}
}

// UsuarioInput es la carga validada de alta/edición. Rol es el nombre del rol
// (admin, docente, estudiante); Password vacío en edición conserva la
// contraseña actual.
type UsuarioInput struct {
	Nombre   string
	Email    string
	Rol      string
	Password string
}

func (s *UsuarioService) ListUsuarios() ([]model.UsuarioDetalle, error) {
	return s.Repo.FindAllDetalles()
}

func (s *UsuarioService) GetUsuario(id uint) (*model.UsuarioDetalle, error) {
	detalle, err := s.Repo.FindDetalle(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUsuarioNoEncontrado
	}
	return detalle, err
}

func (s *UsuarioService) SearchUsuarios(nombre, rol string) ([]model.UsuarioDetalle, error) {
	return s.Repo.Search(nombre, rol)
}

func (s *UsuarioService) CreateUsuario(input UsuarioInput) (*model.UsuarioDetalle, error) {
	if _, err := s.Repo.FindByEmail(input.Email); err == nil {
		return nil, util.ErrEmailRegistrado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rol, err := s.Repo.FindRolByNombre(input.Rol)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRolNoEncontrado
	}
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := &model.Usuario{
		Nombre:         input.Nombre,
		Email:          input.Email,
		ContrasenaHash: string(hash),
		RolID:          rol.RolID,
	}
	if err := s.Repo.Create(usuario); err != nil {
		return nil, err
	}

	return s.GetUsuario(usuario.UsuarioID)
}

func (s *UsuarioService) UpdateUsuario(id uint, input UsuarioInput) (*model.UsuarioDetalle, error) {
	usuario, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUsuarioNoEncontrado
	}
	if err != nil {
		return nil, err
	}

	rol, err := s.Repo.FindRolByNombre(input.Rol)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRolNoEncontrado
	}
	if err != nil {
		return nil, err
	}

	usuario.Nombre = input.Nombre
	usuario.Email = input.Email
	usuario.RolID = rol.RolID
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.ContrasenaHash = string(hash)
	}

	if err := s.Repo.Update(usuario); err != nil {
		return nil, err
	}

	return s.GetUsuario(id)
}

func (s *UsuarioService) DeleteUsuario(id uint) error {
	rows, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return util.ErrUsuarioNoEncontrado
	}
	return nil
}
