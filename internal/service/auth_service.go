package service

import (
	"errors"

	"biocatalog_backend/internal/config"
	"biocatalog_backend/internal/model"
	"biocatalog_backend/internal/repository"
	"biocatalog_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UsuarioRepository
	Usuarios *UsuarioService
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UsuarioRepository, usuarios *UsuarioService, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Usuarios: usuarios,
		Cfg:      cfg,
	}
}

func (s *AuthService) Register(input UsuarioInput) (*model.UsuarioDetalle, error) {
	return s.Usuarios.CreateUsuario(input)
}

// Login valida las credenciales y emite un JWT de una hora con el id, email y
// rol del usuario.
func (s *AuthService) Login(email, password string) (string, *model.UsuarioDetalle, error) {
	usuario, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrCredencialesInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.ContrasenaHash), []byte(password)); err != nil {
		return "", nil, util.ErrCredencialesInvalidas
	}

	token, err := util.GenerateJWT(usuario, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	detalle, err := s.Usuarios.GetUsuario(usuario.UsuarioID)
	if err != nil {
		return "", nil, err
	}

	return token, detalle, nil
}

func (s *AuthService) GetProfile(userID uint) (*model.UsuarioDetalle, error) {
	return s.Usuarios.GetUsuario(userID)
}

// UpdatePassword exige la contraseña actual antes de fijar la nueva.
func (s *AuthService) UpdatePassword(userID uint, oldPassword, newPassword string) error {
	usuario, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUsuarioNoEncontrado
	}
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.ContrasenaHash), []byte(oldPassword)); err != nil {
		return util.ErrCredencialesInvalidas
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	usuario.ContrasenaHash = string(hash)
	return s.UserRepo.Update(usuario)
}
