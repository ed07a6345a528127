package service

import (
	"errors"
	"testing"
	"time"

	"biocatalog_backend/internal/config"
	"biocatalog_backend/internal/repository"
	"biocatalog_backend/internal/util"
)

func newAuthService(t *testing.T) *AuthService {
	db := newTestDB(t)
	userRepo := repository.NewUsuarioRepository(db)
	usuarios := NewUsuarioService(userRepo)
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "clave-de-firma-solo-para-tests-0123456789",
			ExpireTime: time.Hour,
		},
	}
	return NewAuthService(userRepo, usuarios, cfg)
}

func TestRegisterYLogin(t *testing.T) {
	svc := newAuthService(t)

	registrado, err := svc.Register(UsuarioInput{
		Nombre:   "Gregor Mendel",
		Email:    "mendel@ejemplo.edu",
		Rol:      "docente",
		Password: "guisantes",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if registrado.Rol != "docente" {
		t.Errorf("rol = %q", registrado.Rol)
	}

	token, usuario, err := svc.Login("mendel@ejemplo.edu", "guisantes")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("el login no devolvió token")
	}
	if usuario.UsuarioID != registrado.UsuarioID {
		t.Errorf("usuario_id = %d, se esperaba %d", usuario.UsuarioID, registrado.UsuarioID)
	}

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != registrado.UsuarioID || claims.Email != "mendel@ejemplo.edu" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Register(UsuarioInput{
		Nombre: "Ana", Email: "ana@ejemplo.edu", Rol: "estudiante", Password: "correcta",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login("ana@ejemplo.edu", "incorrecta"); !errors.Is(err, util.ErrCredencialesInvalidas) {
		t.Errorf("contraseña mala: err = %v", err)
	}
	if _, _, err := svc.Login("nadie@ejemplo.edu", "correcta"); !errors.Is(err, util.ErrCredencialesInvalidas) {
		t.Errorf("email inexistente: err = %v", err)
	}
}

func TestRegisterEmailDuplicado(t *testing.T) {
	svc := newAuthService(t)

	input := UsuarioInput{Nombre: "Ana", Email: "ana@ejemplo.edu", Rol: "estudiante", Password: "secreta1"}
	if _, err := svc.Register(input); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(input); !errors.Is(err, util.ErrEmailRegistrado) {
		t.Fatalf("err = %v, se esperaba ErrEmailRegistrado", err)
	}
}

func TestRegisterRolInexistente(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(UsuarioInput{
		Nombre: "Ana", Email: "ana@ejemplo.edu", Rol: "superusuario", Password: "secreta1",
	})
	if !errors.Is(err, util.ErrRolNoEncontrado) {
		t.Fatalf("err = %v, se esperaba ErrRolNoEncontrado", err)
	}
}

func TestUpdatePassword(t *testing.T) {
	svc := newAuthService(t)

	registrado, err := svc.Register(UsuarioInput{
		Nombre: "Ana", Email: "ana@ejemplo.edu", Rol: "estudiante", Password: "vieja123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.UpdatePassword(registrado.UsuarioID, "equivocada", "nueva123"); !errors.Is(err, util.ErrCredencialesInvalidas) {
		t.Fatalf("contraseña actual mala: err = %v", err)
	}

	if err := svc.UpdatePassword(registrado.UsuarioID, "vieja123", "nueva123"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}

	if _, _, err := svc.Login("ana@ejemplo.edu", "nueva123"); err != nil {
		t.Errorf("login con la contraseña nueva: %v", err)
	}
	if _, _, err := svc.Login("ana@ejemplo.edu", "vieja123"); !errors.Is(err, util.ErrCredencialesInvalidas) {
		t.Errorf("la contraseña vieja debía dejar de servir: err = %v", err)
	}
}
