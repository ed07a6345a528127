package controller

import (
	"errors"

	"biocatalog_backend/internal/service"
	"biocatalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type passwordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var req usuarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	usuario, err := c.Service.Register(service.UsuarioInput{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Rol:      req.Rol,
		Password: req.Password,
	})
	if errors.Is(err, util.ErrEmailRegistrado) || errors.Is(err, util.ErrRolNoEncontrado) {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, usuario)
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, usuario, err := c.Service.Login(req.Email, req.Password)
	if errors.Is(err, util.ErrCredencialesInvalidas) {
		util.Unauthorized(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token":   token,
		"usuario": usuario,
	})
}

func (c *AuthController) Profile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "token no proporcionado")
		return
	}

	usuario, err := c.Service.GetProfile(claims.UserID)
	if errors.Is(err, util.ErrUsuarioNoEncontrado) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, usuario)
}

func (c *AuthController) UpdatePassword(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "token no proporcionado")
		return
	}

	var req passwordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.Service.UpdatePassword(claims.UserID, req.OldPassword, req.NewPassword)
	if errors.Is(err, util.ErrCredencialesInvalidas) {
		util.Unauthorized(ctx, err.Error())
		return
	}
	if errors.Is(err, util.ErrUsuarioNoEncontrado) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"usuario_id": claims.UserID})
}
