package controller

import (
	"errors"

	"biocatalog_backend/internal/service"
	"biocatalog_backend/internal/util"
	"biocatalog_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UsuarioController struct {
	Service *service.UsuarioService
	Cleanup *service.CleanupService
}

func NewUsuarioController(svc *service.UsuarioService, cleanup *service.CleanupService) *UsuarioController {
	return &UsuarioController{Service: svc, Cleanup: cleanup}
}

type usuarioRequest struct {
	Nombre   string `json:"nombre" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Rol      string `json:"rol" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type usuarioUpdateRequest struct {
	Nombre   string `json:"nombre" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Rol      string `json:"rol" binding:"required"`
	Password string `json:"password"`
}

func (c *UsuarioController) List(ctx *gin.Context) {
	usuarios, err := c.Service.ListUsuarios()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, usuarios)
}

func (c *UsuarioController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("userId"))

	usuario, err := c.Service.GetUsuario(id)
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

func (c *UsuarioController) Search(ctx *gin.Context) {
	usuarios, err := c.Service.SearchUsuarios(ctx.Query("nombre"), ctx.Query("rol"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, usuarios)
}

func (c *UsuarioController) Create(ctx *gin.Context) {
	var req usuarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	usuario, err := c.Service.CreateUsuario(service.UsuarioInput{
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

func (c *UsuarioController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("userId"))

	var req usuarioUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	usuario, err := c.Service.UpdateUsuario(id, service.UsuarioInput{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Rol:      req.Rol,
		Password: req.Password,
	})
	if errors.Is(err, util.ErrUsuarioNoEncontrado) {
		util.NotFound(ctx, err.Error())
		return
	}
	if errors.Is(err, util.ErrEmailRegistrado) || errors.Is(err, util.ErrRolNoEncontrado) {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, usuario)
}

func (c *UsuarioController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("userId"))

	if _, err := c.Cleanup.SweepOrphanImages(ctx.Request.Context()); err != nil {
		logger.Log.Warn("barrido previo al borrado falló", zap.Error(err))
	}

	err := c.Service.DeleteUsuario(id)
	if errors.Is(err, util.ErrUsuarioNoEncontrado) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"usuario_id": id})
}
