package controller

import (
	"errors"

	"biocatalog_backend/internal/service"
	"biocatalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TipoEjercicioController struct {
	Service *service.TipoEjercicioService
}

func NewTipoEjercicioController(svc *service.TipoEjercicioService) *TipoEjercicioController {
	return &TipoEjercicioController{Service: svc}
}

type tipoEjercicioRequest struct {
	NombreTipo string `json:"nombre_tipo" binding:"required,max=50"`
}

func (c *TipoEjercicioController) List(ctx *gin.Context) {
	tipos, err := c.Service.ListTipos()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tipos)
}

func (c *TipoEjercicioController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("tipo_id"))

	tipo, err := c.Service.GetTipo(id)
	if errors.Is(err, util.ErrTipoNoEncontrado) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tipo)
}

func (c *TipoEjercicioController) Create(ctx *gin.Context) {
	var req tipoEjercicioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tipo, err := c.Service.CreateTipo(req.NombreTipo)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, tipo)
}

func (c *TipoEjercicioController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("tipo_id"))

	var req tipoEjercicioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tipo, err := c.Service.UpdateTipo(id, req.NombreTipo)
	if errors.Is(err, util.ErrTipoNoEncontrado) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tipo)
}

func (c *TipoEjercicioController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("tipo_id"))

	err := c.Service.DeleteTipo(id)
	if errors.Is(err, util.ErrTipoNoEncontrado) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"tipo_id": id})
}
