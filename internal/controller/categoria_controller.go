package controller

import (
	"errors"

	"biocatalog_backend/internal/service"
	"biocatalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoriaController struct {
	Service *service.CategoriaService
}

func NewCategoriaController(svc *service.CategoriaService) *CategoriaController {
	return &CategoriaController{Service: svc}
}

type categoriaRequest struct {
	NombreCategoria string `json:"nombre_categoria" binding:"required,max=100"`
}

func (c *CategoriaController) List(ctx *gin.Context) {
	categorias, err := c.Service.ListCategorias()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categorias)
}

func (c *CategoriaController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("categoria_id"))

	categoria, err := c.Service.GetCategoria(id)
	if errors.Is(err, util.ErrCategoriaNoEncontrada) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categoria)
}

func (c *CategoriaController) Create(ctx *gin.Context) {
	var req categoriaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	categoria, err := c.Service.CreateCategoria(req.NombreCategoria)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, categoria)
}

func (c *CategoriaController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("categoria_id"))

	var req categoriaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	categoria, err := c.Service.UpdateCategoria(id, req.NombreCategoria)
	if errors.Is(err, util.ErrCategoriaNoEncontrada) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categoria)
}

func (c *CategoriaController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("categoria_id"))

	err := c.Service.DeleteCategoria(id)
	if errors.Is(err, util.ErrCategoriaNoEncontrada) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"categoria_id": id})
}
