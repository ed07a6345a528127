package controller

import (
	"errors"

	"biocatalog_backend/internal/service"
	"biocatalog_backend/internal/util"
	"biocatalog_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ConceptoController struct {
	Service *service.ConceptoService
	Storage *service.StorageService
	Cleanup *service.CleanupService
}

func NewConceptoController(svc *service.ConceptoService, storage *service.StorageService, cleanup *service.CleanupService) *ConceptoController {
	return &ConceptoController{Service: svc, Storage: storage, Cleanup: cleanup}
}

// bindConceptoForm lee el formulario multipart y sube la imagen si viene
// adjunta. Imagen vacía significa "conservar la existente" en actualizaciones.
func (c *ConceptoController) bindConceptoForm(ctx *gin.Context) (service.ConceptoInput, error) {
	input := service.ConceptoInput{
		Titulo:      ctx.PostForm("titulo"),
		Descripcion: ctx.PostForm("descripcion"),
		CategoriaID: util.MustParseUint(ctx.PostForm("categoria_id")),
		Estado:      true,
	}

	if estado, ok := util.ParseEstado(ctx.PostForm("estado")); ok {
		input.Estado = estado
	}

	if input.Titulo == "" {
		return input, errors.New("el título es requerido")
	}
	if input.CategoriaID == 0 {
		return input, errors.New("categoria_id es requerido")
	}

	header, err := ctx.FormFile("imagen")
	if err == nil {
		filename, err := c.Storage.SaveImage(ctx.Request.Context(), header)
		if err != nil {
			return input, err
		}
		input.Imagen = filename
	}

	return input, nil
}

func (c *ConceptoController) List(ctx *gin.Context) {
	titulo := ctx.Query("titulo")
	categoriaID := util.MustParseUint(ctx.Query("categoria_id"))

	conceptos, err := c.Service.ListConceptos(titulo, categoriaID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, conceptos)
}

func (c *ConceptoController) ListActivos(ctx *gin.Context) {
	conceptos, err := c.Service.ListActivos()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, conceptos)
}

func (c *ConceptoController) SearchByEstado(ctx *gin.Context) {
	estado, ok := util.ParseEstado(ctx.Query("estado"))
	if !ok {
		util.BadRequest(ctx, util.ErrEstadoInvalido.Error())
		return
	}

	conceptos, err := c.Service.ListPorEstado(estado)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, conceptos)
}

func (c *ConceptoController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("concepto_id"))

	concepto, err := c.Service.GetConcepto(id)
	if errors.Is(err, util.ErrConceptoNoEncontrado) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, concepto)
}

func (c *ConceptoController) Create(ctx *gin.Context) {
	input, err := c.bindConceptoForm(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	concepto, err := c.Service.CreateConcepto(input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, concepto)
}

func (c *ConceptoController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("concepto_id"))

	input, err := c.bindConceptoForm(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	concepto, err := c.Service.UpdateConcepto(id, input)
	if errors.Is(err, util.ErrConceptoNoEncontrado) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, concepto)
}

func (c *ConceptoController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("concepto_id"))

	// El barrido corre antes del borrado; si falla solo se registra.
	if _, err := c.Cleanup.SweepOrphanImages(ctx.Request.Context()); err != nil {
		logger.Log.Warn("barrido previo al borrado falló", zap.Error(err))
	}

	err := c.Service.DeleteConcepto(id)
	if errors.Is(err, util.ErrConceptoNoEncontrado) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"concepto_id": id})
}
