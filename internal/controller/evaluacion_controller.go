package controller

import (
	"errors"

	"biocatalog_backend/internal/service"
	"biocatalog_backend/internal/util"
	"biocatalog_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EvaluacionController struct {
	Service *service.EvaluacionService
	Storage *service.StorageService
	Cleanup *service.CleanupService
}

func NewEvaluacionController(svc *service.EvaluacionService, storage *service.StorageService, cleanup *service.CleanupService) *EvaluacionController {
	return &EvaluacionController{Service: svc, Storage: storage, Cleanup: cleanup}
}

// bindPreguntaForm arma el PreguntaInput desde el formulario multipart. Los
// campos concepto_id y ejercicio_id son opcionales y excluyentes; la
// validación de exclusión vive en el servicio.
func (c *EvaluacionController) bindPreguntaForm(ctx *gin.Context) (service.PreguntaInput, error) {
	input := service.PreguntaInput{
		TextoPregunta:       ctx.PostForm("texto_pregunta"),
		TipoPregunta:        ctx.PostForm("tipo_pregunta"),
		Detalles:            ctx.PostForm("detalles"),
		ExplicacionSolucion: ctx.PostForm("explicacion_solucion"),
		Estado:              true,
	}

	if estado, ok := util.ParseEstado(ctx.PostForm("estado")); ok {
		input.Estado = estado
	}

	if input.TextoPregunta == "" {
		return input, errors.New("texto_pregunta es requerido")
	}

	if raw := ctx.PostForm("concepto_id"); raw != "" {
		id := util.MustParseUint(raw)
		input.ConceptoID = &id
	}
	if raw := ctx.PostForm("ejercicio_id"); raw != "" {
		id := util.MustParseUint(raw)
		input.EjercicioID = &id
	}

	var err error
	if input.Opciones, err = decodeChildArray[service.OpcionInput](ctx.PostForm("opciones"), "opciones"); err != nil {
		return input, err
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

func (c *EvaluacionController) List(ctx *gin.Context) {
	preguntas, err := c.Service.ListPreguntas()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, preguntas)
}

func (c *EvaluacionController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("preguntaId"))

	pregunta, err := c.Service.GetPregunta(id)
	if errors.Is(err, util.ErrPreguntaNoEncontrada) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, pregunta)
}

func (c *EvaluacionController) Search(ctx *gin.Context) {
	preguntas, err := c.Service.BuscarPreguntas(ctx.Param("query"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, preguntas)
}

func (c *EvaluacionController) SearchByEstado(ctx *gin.Context) {
	estado, ok := util.ParseEstado(ctx.Query("estado"))
	if !ok {
		util.BadRequest(ctx, util.ErrEstadoInvalido.Error())
		return
	}

	preguntas, err := c.Service.ListPorEstado(estado)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, preguntas)
}

func (c *EvaluacionController) ListBySource(ctx *gin.Context) {
	preguntas, err := c.Service.ListPorFuente(ctx.Param("source"))
	if errors.Is(err, util.ErrFuenteInvalida) {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, preguntas)
}

// esEntradaPreguntaInvalida agrupa los errores de validación del servicio que
// se traducen en una respuesta 400.
func esEntradaPreguntaInvalida(err error) bool {
	return errors.Is(err, util.ErrFuenteAmbigua) ||
		errors.Is(err, util.ErrTipoPreguntaRequerido) ||
		errors.Is(err, util.ErrOpcionesRequeridas) ||
		errors.Is(err, util.ErrTextoOpcionRequerido)
}

func (c *EvaluacionController) Create(ctx *gin.Context) {
	input, err := c.bindPreguntaForm(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pregunta, err := c.Service.CreatePregunta(input)
	if esEntradaPreguntaInvalida(err) {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, pregunta)
}

func (c *EvaluacionController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("preguntaId"))

	input, err := c.bindPreguntaForm(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pregunta, err := c.Service.UpdatePregunta(id, input)
	if esEntradaPreguntaInvalida(err) {
		util.BadRequest(ctx, err.Error())
		return
	}
	if errors.Is(err, util.ErrPreguntaNoEncontrada) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, pregunta)
}

func (c *EvaluacionController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("preguntaId"))

	if _, err := c.Cleanup.SweepOrphanImages(ctx.Request.Context()); err != nil {
		logger.Log.Warn("barrido previo al borrado falló", zap.Error(err))
	}

	err := c.Service.DeletePregunta(id)
	if errors.Is(err, util.ErrPreguntaNoEncontrada) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"pregunta_id": id})
}
