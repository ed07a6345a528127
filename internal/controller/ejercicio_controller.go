package controller

import (
	"encoding/json"
	"errors"

	"biocatalog_backend/internal/service"
	"biocatalog_backend/internal/util"
	"biocatalog_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EjercicioController struct {
	Service *service.EjercicioService
	Storage *service.StorageService
	Cleanup *service.CleanupService
}

func NewEjercicioController(svc *service.EjercicioService, storage *service.StorageService, cleanup *service.CleanupService) *EjercicioController {
	return &EjercicioController{Service: svc, Storage: storage, Cleanup: cleanup}
}

// decodeChildArray deserializa un campo de formulario que llega como JSON en
// texto ("[{...},{...}]"). Campo ausente o vacío equivale a colección vacía.
func decodeChildArray[T any](raw string, campo string) ([]T, error) {
	if raw == "" {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, errors.New("formato inválido en " + campo)
	}
	return items, nil
}

// bindEjercicioForm arma el EjercicioInput desde el formulario multipart:
// campos escalares, imagen adjunta y las tres colecciones hijas en JSON.
func (c *EjercicioController) bindEjercicioForm(ctx *gin.Context) (service.EjercicioInput, error) {
	input := service.EjercicioInput{
		Pregunta:            ctx.PostForm("pregunta"),
		TipoID:              util.MustParseUint(ctx.PostForm("tipo_id")),
		Detalles:            ctx.PostForm("detalles"),
		ExplicacionSolucion: ctx.PostForm("explicacion_solucion"),
		Estado:              true,
	}

	if mostrar, ok := util.ParseEstado(ctx.PostForm("mostrar_solucion")); ok {
		input.MostrarSolucion = mostrar
	}
	if estado, ok := util.ParseEstado(ctx.PostForm("estado")); ok {
		input.Estado = estado
	}

	if input.Pregunta == "" {
		return input, errors.New("la pregunta es requerida")
	}
	if input.TipoID == 0 {
		return input, errors.New("tipo_id es requerido")
	}

	var err error
	if input.OpcionesMultiples, err = decodeChildArray[service.OpcionInput](ctx.PostForm("opcionesMultiples"), "opcionesMultiples"); err != nil {
		return input, err
	}
	if input.OpcionesInteractivas, err = decodeChildArray[service.OpcionInput](ctx.PostForm("opcionesInteractivas"), "opcionesInteractivas"); err != nil {
		return input, err
	}
	if input.MatrizPunnett, err = decodeChildArray[service.CeldaPunnettInput](ctx.PostForm("matrizPunnett"), "matrizPunnett"); err != nil {
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

func (c *EjercicioController) List(ctx *gin.Context) {
	ejercicios, err := c.Service.ListEjercicios()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ejercicios)
}

func (c *EjercicioController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("ejercicioId"))

	ejercicio, err := c.Service.GetEjercicio(id)
	if errors.Is(err, util.ErrEjercicioNoEncontrado) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ejercicio)
}

func (c *EjercicioController) ListInteractivos(ctx *gin.Context) {
	ejercicios, err := c.Service.ListInteractivos()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ejercicios)
}

func (c *EjercicioController) ListConOpcionesMultiples(ctx *gin.Context) {
	ejercicios, err := c.Service.ListConOpcionesMultiples()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ejercicios)
}

func (c *EjercicioController) ListActivos(ctx *gin.Context) {
	ejercicios, err := c.Service.ListEjercicios()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ejercicios)
}

func (c *EjercicioController) ListOpcionMultipleActivos(ctx *gin.Context) {
	ejercicios, err := c.Service.ListOpcionMultipleActivos()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ejercicios)
}

func (c *EjercicioController) ListPunnettActivos(ctx *gin.Context) {
	ejercicios, err := c.Service.ListInteractivos()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ejercicios)
}

func (c *EjercicioController) SearchByPregunta(ctx *gin.Context) {
	ejercicios, err := c.Service.BuscarPorPregunta(ctx.Query("pregunta"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ejercicios)
}

func (c *EjercicioController) SearchByTipo(ctx *gin.Context) {
	ejercicios, err := c.Service.BuscarPorTipo(ctx.Query("tipo"))
	if errors.Is(err, util.ErrTipoEjercicioRequerido) || errors.Is(err, util.ErrTipoEjercicioInvalido) {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ejercicios)
}

func (c *EjercicioController) SearchByEstado(ctx *gin.Context) {
	estado, ok := util.ParseEstado(ctx.Query("estado"))
	if !ok {
		util.BadRequest(ctx, util.ErrEstadoInvalido.Error())
		return
	}

	ejercicios, err := c.Service.BuscarPorEstado(estado)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ejercicios)
}

func (c *EjercicioController) Create(ctx *gin.Context) {
	input, err := c.bindEjercicioForm(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ejercicio, err := c.Service.CreateEjercicio(input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, ejercicio)
}

func (c *EjercicioController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("ejercicioId"))

	input, err := c.bindEjercicioForm(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ejercicio, err := c.Service.UpdateEjercicio(id, input)
	if errors.Is(err, util.ErrEjercicioNoEncontrado) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ejercicio)
}

func (c *EjercicioController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("ejercicioId"))

	if _, err := c.Cleanup.SweepOrphanImages(ctx.Request.Context()); err != nil {
		logger.Log.Warn("barrido previo al borrado falló", zap.Error(err))
	}

	err := c.Service.DeleteEjercicio(id)
	if errors.Is(err, util.ErrEjercicioNoEncontrado) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"ejercicio_id": id})
}
