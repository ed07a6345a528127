package app

import (
	"biocatalog_backend/internal/config"
	"biocatalog_backend/internal/middleware"
	"biocatalog_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// Rutas públicas (solo lectura, sin login)
	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/categorias", c.categoria.List)
		api.GET("/categorias/:categoria_id", c.categoria.Get)

		api.GET("/tipo_ejercicios", c.tipoEjercicio.List)
		api.GET("/tipo_ejercicios/:tipo_id", c.tipoEjercicio.Get)
		api.GET("/tipos", c.tipoEjercicio.List)

		api.GET("/getconceptos", c.concepto.List)
		api.GET("/conceptos/:concepto_id", c.concepto.Get)
		api.GET("/conceptos-activos", c.concepto.ListActivos)

		api.GET("/getejercicios", c.ejercicio.List)
		api.GET("/getejercicios/:ejercicioId", c.ejercicio.Get)
		api.GET("/ejercicios/interactivos", c.ejercicio.ListInteractivos)
		api.GET("/ejercicios/opcionesmultiples", c.ejercicio.ListConOpcionesMultiples)
		api.GET("/ejercicios/activos", c.ejercicio.ListActivos)
		api.GET("/ejercicios/opcionmultiple-activos", c.ejercicio.ListOpcionMultipleActivos)
		api.GET("/ejercicios/punnett-activos", c.ejercicio.ListPunnettActivos)
		api.GET("/buscarejercicios", c.ejercicio.SearchByPregunta)
		api.GET("/busqueda/tipo-ejercicio", c.ejercicio.SearchByTipo)
		api.GET("/busqueda/activos", c.ejercicio.SearchByEstado)

		api.GET("/preguntas/obtener", c.evaluacion.List)
		api.GET("/preguntas/:preguntaId", c.evaluacion.Get)
		api.GET("/search/:query", c.evaluacion.Search)
		api.GET("/evaluaciones/activos", c.evaluacion.SearchByEstado)
		api.GET("/evaluaciones/preguntas/:source", c.evaluacion.ListBySource)

		api.POST("/destroy", c.maintenance.Destroy)
	}

	// Autenticación
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", c.auth.Login)

		authProtected := auth.Group("")
		authProtected.Use(middleware.AuthMiddleware(cfg))
		{
			authProtected.POST("/signup", c.auth.Signup)
			authProtected.GET("/perfil", c.auth.Profile)
			authProtected.PUT("/update", c.auth.UpdatePassword)
		}
	}

	// Rutas de escritura y administración (requieren token)
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.POST("/categorias", c.categoria.Create)
		authGroup.PUT("/categorias/:categoria_id", c.categoria.Update)
		authGroup.DELETE("/categorias/:categoria_id", c.categoria.Delete)

		authGroup.POST("/tipo_ejercicios", c.tipoEjercicio.Create)
		authGroup.PUT("/tipo_ejercicios/:tipo_id", c.tipoEjercicio.Update)
		authGroup.DELETE("/tipo_ejercicios/:tipo_id", c.tipoEjercicio.Delete)

		authGroup.GET("/search/state", c.concepto.SearchByEstado)
		authGroup.POST("/postconceptos", c.concepto.Create)
		authGroup.PUT("/edit/:concepto_id", c.concepto.Update)
		authGroup.DELETE("/deleteconceptos/:concepto_id", c.concepto.Delete)

		authGroup.POST("/postejercicios", c.ejercicio.Create)
		authGroup.PUT("/updateejercicio/:ejercicioId", c.ejercicio.Update)
		authGroup.DELETE("/deleteejercicio/:ejercicioId", c.ejercicio.Delete)

		authGroup.POST("/preguntas", c.evaluacion.Create)
		authGroup.PUT("/preguntas/:preguntaId", c.evaluacion.Update)
		authGroup.DELETE("/preguntas/:preguntaId", c.evaluacion.Delete)

		authGroup.GET("/getusers", c.usuario.List)
		authGroup.GET("/getusers/:userId", c.usuario.Get)
		authGroup.POST("/adduser", c.usuario.Create)
		authGroup.PUT("/putusers/:userId", c.usuario.Update)
		authGroup.DELETE("/deleteusers/:userId", c.usuario.Delete)
		authGroup.GET("/searchusers", c.usuario.Search)
	}
}
