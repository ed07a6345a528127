package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"biocatalog_backend/internal/config"
	"biocatalog_backend/internal/controller"
	"biocatalog_backend/internal/repository"
	"biocatalog_backend/internal/service"
	"biocatalog_backend/pkg/database"
	"biocatalog_backend/pkg/logger"
	"biocatalog_backend/pkg/monitoring"
	"biocatalog_backend/pkg/security"
	"biocatalog_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
}

type repositories struct {
	categoria     *repository.CategoriaRepository
	tipoEjercicio *repository.TipoEjercicioRepository
	concepto      *repository.ConceptoRepository
	ejercicio     *repository.EjercicioRepository
	evaluacion    *repository.EvaluacionRepository
	usuario       *repository.UsuarioRepository
}

type services struct {
	storage       *service.StorageService
	cleanup       *service.CleanupService
	categoria     *service.CategoriaService
	tipoEjercicio *service.TipoEjercicioService
	concepto      *service.ConceptoService
	ejercicio     *service.EjercicioService
	evaluacion    *service.EvaluacionService
	usuario       *service.UsuarioService
	auth          *service.AuthService
}

type controllers struct {
	categoria     *controller.CategoriaController
	tipoEjercicio *controller.TipoEjercicioController
	concepto      *controller.ConceptoController
	ejercicio     *controller.EjercicioController
	evaluacion    *controller.EvaluacionController
	usuario       *controller.UsuarioController
	auth          *controller.AuthController
	maintenance   *controller.MaintenanceController
	health        *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		categoria:     repository.NewCategoriaRepository(db),
		tipoEjercicio: repository.NewTipoEjercicioRepository(db),
		concepto:      repository.NewConceptoRepository(db),
		ejercicio:     repository.NewEjercicioRepository(db),
		evaluacion:    repository.NewEvaluacionRepository(db),
		usuario:       repository.NewUsuarioRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.cleanup = service.NewCleanupService(repos.concepto, repos.ejercicio, repos.evaluacion, s.storage)
	s.categoria = service.NewCategoriaService(repos.categoria)
	s.tipoEjercicio = service.NewTipoEjercicioService(repos.tipoEjercicio)
	s.concepto = service.NewConceptoService(repos.concepto)
	s.ejercicio = service.NewEjercicioService(repos.ejercicio, db)
	s.evaluacion = service.NewEvaluacionService(repos.evaluacion, db)
	s.usuario = service.NewUsuarioService(repos.usuario)
	s.auth = service.NewAuthService(repos.usuario, s.usuario, cfg)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		categoria:     controller.NewCategoriaController(s.categoria),
		tipoEjercicio: controller.NewTipoEjercicioController(s.tipoEjercicio),
		concepto:      controller.NewConceptoController(s.concepto, s.storage, s.cleanup),
		ejercicio:     controller.NewEjercicioController(s.ejercicio, s.storage, s.cleanup),
		evaluacion:    controller.NewEvaluacionController(s.evaluacion, s.storage, s.cleanup),
		usuario:       controller.NewUsuarioController(s.usuario, s.cleanup),
		auth:          controller.NewAuthController(s.auth),
		maintenance:   controller.NewMaintenanceController(s.cleanup),
		health:        controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// En modo release la migración solo corre si se pidió explícitamente.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to run migrations", zap.Error(err))
		}
		logger.Log.Info("Database migration completed")
	}
	if cfg.MigrateOnly {
		logger.Log.Info("Migrations complete, exiting")
		os.Exit(0)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("biocatalog-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Espera la señal de interrupción y drena con un plazo de 5 segundos.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
