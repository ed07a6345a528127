package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"biocatalog_backend/internal/repository"
	"biocatalog_backend/internal/service"
	"biocatalog_backend/internal/util"
	"biocatalog_backend/pkg/database"
	"biocatalog_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)
}

func newCategoriaRouter(t *testing.T) *gin.Engine {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("abriendo sqlite en memoria: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrando esquema: %v", err)
	}

	ctrl := NewCategoriaController(service.NewCategoriaService(repository.NewCategoriaRepository(db)))

	router := gin.New()
	router.GET("/api/categorias", ctrl.List)
	router.GET("/api/categorias/:categoria_id", ctrl.Get)
	router.POST("/api/categorias", ctrl.Create)
	router.PUT("/api/categorias/:categoria_id", ctrl.Update)
	router.DELETE("/api/categorias/:categoria_id", ctrl.Delete)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestCategoriaCRUD(t *testing.T) {
	router := newCategoriaRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/categorias", `{"nombre_categoria":"Genética"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("crear: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var creada struct {
		Data struct {
			CategoriaID     uint   `json:"categoria_id"`
			NombreCategoria string `json:"nombre_categoria"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &creada); err != nil {
		t.Fatalf("decodificando respuesta: %v", err)
	}
	if creada.Data.NombreCategoria != "Genética" {
		t.Errorf("nombre = %q", creada.Data.NombreCategoria)
	}

	rec = doJSON(router, http.MethodGet, fmt.Sprintf("/api/categorias/%d", creada.Data.CategoriaID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("obtener: status = %d", rec.Code)
	}

	rec = doJSON(router, http.MethodPut, fmt.Sprintf("/api/categorias/%d", creada.Data.CategoriaID), `{"nombre_categoria":"Genética clásica"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("actualizar: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/categorias/%d", creada.Data.CategoriaID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("borrar: status = %d", rec.Code)
	}

	rec = doJSON(router, http.MethodGet, fmt.Sprintf("/api/categorias/%d", creada.Data.CategoriaID), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("obtener tras borrar: status = %d, se esperaba 404", rec.Code)
	}
}

func TestCategoriaValidacion(t *testing.T) {
	router := newCategoriaRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/categorias", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("sin nombre: status = %d, se esperaba 400", rec.Code)
	}

	rec = doJSON(router, http.MethodPost, "/api/categorias", `{"nombre_categoria": 12}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("tipo incorrecto: status = %d, se esperaba 400", rec.Code)
	}
}

func TestCategoriaNoEncontrada(t *testing.T) {
	router := newCategoriaRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/categorias/99", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, se esperaba 404", rec.Code)
	}

	var resp util.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decodificando respuesta: %v", err)
	}
	if resp.Code != http.StatusNotFound || resp.Message == "" {
		t.Errorf("envoltura = %+v", resp)
	}

	rec = doJSON(router, http.MethodDelete, "/api/categorias/99", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("borrar inexistente: status = %d, se esperaba 404", rec.Code)
	}
}
