package repository

import (
	"fmt"
	"strings"
	"testing"

	"biocatalog_backend/internal/model"
	"biocatalog_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("abriendo sqlite en memoria: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrando esquema: %v", err)
	}
	return db
}

func seedConceptos(t *testing.T, db *gorm.DB) {
	t.Helper()

	categorias := []model.Categoria{
		{NombreCategoria: "Genética"},
		{NombreCategoria: "Ecología"},
	}
	for i := range categorias {
		if err := db.Create(&categorias[i]).Error; err != nil {
			t.Fatalf("creando categoría: %v", err)
		}
	}

	conceptos := []model.Concepto{
		{Titulo: "Herencia mendeliana", CategoriaID: categorias[0].CategoriaID, Estado: true},
		{Titulo: "Herencia ligada al sexo", CategoriaID: categorias[0].CategoriaID, Estado: false},
		{Titulo: "Cadena trófica", CategoriaID: categorias[1].CategoriaID, Estado: true},
	}
	for i := range conceptos {
		if err := db.Create(&conceptos[i]).Error; err != nil {
			t.Fatalf("creando concepto: %v", err)
		}
	}
}

func TestFindAllVisibilidadPorDefecto(t *testing.T) {
	db := newTestDB(t)
	seedConceptos(t, db)
	repo := NewConceptoRepository(db)

	conceptos, err := repo.FindAll(ConceptoFilter{})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(conceptos) != 2 {
		t.Fatalf("sin filtro de estado deben venir solo los activos: %d", len(conceptos))
	}
	for _, c := range conceptos {
		if !c.Estado {
			t.Errorf("apareció el concepto inactivo %q", c.Titulo)
		}
	}
}

func TestFindAllComponeFiltrosConAND(t *testing.T) {
	db := newTestDB(t)
	seedConceptos(t, db)
	repo := NewConceptoRepository(db)

	// Subcadena sin distinguir mayúsculas, acotada además por categoría.
	conceptos, err := repo.FindAll(ConceptoFilter{Titulo: "HERENCIA", CategoriaID: 1})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(conceptos) != 1 || conceptos[0].Titulo != "Herencia mendeliana" {
		t.Fatalf("filtros combinados: vinieron %d conceptos", len(conceptos))
	}
	if conceptos[0].Categoria != "Genética" {
		t.Errorf("categoria = %q, se esperaba el nombre resuelto por el JOIN", conceptos[0].Categoria)
	}

	// El filtro explícito de estado desplaza la visibilidad por defecto.
	estado := false
	ocultos, err := repo.FindAll(ConceptoFilter{Titulo: "herencia", Estado: &estado})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(ocultos) != 1 || ocultos[0].Titulo != "Herencia ligada al sexo" {
		t.Fatalf("estado=false: vinieron %d conceptos", len(ocultos))
	}
}

func TestFindAllSinResultadosDevuelveSliceVacio(t *testing.T) {
	db := newTestDB(t)
	repo := NewConceptoRepository(db)

	conceptos, err := repo.FindAll(ConceptoFilter{Titulo: "inexistente"})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if conceptos == nil {
		t.Fatal("el resultado debe ser un slice vacío, no nil")
	}
	if len(conceptos) != 0 {
		t.Fatalf("len = %d", len(conceptos))
	}
}

func TestCreatePersisteEstadoFalse(t *testing.T) {
	db := newTestDB(t)
	repo := NewConceptoRepository(db)

	concepto := model.Concepto{Titulo: "Borrador", CategoriaID: 1, Estado: false}
	if err := repo.Create(&concepto); err != nil {
		t.Fatalf("Create: %v", err)
	}

	guardado, err := repo.FindByID(concepto.ConceptoID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if guardado.Estado {
		t.Fatal("el concepto creado con estado=false quedó persistido como activo")
	}
}

func TestFindDetalleNoEncontrado(t *testing.T) {
	db := newTestDB(t)
	repo := NewConceptoRepository(db)

	if _, err := repo.FindDetalle(99); err != gorm.ErrRecordNotFound {
		t.Fatalf("err = %v, se esperaba gorm.ErrRecordNotFound", err)
	}
}

func TestImageFilenamesOmiteVacios(t *testing.T) {
	db := newTestDB(t)
	seedConceptos(t, db)
	repo := NewConceptoRepository(db)

	db.Model(&model.Concepto{}).Where("concepto_id = ?", 1).Update("imagen", "mendel.png")

	imagenes, err := repo.ImageFilenames()
	if err != nil {
		t.Fatalf("ImageFilenames: %v", err)
	}
	if len(imagenes) != 1 || imagenes[0] != "mendel.png" {
		t.Fatalf("imagenes = %v", imagenes)
	}
}
