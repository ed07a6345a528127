package service

import (
	"testing"

	"biocatalog_backend/internal/repository"
)

// Recorre el flujo completo de catálogo: categoría nueva, concepto asociado y
// un ejercicio de Punnett consultable por las rutas de búsqueda.
func TestEscenarioCatalogoPunnett(t *testing.T) {
	db := newTestDB(t)

	categorias := NewCategoriaService(repository.NewCategoriaRepository(db))
	conceptos := NewConceptoService(repository.NewConceptoRepository(db))
	ejercicios := NewEjercicioService(repository.NewEjercicioRepository(db), db)

	categoria, err := categorias.CreateCategoria("Genética mendeliana")
	if err != nil {
		t.Fatalf("CreateCategoria: %v", err)
	}

	concepto, err := conceptos.CreateConcepto(ConceptoInput{
		Titulo:      "Cuadro de Punnett",
		Descripcion: "Predicción de genotipos en un cruce",
		CategoriaID: categoria.CategoriaID,
		Estado:      true,
	})
	if err != nil {
		t.Fatalf("CreateConcepto: %v", err)
	}
	if concepto.Categoria != "Genética mendeliana" {
		t.Errorf("categoria resuelta = %q", concepto.Categoria)
	}

	ejercicio, err := ejercicios.CreateEjercicio(EjercicioInput{
		Pregunta: "Completa el cuadro para el cruce Aa x Aa",
		TipoID:   2,
		Estado:   true,
		OpcionesMultiples: []OpcionInput{
			{TextoOpcion: "3:1", EsCorrecta: true},
			{TextoOpcion: "1:1", EsCorrecta: false},
		},
		MatrizPunnett: []CeldaPunnettInput{
			{Alelo1: "A", Alelo2: "A", Resultado: "AA"},
			{Alelo1: "A", Alelo2: "a", Resultado: "Aa"},
			{Alelo1: "a", Alelo2: "A", Resultado: "Aa"},
			{Alelo1: "a", Alelo2: "a", Resultado: "aa"},
		},
	})
	if err != nil {
		t.Fatalf("CreateEjercicio: %v", err)
	}
	if ejercicio.NombreTipo != "Punnett" {
		t.Errorf("nombre_tipo = %q", ejercicio.NombreTipo)
	}

	// El ejercicio debe aparecer en la búsqueda por tipo punnett y en el
	// listado de conceptos de su categoría.
	porTipo, err := ejercicios.BuscarPorTipo("punnett")
	if err != nil {
		t.Fatalf("BuscarPorTipo: %v", err)
	}
	if len(porTipo) != 1 || porTipo[0].EjercicioID != ejercicio.EjercicioID {
		t.Fatalf("búsqueda punnett trajo %d ejercicios", len(porTipo))
	}

	porCategoria, err := conceptos.ListConceptos("", categoria.CategoriaID)
	if err != nil {
		t.Fatalf("ListConceptos: %v", err)
	}
	if len(porCategoria) != 1 || porCategoria[0].ConceptoID != concepto.ConceptoID {
		t.Fatalf("listado por categoría trajo %d conceptos", len(porCategoria))
	}

	porPregunta, err := ejercicios.BuscarPorPregunta("cruce aa")
	if err != nil {
		t.Fatalf("BuscarPorPregunta: %v", err)
	}
	if len(porPregunta) != 1 {
		t.Fatalf("búsqueda por pregunta trajo %d", len(porPregunta))
	}
}
