package service

import (
	"errors"
	"testing"

	"biocatalog_backend/internal/model"
	"biocatalog_backend/internal/repository"
	"biocatalog_backend/internal/util"

	"gorm.io/gorm"
)

func newEvaluacionService(t *testing.T) (*EvaluacionService, *gorm.DB) {
	db := newTestDB(t)
	return NewEvaluacionService(repository.NewEvaluacionRepository(db), db), db
}

func preguntaBase(texto string) PreguntaInput {
	return PreguntaInput{
		TextoPregunta: texto,
		TipoPregunta:  "seleccion_multiple",
		Estado:        true,
		Opciones: []OpcionInput{
			{TextoOpcion: "dominante", EsCorrecta: true},
			{TextoOpcion: "recesivo", EsCorrecta: false},
		},
	}
}

func TestCreatePreguntaConOpciones(t *testing.T) {
	svc, _ := newEvaluacionService(t)

	detalle, err := svc.CreatePregunta(preguntaBase("¿Qué alelo se expresa en el heterocigoto?"))
	if err != nil {
		t.Fatalf("CreatePregunta: %v", err)
	}
	if detalle.PreguntaID == 0 {
		t.Fatal("la pregunta creada no tiene id")
	}
	if len(detalle.Opciones) != 2 {
		t.Fatalf("opciones = %d, se esperaban 2", len(detalle.Opciones))
	}
}

func TestCreatePreguntaRechazaFuenteAmbigua(t *testing.T) {
	svc, _ := newEvaluacionService(t)

	conceptoID, ejercicioID := uint(1), uint(1)
	input := preguntaBase("fuente doble")
	input.ConceptoID = &conceptoID
	input.EjercicioID = &ejercicioID

	if _, err := svc.CreatePregunta(input); !errors.Is(err, util.ErrFuenteAmbigua) {
		t.Fatalf("err = %v, se esperaba ErrFuenteAmbigua", err)
	}

	var count int64
	svc.DB.Model(&model.PreguntaEvaluacion{}).Count(&count)
	if count != 0 {
		t.Fatalf("la pregunta rechazada no debía persistirse, hay %d", count)
	}
}

func TestCreatePreguntaRequiereTipoYOpciones(t *testing.T) {
	svc, _ := newEvaluacionService(t)

	sinTipo := preguntaBase("sin tipo")
	sinTipo.TipoPregunta = ""
	if _, err := svc.CreatePregunta(sinTipo); !errors.Is(err, util.ErrTipoPreguntaRequerido) {
		t.Fatalf("err = %v, se esperaba ErrTipoPreguntaRequerido", err)
	}

	sinOpciones := preguntaBase("sin opciones")
	sinOpciones.Opciones = nil
	if _, err := svc.CreatePregunta(sinOpciones); !errors.Is(err, util.ErrOpcionesRequeridas) {
		t.Fatalf("err = %v, se esperaba ErrOpcionesRequeridas", err)
	}

	opcionVacia := preguntaBase("opción sin texto")
	opcionVacia.Opciones = append(opcionVacia.Opciones, OpcionInput{TextoOpcion: "", EsCorrecta: false})
	if _, err := svc.CreatePregunta(opcionVacia); !errors.Is(err, util.ErrTextoOpcionRequerido) {
		t.Fatalf("err = %v, se esperaba ErrTextoOpcionRequerido", err)
	}

	var count int64
	svc.DB.Model(&model.PreguntaEvaluacion{}).Count(&count)
	if count != 0 {
		t.Fatalf("ninguna pregunta inválida debía persistirse, hay %d", count)
	}
}

func TestUpdatePreguntaReemplazaOpciones(t *testing.T) {
	svc, _ := newEvaluacionService(t)

	creada, err := svc.CreatePregunta(preguntaBase("original"))
	if err != nil {
		t.Fatalf("CreatePregunta: %v", err)
	}

	input := preguntaBase("corregida")
	input.Opciones = []OpcionInput{{TextoOpcion: "codominancia", EsCorrecta: true}}

	actualizada, err := svc.UpdatePregunta(creada.PreguntaID, input)
	if err != nil {
		t.Fatalf("UpdatePregunta: %v", err)
	}
	if actualizada.TextoPregunta != "corregida" {
		t.Errorf("texto = %q", actualizada.TextoPregunta)
	}
	if len(actualizada.Opciones) != 1 || actualizada.Opciones[0].TextoOpcion != "codominancia" {
		t.Fatalf("las opciones debían reemplazarse por completo, quedaron %d", len(actualizada.Opciones))
	}

	var total int64
	svc.DB.Model(&model.OpcionPregunta{}).Where("pregunta_id = ?", creada.PreguntaID).Count(&total)
	if total != 1 {
		t.Errorf("opciones en tabla = %d, se esperaba 1", total)
	}
}

func TestDeletePreguntaNoEncontrada(t *testing.T) {
	svc, _ := newEvaluacionService(t)

	if err := svc.DeletePregunta(42); !errors.Is(err, util.ErrPreguntaNoEncontrada) {
		t.Fatalf("err = %v, se esperaba ErrPreguntaNoEncontrada", err)
	}
}

func TestListPorFuente(t *testing.T) {
	svc, db := newEvaluacionService(t)

	concepto := model.Concepto{Titulo: "Herencia mendeliana", CategoriaID: 1, Estado: true}
	if err := db.Create(&concepto).Error; err != nil {
		t.Fatalf("creando concepto: %v", err)
	}
	ejercicio := model.Ejercicio{Pregunta: "cruce Aa x aa", TipoID: 1, Estado: true}
	if err := db.Create(&ejercicio).Error; err != nil {
		t.Fatalf("creando ejercicio: %v", err)
	}

	deConcepto := preguntaBase("sobre el concepto")
	deConcepto.ConceptoID = &concepto.ConceptoID
	if _, err := svc.CreatePregunta(deConcepto); err != nil {
		t.Fatalf("CreatePregunta: %v", err)
	}

	deEjercicio := preguntaBase("sobre el ejercicio")
	deEjercicio.EjercicioID = &ejercicio.EjercicioID
	if _, err := svc.CreatePregunta(deEjercicio); err != nil {
		t.Fatalf("CreatePregunta: %v", err)
	}

	conceptos, err := svc.ListPorFuente("conceptos")
	if err != nil {
		t.Fatalf("ListPorFuente(conceptos): %v", err)
	}
	if len(conceptos) != 1 || conceptos[0].ConceptoTitulo != "Herencia mendeliana" {
		t.Errorf("fuente conceptos trajo %d preguntas", len(conceptos))
	}

	ejercicios, err := svc.ListPorFuente("ejercicios")
	if err != nil {
		t.Fatalf("ListPorFuente(ejercicios): %v", err)
	}
	if len(ejercicios) != 1 || ejercicios[0].EjercicioPregunta != "cruce Aa x aa" {
		t.Errorf("fuente ejercicios trajo %d preguntas", len(ejercicios))
	}

	if _, err := svc.ListPorFuente("usuarios"); !errors.Is(err, util.ErrFuenteInvalida) {
		t.Errorf("fuente desconocida: err = %v", err)
	}
}

func TestBuscarPreguntasPorSubcadena(t *testing.T) {
	svc, _ := newEvaluacionService(t)

	for _, texto := range []string{"Genotipo del híbrido", "Fenotipo dominante"} {
		if _, err := svc.CreatePregunta(preguntaBase(texto)); err != nil {
			t.Fatalf("CreatePregunta: %v", err)
		}
	}

	resultado, err := svc.BuscarPreguntas("GENOTIPO")
	if err != nil {
		t.Fatalf("BuscarPreguntas: %v", err)
	}
	if len(resultado) != 1 || resultado[0].TextoPregunta != "Genotipo del híbrido" {
		t.Fatalf("la búsqueda debía ignorar mayúsculas, trajo %d", len(resultado))
	}
}
