package util

import "errors"

var (
	ErrCategoriaNoEncontrada = errors.New("Categoría no encontrada")
	ErrTipoNoEncontrado      = errors.New("Tipo de ejercicio no encontrado")
	ErrConceptoNoEncontrado  = errors.New("Concepto no encontrado")
	ErrEjercicioNoEncontrado = errors.New("Ejercicio no encontrado")
	ErrPreguntaNoEncontrada  = errors.New("Pregunta no encontrada")
	ErrUsuarioNoEncontrado   = errors.New("Usuario no encontrado")
	ErrRolNoEncontrado       = errors.New("Rol no encontrado")

	ErrEmailRegistrado        = errors.New("El email ya está registrado")
	ErrCredencialesInvalidas  = errors.New("Credenciales inválidas")
	ErrFuenteAmbigua          = errors.New("concepto_id y ejercicio_id no pueden estar presentes a la vez")
	ErrTipoPreguntaRequerido  = errors.New("El tipo de pregunta es requerido")
	ErrOpcionesRequeridas     = errors.New("La pregunta debe tener al menos una opción")
	ErrTextoOpcionRequerido   = errors.New("Toda opción debe tener texto")
	ErrEstadoInvalido         = errors.New("Estado no válido")
	ErrTipoEjercicioRequerido = errors.New("El tipo de ejercicio es requerido")
	ErrTipoEjercicioInvalido  = errors.New("Tipo de ejercicio no válido")
	ErrFuenteInvalida         = errors.New("Filtro inválido. Use 'conceptos' o 'ejercicios'")
)
