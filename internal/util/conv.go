package util

import "strconv"

// MustParseUint convierte una cadena a uint; devuelve 0 si no es numérica.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ParseEstado interpreta el parámetro estado ("true"/"false") de las rutas de
// búsqueda por estado. El segundo valor indica si la cadena era válida.
func ParseEstado(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
