package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrLoad agrupa todos los fallos de carga del dataset; los errores específicos lo envuelven.
	ErrLoad            = errors.New("no se pudo cargar el dataset")
	ErrSourceNotFound  = loadError("la fuente de datos no existe")
	ErrMissingColumn   = loadError("falta una columna obligatoria")
	ErrMalformedSource = loadError("estructura de datos inválida")

	// ErrNoData indica que el filtro no dejó registros. No es un fallo: la capa de
	// presentación debe mostrar el estado "sin datos" y omitir las agregaciones.
	ErrNoData = errors.New("no hay datos que coincidan con el filtro seleccionado")
)

type wrappedLoadError struct{ msg string }

func loadError(msg string) error { return &wrappedLoadError{msg: msg} }

func (e *wrappedLoadError) Error() string { return e.msg }

// Unwrap permite errors.Is(err, ErrLoad) para cualquier error de carga.
func (e *wrappedLoadError) Unwrap() error { return ErrLoad }
