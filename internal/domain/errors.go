package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El motor de agregación no los usa para problemas de calidad de datos:
// datos faltantes o mal formados se degradan a null/cero, nunca a error.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidColor        = errors.New("color hexadecimal inválido")
	ErrReportNotRecognized = errors.New("el documento no contiene un reporte diario reconocible")
)
