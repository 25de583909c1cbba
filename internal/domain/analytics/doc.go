// Package analytics contiene el motor de agregación del dashboard de farmacia:
// transformaciones puras que convierten las líneas del reporte diario y las
// respuestas mensuales/anuales de la Report API en las series que consume la vista.
//
// Ninguna función de este paquete hace I/O, guarda estado ni devuelve errores por
// problemas de calidad de datos: los datos faltantes se degradan a null (NullDecimal
// no válido), cero o un resultado etiquetado (entity.Growth). Todas son seguras para
// uso concurrente.
package analytics
