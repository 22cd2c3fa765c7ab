// Package catalog contiene las reglas puras de normalización del catálogo:
// derivación de slugs y normalización de SKU. Sin dependencias de persistencia.
package catalog

import (
	"regexp"
	"strings"
)

var (
	spaces  = regexp.MustCompile(`\s+`)
	nonWord = regexp.MustCompile(`[^a-z0-9_-]+`)
)

// Slugify deriva el slug de un nombre: minúsculas, cada corrida de espacios se
// vuelve un guion y se elimina todo carácter fuera de [a-z0-9_-]. Determinista:
// el mismo nombre siempre produce el mismo slug.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = spaces.ReplaceAllString(s, "-")
	return nonWord.ReplaceAllString(s, "")
}

// NormalizeSKU normaliza el SKU a mayúsculas sin espacios alrededor.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}
