package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/catalogo-admin/internal/domain/catalog"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Electrónica", "electrnica"},
		{"espacios multiples y signos", "Home  Garden!!", "home-garden"},
		{"espacios alrededor", "  Ropa Deportiva  ", "ropa-deportiva"},
		{"guiones y guion bajo se conservan", "audio_video-pro", "audio_video-pro"},
		{"numeros", "Top 10 Ofertas", "top-10-ofertas"},
		{"solo simbolos", "!!!", ""},
		{"vacio", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, catalog.Slugify(tc.in))
		})
	}
}

// El mismo nombre siempre produce el mismo slug.
func TestSlugify_Determinista(t *testing.T) {
	first := catalog.Slugify("Hogar y Jardín")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, catalog.Slugify("Hogar y Jardín"))
	}
}

func TestNormalizeSKU(t *testing.T) {
	assert.Equal(t, "ABC-123", catalog.NormalizeSKU("  abc-123  "))
	assert.Equal(t, "SKU001", catalog.NormalizeSKU("sku001"))
}
