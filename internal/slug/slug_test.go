package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	assert.Equal(t, "3-nice-house", Make(3, "Nice House"))
	assert.Equal(t, "1-casa-na-praia", Make(1, "Casa na Praia"))
	assert.Equal(t, "42-apartamento-sao-joao", Make(42, "Apartamento São João"))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Nice House", "nice-house"},
		{"  lots   of   spaces  ", "lots-of-spaces"},
		{"Cobertura c/ Piscina & Churrasqueira!", "cobertura-c-piscina-churrasqueira"},
		{"Terreno 500m²", "terreno-500m"},
		{"já-slugificado", "ja-slugificado"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestWithSuffix(t *testing.T) {
	a := WithSuffix("3-nice-house")
	b := WithSuffix("3-nice-house")

	assert.True(t, strings.HasPrefix(a, "3-nice-house-"))
	assert.Len(t, a, len("3-nice-house-")+6)
	assert.NotEqual(t, a, b, "two suffixes should not collide")
}
