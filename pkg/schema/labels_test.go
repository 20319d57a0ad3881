package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single word", "title", "Title"},
		{"snake case", "seo_title", "Seo Title"},
		{"kebab case", "hero-image", "Hero Image"},
		{"camel case", "publishDate", "Publish Date"},
		{"trailing number", "page_1", "Page 1"},
		{"object model name", "object_12", "Object 12"},
		{"mixed separators", "site_config-v2", "Site Config V 2"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, DefaultLabel(tc.in))
		})
	}
}
