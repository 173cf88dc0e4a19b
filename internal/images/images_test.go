package images

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_PosterPath(t *testing.T) {
	n := New("https://cdn.example/t/p/w500/", "")

	urls := n.Normalize(map[string]any{"posterPath": "/x.jpg"})

	assert.Equal(t, []string{"https://cdn.example/t/p/w500/x.jpg"}, urls)
}

func TestNormalize_Defaults(t *testing.T) {
	n := New("", "")

	assert.Equal(t, []string{DefaultCDNBase + "/abc.jpg"}, n.Normalize("/abc.jpg"))
	assert.Equal(t, []string{"https://img.example/a.png"}, n.Normalize("//img.example/a.png"))
}

func TestNormalize_Rules(t *testing.T) {
	n := New("https://cdn.example", "http")

	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"nil", nil, []string{}},
		{"empty string", "   ", []string{}},
		{"absolute http", "http://a.example/x.jpg", []string{"http://a.example/x.jpg"}},
		{"absolute mixed case", "HTTPS://a.example/x.jpg", []string{"HTTPS://a.example/x.jpg"}},
		{"protocol relative", "//a.example/x.jpg", []string{"http://a.example/x.jpg"}},
		{"root relative", "/x.jpg", []string{"https://cdn.example/x.jpg"}},
		{"bare path kept", "poster.jpg", []string{"poster.jpg"}},
		{"trimmed", "  /x.jpg\n", []string{"https://cdn.example/x.jpg"}},
		{"number coerced", json.Number("42"), []string{"42"}},
		{"remoteUrl wins over url", map[string]any{"url": "/local.jpg", "remoteUrl": "https://r.example/p.jpg"}, []string{"https://r.example/p.jpg"}},
		{"snake case poster", map[string]any{"poster_path": "/p.jpg"}, []string{"https://cdn.example/p.jpg"}},
		{"empty field skipped", map[string]any{"remoteUrl": "", "coverUrl": "/c.jpg"}, []string{"https://cdn.example/c.jpg"}},
		{"string map", map[string]string{"backdropPath": "/b.jpg"}, []string{"https://cdn.example/b.jpg"}},
		{"map without known fields", map[string]any{"coverType": "poster"}, []string{}},
		{"nested object field ignored", map[string]any{"url": map[string]any{"url": "/x.jpg"}}, []string{}},
		{"unexpected shape", struct{ URL string }{URL: "/x.jpg"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.in))
		})
	}
}

func TestNormalize_CollectionPreservesOrder(t *testing.T) {
	n := New("https://cdn.example", "")

	in := []any{
		map[string]any{"coverType": "poster", "remoteUrl": "https://r.example/poster.jpg"},
		nil,
		"",
		"/fanart.jpg",
		[]any{"/nested.jpg"},
		map[string]any{"coverType": "banner"},
		"/fanart.jpg",
	}

	urls := n.Normalize(in)

	assert.Equal(t, []string{
		"https://r.example/poster.jpg",
		"https://cdn.example/fanart.jpg",
		"https://cdn.example/fanart.jpg",
	}, urls)
}

func TestNormalize_TypedSlices(t *testing.T) {
	n := New("https://cdn.example", "")

	assert.Equal(t, []string{"https://cdn.example/a.jpg", "b.jpg"}, n.Normalize([]string{"/a.jpg", "", "b.jpg"}))
	assert.Equal(t, []string{"https://cdn.example/a.jpg"}, n.Normalize([]map[string]any{{"path": "/a.jpg"}, {}}))
}
