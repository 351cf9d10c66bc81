package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"envlinks/internal/types"
)

func TestRenderable(t *testing.T) {
	cfg := types.Configuration{Environments: []types.Environment{
		{Name: "Dev", Class: "x", URLs: []types.URLEntry{
			{Name: "A", URL: "http://a"},
			{Name: "", URL: "http://nameless"},
			{Name: "No url"},
		}},
		{Name: "", Class: "y", URLs: []types.URLEntry{{Name: "B", URL: "http://b"}}},
		{Name: "No class", URLs: []types.URLEntry{{Name: "C", URL: "http://c"}}},
		{Name: "No urls", Class: "z"},
		{Name: "Empty", Class: "z", URLs: []types.URLEntry{}},
	}}

	got := Renderable(cfg)
	assert.Equal(t, []types.Environment{
		{Name: "Dev", Class: "x", URLs: []types.URLEntry{{Name: "A", URL: "http://a"}}},
		{Name: "Empty", Class: "z", URLs: []types.URLEntry{}},
	}, got)

	// input is not modified
	assert.Len(t, cfg.Environments[0].URLs, 3)
}

func TestFind(t *testing.T) {
	envs := []types.Environment{
		{Name: "Production", Class: "x", URLs: []types.URLEntry{{Name: "Web", URL: "https://prod"}}},
		{Name: "Homolog", Class: "y", URLs: []types.URLEntry{{Name: "Web", URL: "https://hml"}}},
	}

	link, ok := Find(envs, "homolog", "web")
	assert.True(t, ok)
	assert.Equal(t, "https://hml", link.URL)

	link, ok = Find(envs, "", "WEB")
	assert.True(t, ok)
	assert.Equal(t, "https://prod", link.URL)

	_, ok = Find(envs, "Production", "Api")
	assert.False(t, ok)
}

func TestLinksAndTable(t *testing.T) {
	envs := []types.Environment{
		{Name: "Production", Class: "x", URLs: []types.URLEntry{{Name: "Web", URL: "https://prod"}, {Name: "Api", URL: "https://api"}}},
	}
	assert.Equal(t, []Link{
		{Environment: "Production", Class: "x", Name: "Web", URL: "https://prod"},
		{Environment: "Production", Class: "x", Name: "Api", URL: "https://api"},
	}, Links(envs))

	out := Table(envs)
	assert.Contains(t, out, "https://api")
	assert.Contains(t, out, "Production")
}

func TestBrowserOpener_RejectsRelative(t *testing.T) {
	assert.Error(t, NewBrowserOpener().Open("/relative/path"))
}
