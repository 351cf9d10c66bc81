package presenter

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"envlinks/internal/types"
)

// Link is a single openable entry together with the environment it belongs to.
type Link struct {
	Environment string
	Class       string
	Name        string
	URL         string
}

// Renderable drops what cannot be shown: environments without name, class or
// urls, and url entries without name or url. The rest of the document is kept,
// unlike the settings path which rejects the document as a whole.
func Renderable(cfg types.Configuration) []types.Environment {
	envs := lo.Filter(cfg.Environments, func(env types.Environment, _ int) bool {
		return env.Name != "" && env.Class != "" && env.URLs != nil
	})

	return lo.Map(envs, func(env types.Environment, _ int) types.Environment {
		env.URLs = lo.Filter(env.URLs, func(u types.URLEntry, _ int) bool {
			return u.Name != "" && u.URL != ""
		})
		return env
	})
}

func Links(envs []types.Environment) []Link {
	return lo.FlatMap(envs, func(env types.Environment, _ int) []Link {
		return lo.Map(env.URLs, func(u types.URLEntry, _ int) Link {
			return Link{Environment: env.Name, Class: env.Class, Name: u.Name, URL: u.URL}
		})
	})
}

// Find looks a link up by environment and entry name, case-insensitively.
// An empty environment matches any.
func Find(envs []types.Environment, environment, name string) (Link, bool) {
	return lo.Find(Links(envs), func(l Link) bool {
		return (environment == "" || strings.EqualFold(l.Environment, environment)) &&
			strings.EqualFold(l.Name, name)
	})
}

func Table(envs []types.Environment) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Environment", "Name", "URL"})
	for _, env := range envs {
		for _, u := range env.URLs {
			tw.AppendRow(table.Row{env.Name, u.Name, u.URL})
		}
		tw.AppendSeparator()
	}
	return tw.Render()
}
