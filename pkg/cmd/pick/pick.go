package pick

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"envlinks/internal/cmdutil"
	"envlinks/internal/presenter"
	"envlinks/internal/service"
)

func NewPickCmd(resolver service.ConfigResolver, opener presenter.Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose an environment URL and open it",
		Long:  "Interactively choose one of the URLs of the active configuration and open it in the browser",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			links := presenter.Links(presenter.Renderable(resolver.Resolve(ctx)))
			if len(links) == 0 {
				cmdutil.PrintW("No environments configured")
				return
			}

			prompt := createLinkPrompt(links)
			idx, _, err := prompt.Run()
			if err != nil {
				cmdutil.PrintE(err.Error())
				return
			}

			link := links[idx]
			if err := opener.Open(link.URL); err != nil {
				cmdutil.PrintE(fmt.Sprintf("Failed to open %s: %s", link.URL, err.Error()))
				return
			}
			cmdutil.Print(fmt.Sprintf("Opened %s", color.CyanString(link.URL)))
		},
	}
}

func createLinkPrompt(links []presenter.Link) promptui.Select {
	return promptui.Select{
		Label: "Select URL",
		Items: links,
		Size:  10,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "▸ {{ .Environment | cyan }} / {{ .Name | bold }}",
			Inactive: "  {{ .Environment | faint }} / {{ .Name }}",
			Selected: "{{ .Name | green }}",
			Details:  "{{ .URL | faint }}",
		},
		Searcher: func(input string, index int) bool {
			l := links[index]
			needle := strings.ToLower(strings.TrimSpace(input))
			return strings.Contains(strings.ToLower(l.Environment+" "+l.Name), needle)
		},
	}
}
