package open

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"envlinks/internal/cmdutil"
	"envlinks/internal/presenter"
	"envlinks/internal/service"
)

func NewOpenCmd(resolver service.ConfigResolver, opener presenter.Opener) *cobra.Command {
	var environment string
	cmd := &cobra.Command{
		Use:     "open <name>",
		Short:   "Open an environment URL in the browser",
		Example: "envlinks open \"Web\" --env Production",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			envs := presenter.Renderable(resolver.Resolve(ctx))
			link, ok := presenter.Find(envs, environment, args[0])
			if !ok {
				cmdutil.PrintE(fmt.Sprintf("No URL named %s", args[0]))
				return
			}

			if err := opener.Open(link.URL); err != nil {
				cmdutil.PrintE(fmt.Sprintf("Failed to open %s: %s", link.URL, err.Error()))
				return
			}
			cmdutil.Print(fmt.Sprintf("Opened %s", color.CyanString(link.URL)))
		},
	}
	cmd.Flags().StringVarP(&environment, "env", "e", "", "Environment the URL belongs to. Empty matches the first URL with that name")
	return cmd
}
