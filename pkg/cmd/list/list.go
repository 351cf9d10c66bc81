package list

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"envlinks/internal/cmdutil"
	"envlinks/internal/presenter"
	"envlinks/internal/service"
	"envlinks/internal/types"
)

func NewListCmd(resolver service.ConfigResolver) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List environment URLs",
		Long:    "List the URLs of every environment in the active configuration. Environments or entries missing a field are skipped",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			envs := presenter.Renderable(resolver.Resolve(ctx))
			if asJSON {
				value, err := json.MarshalIndent(types.Configuration{Environments: envs}, "", "  ")
				if err != nil {
					cmdutil.PrintE(err.Error())
					return
				}
				cmdutil.Print(string(value))
				return
			}

			if len(envs) == 0 {
				cmdutil.PrintW("No environments configured")
				return
			}

			cmdutil.Print(presenter.Table(envs))
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the renderable configuration as json")
	return cmd
}
