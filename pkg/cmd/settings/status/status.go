package status

import (
	"context"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"envlinks/internal/cmdutil"
	"envlinks/internal/service"
)

func NewStatusCmd(svc service.SettingsService) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active configuration source",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			st, err := svc.Status(ctx)
			if err != nil {
				cmdutil.PrintE("Failed to check configuration: " + err.Error())
				return
			}

			tw := table.NewWriter()
			tw.AppendRow(table.Row{"Source", st.Source})
			tw.AppendRow(table.Row{"Environments", st.Environments})
			tw.AppendRow(table.Row{"URLs", st.URLs})
			cmdutil.Print(tw.Render())
		},
	}
}
