package settingscmd

import (
	"github.com/spf13/cobra"

	"envlinks/internal/service"
	"envlinks/pkg/cmd/settings/download"
	"envlinks/pkg/cmd/settings/example"
	"envlinks/pkg/cmd/settings/load"
	"envlinks/pkg/cmd/settings/reset"
	"envlinks/pkg/cmd/settings/status"
)

func NewSettingsCmd(svc service.SettingsService) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings <command>",
		Aliases: []string{"s"},
		Short:   "Manage the URL configuration",
		Long:    "Load a custom URL configuration from a json file, restore the bundled default or download the active one",
	}

	cmd.AddCommand(load.NewLoadCmd(svc))
	cmd.AddCommand(reset.NewResetCmd(svc))
	cmd.AddCommand(download.NewDownloadCmd(svc))
	cmd.AddCommand(status.NewStatusCmd(svc))
	cmd.AddCommand(example.NewExampleCmd())
	return cmd
}
