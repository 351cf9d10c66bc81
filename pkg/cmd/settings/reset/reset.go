package reset

import (
	"context"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"envlinks/internal/cmdutil"
	"envlinks/internal/service"
)

func NewResetCmd(svc service.SettingsService) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default configuration",
		Long:  "Stop using the custom configuration and remove it from the local storage",
		Run: func(cmd *cobra.Command, args []string) {
			if !yes {
				p := promptui.Prompt{
					Label:     "Are you sure you want to restore the default configuration?",
					IsConfirm: true,
				}
				result, err := p.Run()
				if err != nil && err != promptui.ErrAbort {
					cmdutil.PrintE(err.Error())
					return
				}
				if !lo.Contains([]string{"Yes", "yes", "y", "Y"}, result) {
					return
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			if err := svc.Reset(ctx); err != nil {
				cmdutil.PrintE("Failed to restore configuration: " + err.Error())
				return
			}

			cmdutil.PrintS("Default configuration restored!")
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
