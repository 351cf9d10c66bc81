package download

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"envlinks/internal/cmdutil"
	"envlinks/internal/service"
)

func NewDownloadCmd(svc service.SettingsService) *cobra.Command {
	var location string
	cmd := &cobra.Command{
		Use:     "download",
		Short:   "Download the active configuration",
		Long:    "Write the active configuration, custom or default, to a json file. Use '-' to print it",
		Example: "envlinks settings download --location urls.json",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			if location == "-" {
				if err := svc.Download(ctx, os.Stdout); err != nil {
					cmdutil.PrintE("Failed to download configuration: " + err.Error())
				}
				return
			}

			if err := writeFile(ctx, svc, location); err != nil {
				cmdutil.PrintE(err.Error())
				return
			}

			cmdutil.PrintS("Configuration downloaded: " + location)
		},
	}
	cmd.Flags().StringVarP(&location, "location", "l", service.DownloadFileName, "Location to write the configuration file")
	return cmd
}

// writeFile leaves nothing behind at location when the download fails.
func writeFile(ctx context.Context, svc service.SettingsService, location string) error {
	configFile, err := os.Create(location)
	if err != nil {
		return errors.Wrap(err, "error creating file")
	}

	if err := svc.Download(ctx, configFile); err != nil {
		_ = configFile.Close()
		_ = os.Remove(location)
		return errors.Wrap(err, "failed to download configuration")
	}

	return configFile.Close()
}
