package load

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"envlinks/internal/cmdutil"
	"envlinks/internal/service"
	"envlinks/internal/types"
)

func NewLoadCmd(svc service.SettingsService) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:     "load",
		Short:   "Load a custom configuration",
		Long:    "Validate a json configuration file and use it instead of the bundled default. The file is rejected as a whole if any environment or URL entry is malformed",
		Example: "envlinks settings load --file urls.json",
		Run: func(cmd *cobra.Command, args []string) {
			if file == "" && len(args) > 0 {
				file = args[0]
			}
			if file == "" {
				cmdutil.PrintE("Please specify a configuration file --file")
				return
			}

			raw, err := os.ReadFile(file)
			if err != nil {
				cmdutil.PrintE(fmt.Sprintf("Failed to read %s: %s", file, err.Error()))
				return
			}

			cmdutil.StartLoading("Loading configuration...")
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			cfg, err := svc.Load(ctx, raw)
			cmdutil.StopLoading()
			if err != nil {
				cmdutil.PrintE(describe(err))
				return
			}

			cmdutil.PrintS("Configuration loaded successfully!")
			cmdutil.Print(fmt.Sprintf("%s environments, %s URLs",
				color.CyanString("%d", len(cfg.Environments)),
				color.CyanString("%d", service.CountURLs(cfg))))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the json configuration file")
	return cmd
}

func describe(err error) string {
	switch {
	case errors.Is(err, types.ErrParse):
		return "Failed to process json file: " + err.Error()
	case errors.Is(err, types.ErrValidation):
		return "Invalid json format, check the file structure: " + err.Error()
	case errors.Is(err, types.ErrStorageUnavailable):
		return "Error: local storage is not available"
	default:
		return "Failed to save configuration: " + err.Error()
	}
}
