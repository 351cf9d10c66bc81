package example

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"envlinks/internal/cmdutil"
	"envlinks/internal/service"
)

func NewExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example configuration file",
		Run: func(cmd *cobra.Command, args []string) {
			value, err := json.MarshalIndent(service.Example(), "", "  ")
			if err != nil {
				cmdutil.PrintE(err.Error())
				return
			}
			cmdutil.Print(string(value))
		},
	}
}
