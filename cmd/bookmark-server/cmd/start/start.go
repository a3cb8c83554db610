package start

import (
	"github.com/spf13/cobra"
	"opencsg.com/bookmark-server/common/config"
)

func init() {
	Cmd.AddCommand(serverCmd)
}

var Cmd = &cobra.Command{
	Use:   "start",
	Short: "Start a service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// fail fast on a malformed config file or env value
		_, err := config.LoadConfig()
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
