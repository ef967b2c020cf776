package cmd

import (
	"fmt"
	"runtime"

	"github.com/inovacc/activeforks/internal/application"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s version %s %s/%s\n",
			application.AppName, application.Version, runtime.GOOS, runtime.GOARCH)

		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
