package cmd

import (
	"github.com/inovacc/activeforks/internal/github"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addGlobalFlags adds the flags shared by every command
func addGlobalFlags(fs *pflag.FlagSet) {
	fs.String("api-url", github.DefaultBaseURL, "GitHub REST API base URL")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.String("log-format", "text", "Log format (text, json)")
	fs.String("log-file", "", "Append logs to this file (default: the application log for the page, stderr for show)")
}

// GlobalFlags holds the flags shared by every command
type GlobalFlags struct {
	APIURL    string
	LogLevel  string
	LogFormat string
	LogFile   string
}

// extractGlobalFlags extracts the shared flags from a cobra command
func extractGlobalFlags(cmd *cobra.Command) GlobalFlags {
	apiURL, _ := cmd.Flags().GetString("api-url")
	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	file, _ := cmd.Flags().GetString("log-file")

	return GlobalFlags{
		APIURL:    apiURL,
		LogLevel:  level,
		LogFormat: format,
		LogFile:   file,
	}
}
