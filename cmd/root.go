package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/activeforks/internal/application"
	"github.com/inovacc/activeforks/internal/cli"
	"github.com/inovacc/activeforks/internal/github"
	"github.com/inovacc/activeforks/internal/page"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("the interactive page needs a terminal; use 'activeforks show <owner/repo>' instead")

var rootCmd = &cobra.Command{
	Use:   application.AppName + " [owner/repo | link]",
	Short: "Find the active forks of a GitHub repository",
	Long: `Activeforks lists the forks of a GitHub repository next to the
repository itself, so the forks that are still maintained stand out.

The interactive page sorts, searches, filters and pages the forks. Forks
as large as the origin are highlighted in red, starred forks in green.

The argument may be an owner/repo identifier, a GitHub URL or a shared
link ending in #owner/repo.

Examples:
  activeforks                                      # Start with an empty query
  activeforks octocat/Hello-World                  # Open a repository
  activeforks https://github.com/octocat/Hello-World.git
  activeforks '#octocat/Hello-World'               # Open a shared link
  activeforks show octocat/Hello-World --where 'Stars>0'`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runPage,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().Bool("dark", false, "Start with the dark palette")
}

func runPage(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	flags := extractGlobalFlags(cmd)
	dark, _ := cmd.Flags().GetBool("dark")

	logPath := flags.LogFile
	if logPath == "" {
		var err error

		if logPath, err = application.DefaultLogPath(); err != nil {
			return err
		}
	}

	logger, closeLog, err := openLogger(logPath, flags.LogLevel, flags.LogFormat)
	if err != nil {
		return err
	}

	defer func() { _ = closeLog() }()

	client, err := github.NewClient(github.Config{BaseURL: flags.APIURL, Logger: logger})
	if err != nil {
		return err
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}

	hist, err := startLocation(arg)
	if err != nil {
		return err
	}

	session := page.NewSession(cmd.Context(), page.Config{Fetcher: client, Location: hist, Logger: logger})
	defer session.Close()

	logger.Info("starting page", "version", application.Version, "query", hist.Fragment())

	model := cli.NewPageModel(session, cli.NewStyles(os.Stdout, dark, false), dark)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run page: %w", err)
	}

	return nil
}
