package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/inovacc/activeforks/internal/cli"
	"github.com/inovacc/activeforks/internal/forks"
	"github.com/inovacc/activeforks/internal/github"
	"github.com/inovacc/activeforks/internal/page"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var errFetchFailed = errors.New("fetch failed")

var showCmd = &cobra.Command{
	Use:   "show <owner/repo>",
	Short: "Print the origin panel and fork table once",
	Long: `Fetch a repository and its forks and print them without the
interactive page, for scripts and pipes.

Sorting, searching, filtering and paging work like the page. Filters use
<column><op><value> with the operators = != > >= < <= and ~ (contains);
columns are matched by label or API key.

Examples:
  activeforks show octocat/Hello-World
  activeforks show octocat/Hello-World --sort "Last Push"
  activeforks show octocat/Hello-World --where 'Stars>0' --where 'Size!=108'
  activeforks show octocat/Hello-World --search bob --length all
  activeforks show octocat/Hello-World --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	addShowFlags(showCmd.Flags())
}

// addShowFlags adds the table and output flags of the show command
func addShowFlags(fs *pflag.FlagSet) {
	fs.String("sort", forks.SortColumnLabel, "Column to sort by (label or API key)")
	fs.Bool("asc", false, "Sort ascending")
	fs.String("search", "", "Only show forks with a column containing this text")
	fs.StringArray("where", nil, "Column filter such as 'Stars>0' (repeatable)")
	fs.String("length", "25", "Rows per page (25, 50, all)")
	fs.Int("page", 1, "Page to print")
	fs.Bool("json", false, "Output as JSON")
	fs.Bool("no-color", false, "Disable colors")
	fs.Bool("dark", false, "Use the dark palette")
}

// showOptions holds the table settings of the show command
type showOptions struct {
	Sort     string
	Asc      bool
	Search   string
	Where    []string
	Length   string
	Page     int
	JSON     bool
	NoColor  bool
	Dark     bool
	Fetcher  page.Fetcher
	Logger   *slog.Logger
	Location *page.History
}

// showOutput is the JSON document printed by show --json
type showOutput struct {
	Repository string              `json:"repository"`
	Link       string              `json:"link"`
	Origin     []forks.Field       `json:"origin,omitempty"`
	Alert      *forks.Alert        `json:"alert,omitempty"`
	Total      int                 `json:"total"`
	Filtered   int                 `json:"filtered"`
	Page       int                 `json:"page"`
	Pages      int                 `json:"pages"`
	Forks      []map[forks.Key]any `json:"forks"`
}

func runShow(cmd *cobra.Command, args []string) error {
	flags := extractGlobalFlags(cmd)

	opts := showOptions{}
	opts.Sort, _ = cmd.Flags().GetString("sort")
	opts.Asc, _ = cmd.Flags().GetBool("asc")
	opts.Search, _ = cmd.Flags().GetString("search")
	opts.Where, _ = cmd.Flags().GetStringArray("where")
	opts.Length, _ = cmd.Flags().GetString("length")
	opts.Page, _ = cmd.Flags().GetInt("page")
	opts.JSON, _ = cmd.Flags().GetBool("json")
	opts.NoColor, _ = cmd.Flags().GetBool("no-color")
	opts.Dark, _ = cmd.Flags().GetBool("dark")

	logger := newShowLogger(cmd, flags)
	if flags.LogFile != "" {
		fileLogger, closeLog, err := openLogger(flags.LogFile, flags.LogLevel, flags.LogFormat)
		if err != nil {
			return err
		}

		defer func() { _ = closeLog() }()

		logger = fileLogger
	}

	client, err := github.NewClient(github.Config{BaseURL: flags.APIURL, Logger: logger})
	if err != nil {
		return err
	}

	opts.Fetcher = client
	opts.Logger = logger

	return showRepo(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
}

// newShowLogger creates the stderr logger of the show command, falling back
// to text for an unknown format
func newShowLogger(cmd *cobra.Command, flags GlobalFlags) *slog.Logger {
	logger, err := newLogger(cmd.ErrOrStderr(), flags.LogLevel, flags.LogFormat)
	if err != nil {
		logger, _ = newLogger(cmd.ErrOrStderr(), flags.LogLevel, "text")
		logger.Warn("falling back to text logs", slog.String("error", err.Error()))
	}

	return logger
}

// configureTable applies the sort, search, filter and page length options
func configureTable(tbl *forks.Table, opts showOptions) error {
	col := forks.ColumnIndex(opts.Sort)
	if col < 0 {
		return fmt.Errorf("unknown sort column %q", opts.Sort)
	}

	if err := tbl.SortBy(col, !opts.Asc); err != nil {
		return err
	}

	criteria, err := forks.ParseCriteria(opts.Where)
	if err != nil {
		return err
	}

	length, err := forks.ParsePageLength(opts.Length)
	if err != nil {
		return err
	}

	tbl.SetSearch(opts.Search)
	tbl.SetCriteria(criteria)

	return tbl.SetPageLength(length)
}

func showRepo(ctx context.Context, w io.Writer, repo string, opts showOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	loc := opts.Location
	if loc == nil {
		loc = page.NewHistory("", "")
	}

	session := page.NewSession(ctx, page.Config{Fetcher: opts.Fetcher, Location: loc, Logger: opts.Logger})
	defer session.Close()

	if err := configureTable(session.Table(), opts); err != nil {
		return err
	}

	tasks := session.Submit(repo)
	if len(tasks) == 0 {
		if a := session.Alert(); a != nil {
			return errors.New(a.Message)
		}

		return fmt.Errorf("nothing to fetch for %q", repo)
	}

	fetchErr := session.Run(tasks)

	tbl := session.Table()
	tbl.SetPage(opts.Page - 1)

	if opts.JSON {
		if err := outputJSON(w, newShowOutput(session, loc)); err != nil {
			return err
		}
	} else if err := cli.Render(w, session, cli.NewStyles(w, opts.Dark, opts.NoColor)); err != nil {
		return err
	}

	if fetchErr != nil {
		return fmt.Errorf("%w: %w", errFetchFailed, fetchErr)
	}

	return nil
}

func newShowOutput(session *page.Session, loc *page.History) showOutput {
	tbl := session.Table()
	columns := tbl.Columns()

	out := showOutput{
		Repository: session.Query(),
		Link:       loc.Href(),
		Origin:     session.OriginFields(),
		Alert:      session.Alert(),
		Total:      tbl.Len(),
		Filtered:   tbl.FilteredLen(),
		Page:       tbl.Page() + 1,
		Pages:      tbl.PageCount(),
		Forks:      []map[forks.Key]any{},
	}

	for _, row := range tbl.Visible() {
		values := make(map[forks.Key]any, len(columns))
		for i, c := range columns {
			values[c.Key] = row.Values[i]
		}

		out.Forks = append(out.Forks, values)
	}

	return out
}
