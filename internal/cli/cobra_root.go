package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/logging"
	"taskboard/internal/repository/sqldb"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
	errors *ErrorHandler
	log    *logging.Logger
}

// RootOption customizes a RootCommand
type RootOption func(*rootOptions)

type rootOptions struct {
	out  io.Writer
	repo sqldb.Repository
	log  *logging.Logger
	run  ProgramRunner
}

// WithOutput sends command output to w instead of stdout
func WithOutput(w io.Writer) RootOption {
	return func(o *rootOptions) { o.out = w }
}

// WithRepository makes every command use repo instead of opening one
func WithRepository(repo sqldb.Repository) RootOption {
	return func(o *rootOptions) { o.repo = repo }
}

// WithLogger sets the logger handed to commands
func WithLogger(l *logging.Logger) RootOption {
	return func(o *rootOptions) { o.log = l }
}

// WithProgramRunner replaces the terminal runner used by the board command
func WithProgramRunner(run ProgramRunner) RootOption {
	return func(o *rootOptions) { o.run = run }
}

// NewRootCommand creates the root cobra command with global flags. cfg is
// replaced in place by defaults, environment and flags before any command runs.
func NewRootCommand(cfg *config.Config, opts ...RootOption) *RootCommand {
	o := rootOptions{log: logging.Default(), run: runProgram}
	for _, opt := range opts {
		opt(&o)
	}

	root := &RootCommand{
		config: cfg,
		errors: NewErrorHandler(),
		log:    o.log,
	}
	if o.repo != nil {
		root.app = NewAppWithRepository(cfg, o.repo, o.log, o.out)
	} else {
		root.app = NewApp(cfg, o.log, o.out)
	}

	root.cmd = &cobra.Command{
		Use:   "taskboard",
		Short: "A task board with a REST API and a terminal client",
		Long: `Taskboard keeps tasks organized by categories and tags.

EXAMPLES:
  taskboard serve                          # Serve the REST API on :3001
  taskboard board                          # Open the terminal board
  taskboard output format=csv > tasks.csv  # Export every task
  taskboard user create ada@example.com --name Ada
  taskboard post publish 3

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    TASKBOARD_DB_DRIVER                    sqlite or postgres (default: sqlite)
    TASKBOARD_DB_DIR                       Database directory (default: ~/.taskboard)
    TASKBOARD_DB_FILENAME                  Database filename (default: taskboard.db)
    TASKBOARD_DB_DSN                       Connection string, required for postgres
    TASKBOARD_DB_QUERY_TIMEOUT             Query timeout (default: 10s)

  Server Configuration:
    TASKBOARD_SERVER_ADDR / PORT           Listen address (default: :3001)
    TASKBOARD_SERVER_ALLOWED_ORIGINS       Comma separated CORS origins (default: *)

  Client Configuration:
    TASKBOARD_API_URL                      API base URL (default: http://localhost:3001/api)
    TASKBOARD_CLIENT_TIMEOUT               Request timeout, 0 for none

  Application Configuration:
    TASKBOARD_ENV                          development, testing or production
    TASKBOARD_APP_TIMEOUT                  Command timeout (default: 60s)
    TASKBOARD_DEBUG                        Enable debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.loadConfig(cmd)
		},
	}
	root.cmd.SetOut(root.app.out)

	root.addGlobalFlags()
	root.addSubcommands(o.run)

	return root
}

// Execute runs the root command with os.Args
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteArgs runs the root command with args instead of os.Args
func (r *RootCommand) ExecuteArgs(args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.Execute()
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-driver", "", "Database driver, sqlite or postgres (overrides TASKBOARD_DB_DRIVER)")
	flags.String("db-dir", "", "Database directory (overrides TASKBOARD_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TASKBOARD_DB_FILENAME)")
	flags.String("db-dsn", "", "Database connection string (overrides TASKBOARD_DB_DSN)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TASKBOARD_DB_QUERY_TIMEOUT)")

	// Server configuration
	flags.String("addr", "", "API listen address (overrides TASKBOARD_SERVER_ADDR)")
	flags.StringSlice("allowed-origins", nil, "CORS allowed origins (overrides TASKBOARD_SERVER_ALLOWED_ORIGINS)")

	// Client configuration
	flags.String("api-url", "", "API base URL for the board (overrides TASKBOARD_API_URL)")
	flags.Duration("client-timeout", 0, "Board request timeout (overrides TASKBOARD_CLIENT_TIMEOUT)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Command timeout (overrides TASKBOARD_APP_TIMEOUT)")
	flags.Bool("debug", false, "Enable debug logging (overrides TASKBOARD_DEBUG)")
}

// loadConfig rebuilds the configuration from defaults, environment and the
// flags the user actually set
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	durationFlag := func(name string) *time.Duration {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetDuration(name)
		return &v
	}

	overrides.DBDriver = stringFlag("db-driver")
	overrides.DBDir = stringFlag("db-dir")
	overrides.DBFilename = stringFlag("db-filename")
	overrides.DBDSN = stringFlag("db-dsn")
	overrides.DBQueryTimeout = durationFlag("db-query-timeout")
	overrides.Addr = stringFlag("addr")
	overrides.APIURL = stringFlag("api-url")
	overrides.ClientTimeout = durationFlag("client-timeout")
	overrides.Timeout = durationFlag("app-timeout")

	if flags.Changed("allowed-origins") {
		origins, _ := flags.GetStringSlice("allowed-origins")
		overrides.AllowedOrigins = &origins
	}
	if flags.Changed("debug") {
		debug, _ := flags.GetBool("debug")
		overrides.Debug = &debug
	}

	loaded, err := config.NewLoader().LoadWithOverrides(overrides)
	if err != nil {
		return r.errors.Handle("load configuration", err)
	}
	*r.config = *loaded

	if r.config.Application.Debug {
		r.log.SetDebug(true)
	}
	return nil
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands(run ProgramRunner) {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API",
		Long:  "Serve the task, category, tag and stats API until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return r.errors.Handle("serve", NewServeCommand(r.app).Execute(ctx, args))
		},
	}

	boardCmd := &cobra.Command{
		Use:   "board",
		Short: "Open the terminal board",
		Long:  "Open an interactive board backed by the API at --api-url.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.errors.Handle("run board", NewBoardCommandWithRunner(r.app, run).Execute(cmd.Context(), args))
		},
	}

	outputCmd := &cobra.Command{
		Use:   "output format=csv|json",
		Short: "Export every task",
		Long: `Export every task with its category and tags.

Supported formats:
  csv  - Comma-separated values, tags joined with ';'
  json - The same objects the API returns`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()

			return r.errors.Handle("export tasks", NewOutputCommand(r.app).Execute(ctx, args))
		},
	}

	r.cmd.AddCommand(serveCmd, boardCmd, outputCmd, r.userCommand(), r.postCommand())
}

func (r *RootCommand) userCommand() *cobra.Command {
	users := NewUserCommand(r.app)
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage demo users",
	}

	var name string
	createCmd := &cobra.Command{
		Use:   "create <email>",
		Short: "Create a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			return r.errors.Handle("create user", users.Create(ctx, args[0], changedString(cmd, "name", name)))
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "Display name")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return r.errors.Handle("get user", err)
			}
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			return r.errors.Handle("get user", users.Get(ctx, id))
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			return r.errors.Handle("list users", users.List(ctx))
		},
	}

	var email, newName string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a user's email or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return r.errors.Handle("update user", err)
			}
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			patch := sqldb.UserPatch{
				Email: changedString(cmd, "email", email),
				Name:  changedString(cmd, "name", newName),
			}
			return r.errors.Handle("update user", users.Update(ctx, id, patch))
		},
	}
	updateCmd.Flags().StringVar(&email, "email", "", "New email")
	updateCmd.Flags().StringVar(&newName, "name", "", "New display name")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user; their posts are kept without an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return r.errors.Handle("delete user", err)
			}
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			return r.errors.Handle("delete user", users.Delete(ctx, id))
		},
	}

	userCmd.AddCommand(createCmd, getCmd, listCmd, updateCmd, deleteCmd)
	return userCmd
}

func (r *RootCommand) postCommand() *cobra.Command {
	posts := NewPostCommand(r.app)
	postCmd := &cobra.Command{
		Use:   "post",
		Short: "Manage demo posts",
	}

	var (
		content string
		author  int64
	)
	createCmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create an unpublished post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			var authorID *int64
			if cmd.Flags().Changed("author") {
				authorID = &author
			}
			return r.errors.Handle("create post", posts.Create(ctx, args[0], changedString(cmd, "content", content), authorID))
		},
	}
	createCmd.Flags().StringVar(&content, "content", "", "Post body")
	createCmd.Flags().Int64Var(&author, "author", 0, "Author user id")

	byID := func(use, short, operation string, fn func(ctx context.Context, id int64) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return r.errors.Handle(operation, err)
				}
				ctx, cancel := r.timeoutContext(cmd)
				defer cancel()
				return r.errors.Handle(operation, fn(ctx, id))
			},
		}
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			return r.errors.Handle("list posts", posts.List(ctx))
		},
	}

	var title, newContent string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a post's title or content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return r.errors.Handle("update post", err)
			}
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			patch := sqldb.PostPatch{
				Title:   changedString(cmd, "title", title),
				Content: changedString(cmd, "content", newContent),
			}
			return r.errors.Handle("update post", posts.Update(ctx, id, patch))
		},
	}
	updateCmd.Flags().StringVar(&title, "title", "", "New title")
	updateCmd.Flags().StringVar(&newContent, "content", "", "New body")

	postCmd.AddCommand(
		createCmd,
		byID("get", "Show a post", "get post", posts.Get),
		listCmd,
		byID("publish", "Mark a post published", "publish post", posts.Publish),
		updateCmd,
		byID("delete", "Delete a post", "delete post", posts.Delete),
	)
	return postCmd
}

// timeoutContext bounds a short-lived command by the application timeout
func (r *RootCommand) timeoutContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second // Default timeout
}

// changedString returns &value when the flag was given on the command line
func changedString(cmd *cobra.Command, flag, value string) *string {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &value
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return id, nil
}
