package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"native-messagebox/internal/config"
	"native-messagebox/internal/logger"
	"native-messagebox/internal/msgbox"
)

// CLI shows one message box and reports the button that closed it.
type CLI struct {
	Config    string   `type:"path" env:"MSGBOX_CONFIG" help:"Config file (default: user config dir)"`
	Text      string   `short:"m" help:"Message text (overrides config)"`
	Title     string   `short:"t" help:"Window title (overrides config)"`
	Flag      []string `short:"f" sep:"," help:"Style flag such as YES_NO or ICON_QUESTION; repeatable (overrides config)"`
	Strict    bool     `help:"Reject flags from the same exclusive family"`
	Console   bool     `help:"Prompt on the terminal instead of opening a window"`
	Print     bool     `short:"p" help:"Print the pressed button to stdout"`
	LogLevel  string   `env:"MSGBOX_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	LogFile   string   `type:"path" help:"Append JSON logs to this file"`
	Instance  string   `help:"Exit without showing anything if a dialog with this name is already open"`
	Save      bool     `help:"Store the merged text, title, flags and options as the new config defaults and exit"`
	ListFlags bool     `help:"List flag names and exit"`
}

type runEnv struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	// host overrides the host picked from the flags; used by tests.
	host msgbox.Host
}

func main() {
	var cli CLI
	parser := kong.Must(&cli,
		kong.Name("msgbox"),
		kong.Description("Show a modal message box and report the pressed button"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		parser.FatalIfErrorf(err)
	}

	if cli.Print || cli.Console || cli.ListFlags || cli.Save {
		ensureConsole()
	}
	os.Exit(cli.run(runEnv{
		fs:     afero.NewOsFs(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}))
}

func (c *CLI) run(env runEnv) int {
	if c.ListFlags {
		fmt.Fprintln(env.stdout, strings.Join(msgbox.FlagNames(), "\n"))
		return ExitSuccess
	}

	cfg, err := config.Load(env.fs, c.Config)
	if err != nil {
		return fail(env.stderr, nil, fmt.Errorf("%w: %w", errConfig, err))
	}
	c.apply(cfg)

	if c.Save {
		if err := cfg.Save(env.fs); err != nil {
			return fail(env.stderr, nil, fmt.Errorf("%w: %w", errConfig, err))
		}
		fmt.Fprintf(env.stdout, "Configuration saved to %s\n", cfg.ConfigPath())
		return ExitSuccess
	}

	log, closeLog, err := c.logger(env.fs, cfg, env.stderr)
	if err != nil {
		return fail(env.stderr, nil, fmt.Errorf("%w: %w", errConfig, err))
	}
	defer closeLog()

	req, err := cfg.Request()
	if err != nil {
		return fail(env.stderr, log, fmt.Errorf("%w: %w", errUsage, err))
	}

	if c.Instance != "" {
		guard, err := acquireInstance(c.Instance)
		if err != nil {
			return fail(env.stderr, log, err)
		}
		defer guard.Release()
	}

	host := env.host
	if host == nil {
		if cfg.Console {
			host = msgbox.NewConsoleHost(env.stdin, env.stdout)
		} else {
			host = msgbox.DefaultHost()
		}
	}
	opts := []msgbox.Option{msgbox.WithLogger(log)}
	if cfg.Strict {
		opts = append(opts, msgbox.WithStrictFlags())
	}

	outcome, err := msgbox.New(host, opts...).ShowRequest(req)
	if err != nil {
		return fail(env.stderr, log, err)
	}
	log.Info("message box closed", "outcome", outcome.String())
	if c.Print {
		fmt.Fprintln(env.stdout, outcome.String())
	}
	return ExitSuccess
}

// apply layers command line values over the loaded configuration.
func (c *CLI) apply(cfg *config.Config) {
	if c.Text != "" {
		cfg.Text = c.Text
	}
	if c.Title != "" {
		cfg.Title = c.Title
	}
	if len(c.Flag) > 0 {
		cfg.Flags = c.Flag
	}
	if c.Strict {
		cfg.Strict = true
	}
	if c.Console {
		cfg.Console = true
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.LogFile = c.LogFile
	}
}

func (c *CLI) logger(fs afero.Fs, cfg *config.Config, stderr io.Writer) (*slog.Logger, func(), error) {
	log := logger.New(stderr, cfg.LogLevel)
	if cfg.LogFile == "" {
		return log, func() {}, nil
	}
	fileLog, err := logger.NewFile(fs, cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return logger.Tee(log, fileLog.Logger), func() { _ = fileLog.Close() }, nil
}
