package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/designfmt/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	timeZone   string
	logLevel   string
	logFormat  string
}

// Execute runs the command line. Command output goes to outW, logs and
// diagnostics to errW.
func Execute(args []string, outW, errW io.Writer) error {
	slog.Debug("CLI started.", "args", args)

	root := newRootCmd(outW, errW)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Anything cobra reports itself is a usage problem.
	return &ExitError{Code: 2, Message: err.Error()}
}

func newRootCmd(outW, errW io.Writer) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "designfmt",
		Short: "Format and check declarative markup attribute values",
		Long: `designfmt converts component property values to and from the attribute
strings used in declarative markup: booleans, numbers, dates, time zones,
shortcut key combinations and resource references.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to an HCL configuration file.")
	pf.StringVar(&flags.timeZone, "time-zone", "", "Time zone for dates, e.g. 'GMT+2' or 'Europe/Helsinki'.")
	pf.StringVar(&flags.logLevel, "log-level", "", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log output format. Options: 'text' or 'json'.")

	newApp := func() (*app.App, error) {
		cfg, err := app.NewConfig(app.Config{
			ConfigPath: flags.configPath,
			TimeZone:   flags.timeZone,
			LogLevel:   strings.ToLower(flags.logLevel),
			LogFormat:  strings.ToLower(flags.logFormat),
		})
		if err != nil {
			return nil, &ExitError{Code: 2, Message: err.Error()}
		}
		a, err := app.NewApp(errW, cfg)
		if err != nil {
			return nil, &ExitError{Code: 2, Message: err.Error()}
		}
		return a, nil
	}

	root.AddCommand(
		newTypesCmd(),
		newFormatCmd(newApp),
		newCheckCmd(newApp),
		newAttrsCmd(newApp),
	)
	return root
}

func failed(err error) error {
	return &ExitError{Code: 1, Message: fmt.Sprintf("error: %v", err)}
}
