package obslog

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds the CLI flag names used for log configuration.
type Flags struct {
	Level  string
	Format string
}

// DefaultFlags are the flag names cmd/limeass registers on its root
// command.
func DefaultFlags() Flags {
	return Flags{Level: "log-level", Format: "log-format"}
}

// Config holds CLI flag values for log configuration, built via
// DefaultFlags().NewConfig() and wired into a cobra.Command with
// RegisterFlags.
type Config struct {
	Level  string
	Format string
	flags  Flags
}

// NewConfig returns a Config using f's flag names and obslog's defaults
// ("info"/"text").
func (f Flags) NewConfig() *Config {
	return &Config{Level: "info", Format: "text", flags: f}
}

// RegisterFlags adds the log level/format flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.flags.Level, c.Level,
		fmt.Sprintf("log level, one of: %v", AllLevelStrings()))
	flags.StringVar(&c.Format, c.flags.Format, c.Format,
		fmt.Sprintf("log format, one of: %v", AllFormatStrings()))
}

// RegisterCompletions registers shell completion for the log flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	if err := cmd.RegisterFlagCompletionFunc(c.flags.Level,
		cobra.FixedCompletions(AllLevelStrings(), cobra.ShellCompDirectiveNoFileComp)); err != nil {
		return fmt.Errorf("registering %s completion: %w", c.flags.Level, err)
	}
	if err := cmd.RegisterFlagCompletionFunc(c.flags.Format,
		cobra.FixedCompletions(AllFormatStrings(), cobra.ShellCompDirectiveNoFileComp)); err != nil {
		return fmt.Errorf("registering %s completion: %w", c.flags.Format, err)
	}
	return nil
}

// NewHandler builds a slog.Handler from c's current flag values.
func (c *Config) NewHandler(w io.Writer) (slog.Handler, error) {
	return NewHandlerFromStrings(w, c.Level, c.Format)
}
