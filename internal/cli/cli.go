// Package cli implements the knapsolver command-line interface.
//
// # Commands
//
//   - solve: read an instance file and solve it with one of the algorithms
//   - generate: write a random instance of a classical family
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. With debug
// enabled the solver reports every value and bound improvement.
//
// # Example
//
//	func main() {
//	    c := cli.New(os.Stdout, os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "knapsolver"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ErrInvalidConfig is returned for unreadable, unknown or out-of-range
// configuration values, from a file or from flags.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is typically called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Out receives reports and generated instances.
	Out io.Writer
}

// New creates a CLI writing results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Knapsolver solves 0/1 knapsack instances exactly",
		Long:         `Knapsolver solves 0/1 knapsack instances with a primal-dual dynamic programming algorithm and writes value, bound and an optimality certificate.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.SetOut(c.Out)

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.generateCommand())

	return root
}
