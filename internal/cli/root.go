// Package cli implements the passgen command line.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/widget"
)

var version = "1.0.0"

// App carries the collaborators the commands write to.
type App struct {
	Out       io.Writer
	Err       io.Writer
	Clipboard widget.Clipboard
	Generator crypto.Generator
}

// DefaultApp writes to stdout/stderr and the system clipboard.
func DefaultApp() App {
	return App{
		Out:       os.Stdout,
		Err:       os.Stderr,
		Clipboard: widget.SystemClipboard{},
	}
}

// NewRootCmd builds the passgen command tree. Running it without a
// subcommand generates passwords.
func NewRootCmd(app App) *cobra.Command {
	var configPath string

	gen := &generateOptions{}
	rootCmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords",
		Long: `passgen v` + version + `
Generates passwords containing at least one character from every
selected character set, shuffled with a separate random source.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, app, configPath, gen)
		},
	}
	rootCmd.SetOut(app.Out)
	rootCmd.SetErr(app.Err)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with generation defaults")
	gen.addFlags(rootCmd)

	subGen := &generateOptions{}
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, app, configPath, subGen)
		},
	}
	subGen.addFlags(generateCmd)

	rootCmd.AddCommand(generateCmd, newStatsCmd(app), newCharsetsCmd(app))
	return rootCmd
}
