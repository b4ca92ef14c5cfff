package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/service"
	"github.com/vaultpass/passgen-go/internal/widget"
)

type generateOptions struct {
	length  int
	upper   bool
	lower   bool
	digits  bool
	symbols bool
	count   int
	copy    bool
}

func (o *generateOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&o.length, "length", "l", crypto.DefaultLength, fmt.Sprintf("Password length (%d-%d)", crypto.MinLength, crypto.MaxLength))
	f.BoolVar(&o.upper, "upper", true, "Include uppercase letters")
	f.BoolVar(&o.lower, "lower", true, "Include lowercase letters")
	f.BoolVar(&o.digits, "digits", true, "Include digits")
	f.BoolVar(&o.symbols, "symbols", true, "Include symbols")
	f.IntVarP(&o.count, "count", "c", 1, fmt.Sprintf("Number of passwords (1-%d)", service.MaxCount))
	f.BoolVar(&o.copy, "copy", false, "Copy the last password to the clipboard")
}

// applyFile fills every option the user did not set on the command line
// from cfg.
func (o *generateOptions) applyFile(cmd *cobra.Command, cfg FileConfig) {
	changed := cmd.Flags().Changed
	setInt := func(name string, dst *int, v *int) {
		if v != nil && !changed(name) {
			*dst = *v
		}
	}
	setBool := func(name string, dst *bool, v *bool) {
		if v != nil && !changed(name) {
			*dst = *v
		}
	}

	setInt("length", &o.length, cfg.Length)
	setInt("count", &o.count, cfg.Count)
	setBool("upper", &o.upper, cfg.Upper)
	setBool("lower", &o.lower, cfg.Lower)
	setBool("digits", &o.digits, cfg.Digits)
	setBool("symbols", &o.symbols, cfg.Symbols)
}

func runGenerate(cmd *cobra.Command, app App, configPath string, opts *generateOptions) error {
	if configPath != "" {
		cfg, err := LoadFileConfig(configPath)
		if err != nil {
			return err
		}
		opts.applyFile(cmd, cfg)
	}

	if opts.count < 1 || opts.count > service.MaxCount {
		return service.ErrInvalidCount
	}

	state := widget.New(widget.WithGenerator(app.Generator))
	if got := state.SetLength(opts.length); got != opts.length {
		fmt.Fprintf(app.Err, "length %d out of range, using %d\n", opts.length, got)
	}
	state.SetClass(crypto.Upper, opts.upper)
	state.SetClass(crypto.Lower, opts.lower)
	state.SetClass(crypto.Digit, opts.digits)
	state.SetClass(crypto.Symbol, opts.symbols)

	for i := 0; i < opts.count; i++ {
		password, err := state.Generate()
		if err != nil {
			if errors.Is(err, crypto.ErrNoClassSelected) {
				fmt.Fprintln(app.Err, state.Status())
			}
			return err
		}
		fmt.Fprintln(app.Out, password)
	}

	if opts.copy {
		err := state.Copy(cmd.Context(), app.Clipboard)
		fmt.Fprintln(app.Err, state.Status())
		if err != nil {
			return err
		}
	}
	return nil
}
