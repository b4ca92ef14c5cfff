package cli

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/stats"
)

var errNotUniform = errors.New("distribution check failed")

func newStatsCmd(app App) *cobra.Command {
	var (
		trials  int
		workers int
		length  int
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Check character uniformity and required-character placement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := crypto.Selection{Length: crypto.Clamp(length), Classes: crypto.AllClasses()}

			fmt.Fprintf(app.Out, "Trials: %d, Workers: %d, Length: %d\n", trials, workers, sel.Length)

			bar := newBar(app.Err, trials, "pool draws", quiet)
			uniform, err := stats.SampleUniformity(cmd.Context(), sel, trials, workers, func(n int) { bar.Add(n) })
			bar.Finish()
			if err != nil {
				return err
			}

			bar = newBar(app.Err, trials, "positions", quiet)
			positions, err := stats.RequiredPositions(cmd.Context(), sel, trials, func(n int) { bar.Add(n) })
			bar.Finish()
			if err != nil {
				return err
			}

			fmt.Fprintln(app.Out)
			printResult(app.Out, "Pool uniformity", uniform)
			printResult(app.Out, "Required position", positions)

			if !uniform.Uniform() || !positions.Uniform() {
				return errNotUniform
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&trials, "trials", "n", 10000, "Number of passwords per check")
	f.IntVarP(&workers, "workers", "t", runtime.NumCPU(), "Number of sampling goroutines")
	f.IntVarP(&length, "length", "l", crypto.DefaultLength, "Password length")
	f.BoolVarP(&quiet, "quiet", "q", false, "Hide progress bars")
	return cmd
}

func newBar(w io.Writer, total int, desc string, quiet bool) *progressbar.ProgressBar {
	if quiet {
		w = io.Discard
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
}

func printResult(w io.Writer, name string, r stats.Result) {
	verdict := "PASS"
	if !r.Uniform() {
		verdict = "FAIL"
	}
	fmt.Fprintf(w, "%-18s chi2=%.2f df=%d critical(p=0.001)=%.2f %s\n",
		name, r.Statistic, r.DF, r.Critical, verdict)
}
