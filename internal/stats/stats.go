// Package stats runs statistical checks against the generator: uniformity of
// pool draws and spread of required characters across positions.
package stats

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

var ErrInvalidSample = errors.New("trials and length must be positive")

// z-score for an upper tail probability of 0.001.
const z001 = 3.090232306167813

// Result is a chi-square test of observed counts against a uniform expectation.
type Result struct {
	// Alphabet labels Counts when the categories are characters.
	Alphabet  string
	Counts    []int
	Statistic float64
	DF        int
	Critical  float64
}

// Uniform reports whether the statistic stays under the p = 0.001 critical value.
func (r Result) Uniform() bool {
	return r.Statistic <= r.Critical
}

func newResult(alphabet string, counts []int) Result {
	df := len(counts) - 1
	return Result{
		Alphabet:  alphabet,
		Counts:    counts,
		Statistic: ChiSquare(counts),
		DF:        df,
		Critical:  CriticalValue(df),
	}
}

// ChiSquare returns the chi-square statistic of counts against equal
// expected frequencies.
func ChiSquare(counts []int) float64 {
	if len(counts) == 0 {
		return 0
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}

	expected := float64(total) / float64(len(counts))
	var chi float64
	for _, c := range counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	return chi
}

// CriticalValue approximates the p = 0.001 chi-square critical value for df
// degrees of freedom using the Wilson-Hilferty transformation.
func CriticalValue(df int) float64 {
	if df <= 0 {
		return 0
	}
	k := float64(df)
	h := 2 / (9 * k)
	return k * math.Pow(1-h+z001*math.Sqrt(h), 3)
}

// SampleUniformity draws sel.Length pool characters per trial across workers
// goroutines and tests the per-character counts for uniformity. Required
// characters are not part of the sample. progress, if set, is called once per
// finished trial and must be safe for concurrent use.
func SampleUniformity(ctx context.Context, sel crypto.Selection, trials, workers int, progress func(int)) (Result, error) {
	if sel.Classes.Empty() {
		return Result{}, crypto.ErrNoClassSelected
	}
	if trials <= 0 || sel.Length <= 0 {
		return Result{}, ErrInvalidSample
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, trials)

	pool := sel.Classes.Pool()
	counts := make([]int, len(pool))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		share := trials / workers
		if w < trials%workers {
			share++
		}

		g.Go(func() error {
			src, err := crypto.NewChaChaSource()
			if err != nil {
				return err
			}

			local := make([]int, len(pool))
			for i := 0; i < share; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				drawn, err := crypto.Draw(pool, sel.Length, src)
				if err != nil {
					return err
				}
				for _, ch := range drawn {
					local[strings.IndexByte(pool, ch)]++
				}
				if progress != nil {
					progress(1)
				}
			}

			mu.Lock()
			defer mu.Unlock()
			for i, c := range local {
				counts[i] += c
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("sampling pool: %w", err)
	}
	return newResult(pool, counts), nil
}

// RequiredPositions generates trials passwords for sel and counts the
// position where the first class's required character lands.
func RequiredPositions(ctx context.Context, sel crypto.Selection, trials int, progress func(int)) (Result, error) {
	if sel.Classes.Empty() {
		return Result{}, crypto.ErrNoClassSelected
	}
	if trials <= 0 {
		return Result{}, ErrInvalidSample
	}

	order, err := crypto.NewFastSource()
	if err != nil {
		return Result{}, err
	}

	marker := sel.Classes.List()[0].Alphabet()[0]
	counts := make([]int, max(sel.Length, sel.Classes.Len()))

	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		password, err := crypto.Generate(sel, &markerSource{}, order)
		if err != nil {
			return Result{}, fmt.Errorf("generating trial %d: %w", i, err)
		}
		pos := strings.IndexByte(password, marker)
		if pos < 0 {
			return Result{}, fmt.Errorf("required character %q missing from trial %d", marker, i)
		}
		counts[pos]++
		if progress != nil {
			progress(1)
		}
	}
	return newResult("", counts), nil
}

// markerSource returns 0 for its first draw and n-1 afterwards. The first
// draw is the first class's required character, so that character appears
// exactly once and can be located after the shuffle. Not random.
type markerSource struct {
	calls int
}

func (s *markerSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, crypto.ErrInvalidBound
	}
	s.calls++
	if s.calls == 1 {
		return 0, nil
	}
	return n - 1, nil
}
