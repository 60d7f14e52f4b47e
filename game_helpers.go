package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/lifelattice/model"
	"github.com/sheikhrachel/lifelattice/rle"
	"github.com/sheikhrachel/lifelattice/utils"
)

// defaultPattern is used when no pattern file is given
const defaultPattern = `#N Glider
x = 3, y = 3, rule = B3/S23
bo$2bo$3o!`

// errFinished stops the run loop once a stop condition is met
var errFinished = errors.New("simulation finished")

// loadLattice decodes the configured pattern, applying the rule override if any
func loadLattice(config utils.Config) (*model.Lattice, error) {
	var (
		pattern *rle.Pattern
		err     error
	)
	if config.Pattern == "" {
		pattern, err = rle.DecodeString(defaultPattern)
	} else {
		pattern, err = rle.Load(config.Pattern)
	}
	if err != nil {
		return nil, err
	}
	if config.Rule != "" {
		pattern.Rule = config.Rule
	}
	return pattern.Lattice()
}

// game owns the lattice and serializes stepping against rendering
type game struct {
	mu sync.Mutex

	config   utils.Config
	lattice  *model.Lattice
	history  model.History
	stats    *utils.Stats
	renderer *model.TerminalRenderer
	out      io.Writer

	stagnantCount int
	reason        string
}

func newGame(config utils.Config, lattice *model.Lattice, out io.Writer) *game {
	return &game{
		config:   config,
		lattice:  lattice,
		stats:    utils.NewStats(),
		renderer: &model.TerminalRenderer{Out: out},
		out:      out,
	}
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	cols, rows := g.lattice.Size()
	fmt.Fprintf(g.out, "Rule: %s | Lattice: %dx%d | Initial living cells: %d\n",
		g.lattice.RuleString(), cols, rows, g.lattice.Population())
	fmt.Fprintln(g.out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(g.out)
}

// advance steps the lattice once and reports whether the run should stop
func (g *game) advance(frameDuration time.Duration) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Update history for stagnation detection
	g.history.Record(g.lattice)
	g.lattice.Step()

	cols, rows := g.lattice.Size()
	g.stats.Update(g.lattice.Generation(), g.lattice.Population(), cols*rows, frameDuration)

	if g.history.IsStagnant(g.lattice) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	return checkStopConditions(g.stats.ActiveCells, g.stagnantCount, g.lattice.Generation(), g.config)
}

// checkStopConditions determines if the game should stop
func checkStopConditions(livingCells, stagnantCount, generation int, config utils.Config) (string, bool) {
	if livingCells == 0 {
		return "extinction", true
	}
	if config.StopOnStagnation && stagnantCount >= config.StagnationThreshold {
		return "stagnation detected", true
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations), true
	}
	return "", false
}

// draw clears the screen and renders the status lines and the viewport
func (g *game) draw() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.renderer.Clear(); err != nil {
		return errors.Wrap(err, "[draw] failed to clear screen")
	}
	g.displayGameStatus()
	view := model.Viewport{Width: g.config.ViewWidth, Height: g.config.ViewHeight}
	if err := g.renderer.Display(g.lattice, view); err != nil {
		return errors.Wrap(err, "[draw] failed to render lattice")
	}
	return nil
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus() {
	status := "Active"
	if g.stagnantCount > 0 {
		status = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}
	if g.stats.ActiveCells == 0 {
		status = "Extinct"
	}

	b := g.lattice.Bounds()
	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Lattice: %dx%d\n",
		g.lattice.Generation(), g.stats.ActiveCells, g.stats.Density(), status, b.Width(), b.Height())
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())
	fmt.Fprintln(g.out)
}

// displayFinalStats prints the summary shown on exit
func (g *game) displayFinalStats() {
	g.mu.Lock()
	defer g.mu.Unlock()

	fmt.Fprintf(g.out, "Final stats: %d generations in %.1f seconds\n",
		g.lattice.Generation(), g.stats.Runtime().Seconds())
	fmt.Fprintf(g.out, "Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}

/*
run steps the lattice at the configured frame rate on one goroutine and
renders on another until a stop condition is met or ctx is cancelled. The
lattice mutex keeps every render off a half-committed generation.
*/
func (g *game) run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	frames := make(chan struct{}, 1)

	eg.Go(func() error {
		defer close(frames)
		ticker := time.NewTicker(max(g.config.FrameRate, time.Millisecond))
		defer ticker.Stop()

		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case now := <-ticker.C:
				reason, done := g.advance(now.Sub(last))
				last = now
				if done {
					g.mu.Lock()
					g.reason = reason
					g.mu.Unlock()
					return errFinished
				}
				select {
				case frames <- struct{}{}:
				default:
				}
			}
		}
	})

	eg.Go(func() error {
		for range frames {
			if err := g.draw(); err != nil {
				return err
			}
		}
		return nil
	})

	return eg.Wait()
}
