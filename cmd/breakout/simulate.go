package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	flagTicks     int
	flagEvery     int
	flagAutopilot bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game and log snapshots",
	Long: `Run the game without a display. An autopilot moves the paddle under
the ball with a random offset so that it comes off at varying angles.

Examples:
  breakout simulate
  breakout simulate --seed 42 --ticks 20000 --every 1000
  breakout simulate --autopilot=false`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum number of ticks to run")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 600, "Log a snapshot every N ticks (0 = only the result)")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Move the paddle under the ball")
}

// simulation describes one headless run.
type simulation struct {
	Ticks     int
	Every     int
	Autopilot bool
	Seed      int64
}

// simResult is the end of a headless run.
type simResult struct {
	Ticks uint64
	Score int
	Lives int
	Won   bool
	Lost  bool
	Hash  uint64
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if err := checkFPS(); err != nil {
		return err
	}
	if _, err := loadGameConfig(); err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout-sim",
	})

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runSimulation(simulation{
		Ticks:     flagTicks,
		Every:     flagEvery,
		Autopilot: flagAutopilot,
		Seed:      seed,
	}, logger)
	return nil
}

// runSimulation plays one game headlessly until it ends or runs out of ticks.
func runSimulation(sim simulation, logger *log.Logger) simResult {
	g := breakout.New()
	g.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: sim.Seed})
	logger.Info("simulation started", "seed", sim.Seed, "ticks", sim.Ticks, "autopilot", sim.Autopilot)

	pilot := newAutopilot(g.Config().Paddle.Width, sim.Seed)
	lives := g.Current().Lives

	for range sim.Ticks {
		if sim.Autopilot {
			g.Dispatch(core.PointerMove(pilot.aim(g.Current())))
		}
		res := g.Dispatch(core.Tick())

		snap := g.Snapshot()
		if res.State.Lives < lives {
			lives = res.State.Lives
			logger.Warn("life lost", "tick", snap.Tick, "lives", lives, "score", snap.Score)
		}
		if sim.Every > 0 && snap.Tick%uint64(sim.Every) == 0 { //#nosec G115 -- positive flag value
			logger.Info("snapshot",
				"tick", snap.Tick,
				"score", snap.Score,
				"lives", snap.Lives,
				"ball", [2]float64{snap.BallX, snap.BallY},
				"paddle", snap.PaddleX,
				"hash", snap.Hash(),
			)
		}
		if res.State.GameOver {
			break
		}
	}

	snap := g.Snapshot()
	result := simResult{
		Ticks: snap.Tick,
		Score: snap.Score,
		Lives: snap.Lives,
		Won:   snap.Won,
		Lost:  snap.Lost,
		Hash:  snap.Hash(),
	}
	logger.Info("simulation finished",
		"ticks", result.Ticks,
		"score", result.Score,
		"lives", result.Lives,
		"won", result.Won,
		"lost", result.Lost,
		"hash", result.Hash,
	)
	return result
}

// autopilot keeps the paddle under the ball, hitting it off-centre.
type autopilot struct {
	rng    *rand.Rand
	reach  float64
	offset float64
	up     bool
}

func newAutopilot(paddleWidth float64, seed int64) *autopilot {
	return &autopilot{
		rng:   rand.New(rand.NewSource(seed + 1)), //#nosec G404 -- gameplay randomness
		reach: paddleWidth * 0.4,
	}
}

// aim returns the pointer x for the next tick. A new offset is picked each
// time the ball turns downwards.
func (a *autopilot) aim(s breakout.State) float64 {
	up := s.BallVY < 0
	if a.up && !up {
		a.offset = (a.rng.Float64()*2 - 1) * a.reach
	}
	a.up = up
	return s.BallX + a.offset
}
