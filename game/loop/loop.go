// Package loop drives a game: sample input, update, draw, wait, repeat.
package loop

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"strawberry-snake/game"
	"strawberry-snake/game/manager"
	"strawberry-snake/game/types"
	"strawberry-snake/logger"
	"strawberry-snake/ui/tiles"
)

// Input is sampled once per tick. ok is false when no heading key is held.
type Input interface {
	Poll() (dir types.Direction, ok bool, quit bool)
}

type Renderer interface {
	Draw(frame tiles.Frame) error
}

// Simulation is the part of *game.Game the loop needs.
type Simulation interface {
	Update(input types.Direction) game.UpdateResult
	Direction() types.Direction
	Length() int
	Snapshot() [][]int
	Summary() manager.Summary
}

// Options tune the tick rate. MaxFPS of 0 leaves it uncapped.
type Options struct {
	InitialFPS float64
	MaxFPS     float64
	TileSize   int
}

type Loop struct {
	sim      Simulation
	input    Input
	renderer Renderer
	opts     Options
	fps      float64
	sleep    func(context.Context, time.Duration) error
	log      *logger.Logger
}

func New(sim Simulation, input Input, renderer Renderer, opts Options, log *logger.Logger) *Loop {
	if log == nil {
		log = logger.Discard()
	}
	return &Loop{
		sim:      sim,
		input:    input,
		renderer: renderer,
		opts:     opts,
		fps:      opts.InitialFPS,
		sleep:    sleepContext,
		log:      log,
	}
}

// SetSleep replaces the inter-tick wait, mainly for tests.
func (l *Loop) SetSleep(sleep func(context.Context, time.Duration) error) {
	l.sleep = sleep
}

// FPS is the current tick rate.
func (l *Loop) FPS() float64 {
	return l.fps
}

// Interval is the wait between ticks at the current rate.
func (l *Loop) Interval() time.Duration {
	return time.Duration(float64(time.Second) / l.fps)
}

// Run ticks until the player quits, the game is lost or ctx ends.
// It returns the session summary; the error is non-nil only for draw failures.
func (l *Loop) Run(ctx context.Context) (manager.Summary, error) {
	if err := l.draw(); err != nil {
		return l.sim.Summary(), err
	}

	for {
		if err := ctx.Err(); err != nil {
			l.log.Infof("loop stopped: %v", err)
			return l.sim.Summary(), nil
		}

		dir, ok, quit := l.input.Poll()
		if quit {
			l.log.Infof("quit requested")
			return l.sim.Summary(), nil
		}
		if !ok {
			dir = l.sim.Direction()
		}

		res := l.sim.Update(dir)
		if res.SpeedDelta != 0 {
			l.speedUp(res.SpeedDelta)
		}

		if err := l.draw(); err != nil {
			return l.sim.Summary(), err
		}
		if res.Status == manager.Lost {
			l.log.Infof("game over: %s, length %d", res.Outcome, res.Length)
			return l.sim.Summary(), nil
		}

		if err := l.sleep(ctx, l.Interval()); err != nil {
			l.log.Infof("loop stopped: %v", err)
			return l.sim.Summary(), nil
		}
	}
}

func (l *Loop) speedUp(delta float64) {
	l.fps += delta
	if l.opts.MaxFPS > 0 && l.fps > l.opts.MaxFPS {
		l.fps = l.opts.MaxFPS
	}
	l.log.Debugf("tick rate now %.2f fps", l.fps)
}

func (l *Loop) draw() error {
	frame, err := tiles.NewFrame(l.sim.Snapshot(), l.sim.Length(), l.opts.TileSize)
	if err != nil {
		return errors.Wrap(err, "build frame")
	}
	if err := l.renderer.Draw(frame); err != nil {
		return errors.Wrap(err, "draw frame")
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
