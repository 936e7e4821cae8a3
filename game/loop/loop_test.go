package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"strawberry-snake/config"
	"strawberry-snake/game"
	"strawberry-snake/game/manager"
	"strawberry-snake/game/types"
	"strawberry-snake/ui/tiles"
)

type firstEmpty struct{}

func (firstEmpty) Intn(int) int { return 0 }

// scriptedInput replays polls, then keeps returning the last one.
type scriptedInput struct {
	polls []poll
	calls int
}

type poll struct {
	dir  types.Direction
	ok   bool
	quit bool
}

func (s *scriptedInput) Poll() (types.Direction, bool, bool) {
	p := poll{}
	if len(s.polls) > 0 {
		i := s.calls
		if i >= len(s.polls) {
			i = len(s.polls) - 1
		}
		p = s.polls[i]
	}
	s.calls++
	return p.dir, p.ok, p.quit
}

type recordingRenderer struct {
	frames []tiles.Frame
	err    error
}

func (r *recordingRenderer) Draw(f tiles.Frame) error {
	r.frames = append(r.frames, f)
	return r.err
}

type sleepRecorder struct {
	waits []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	return nil
}

func newGame(t *testing.T, width, height int) *game.Game {
	t.Helper()
	cfg := config.Default()
	cfg.Width, cfg.Height = width, height
	g, err := game.NewGame(cfg, firstEmpty{}, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestRunStopsOnLoss(t *testing.T) {
	g := newGame(t, 5, 5)
	in := &scriptedInput{}
	r := &recordingRenderer{}
	s := &sleepRecorder{}
	l := New(g, in, r, Options{InitialFPS: 5, TileSize: 64}, nil)
	l.SetSleep(s.sleep)

	summary, err := l.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Status != "lost" || summary.LossReason != "wall" {
		t.Errorf("Expected lost against the wall, got %s/%s", summary.Status, summary.LossReason)
	}
	// initial frame + two ticks, one wait between them
	if len(r.frames) != 3 {
		t.Errorf("Expected 3 frames, got %d", len(r.frames))
	}
	if len(s.waits) != 1 || s.waits[0] != 200*time.Millisecond {
		t.Errorf("Expected a single 200ms wait, got %v", s.waits)
	}
}

func TestRunQuit(t *testing.T) {
	g := newGame(t, 5, 5)
	in := &scriptedInput{polls: []poll{{quit: true}}}
	r := &recordingRenderer{}
	l := New(g, in, r, Options{InitialFPS: 5, TileSize: 64}, nil)
	l.SetSleep((&sleepRecorder{}).sleep)

	summary, err := l.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Status != "running" || summary.Ticks != 0 {
		t.Errorf("Expected an untouched running game, got %+v", summary)
	}
	if g.Head() != (types.Point{X: 2, Y: 3}) {
		t.Errorf("snake moved after quit: %v", g.Head())
	}
}

func TestRunSpeedsUpOnStrawberry(t *testing.T) {
	g := newGame(t, 5, 6)
	g.Grid.Set(0, 0, types.TileEmpty)
	g.Grid.Set(2, 4, types.TileStrawberry)

	in := &scriptedInput{polls: []poll{{dir: types.Down, ok: true}, {quit: true}}}
	s := &sleepRecorder{}
	l := New(g, in, &recordingRenderer{}, Options{InitialFPS: 5, TileSize: 64}, nil)
	l.SetSleep(s.sleep)

	if _, err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if l.FPS() != 5.2 {
		t.Errorf("Expected 5.2 fps, got %v", l.FPS())
	}
	if len(s.waits) != 1 || s.waits[0] != l.Interval() {
		t.Errorf("Expected one wait of %v, got %v", l.Interval(), s.waits)
	}
	if g.Length() != 4 {
		t.Errorf("Expected length 4, got %d", g.Length())
	}
}

func TestSpeedCap(t *testing.T) {
	l := New(newGame(t, 5, 5), &scriptedInput{}, &recordingRenderer{}, Options{InitialFPS: 5, MaxFPS: 5.3}, nil)
	l.speedUp(0.2)
	l.speedUp(0.2)
	if l.FPS() != 5.3 {
		t.Errorf("Expected fps capped at 5.3, got %v", l.FPS())
	}
}

func TestRunDrawError(t *testing.T) {
	boom := errors.New("no window")
	r := &recordingRenderer{err: boom}
	l := New(newGame(t, 5, 5), &scriptedInput{}, r, Options{InitialFPS: 5}, nil)

	if _, err := l.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Expected draw error, got %v", err)
	}
}

func TestRunContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := &scriptedInput{polls: []poll{{dir: types.Left, ok: true}}}
	l := New(newGame(t, 9, 9), in, &recordingRenderer{}, Options{InitialFPS: 5}, nil)
	l.SetSleep(func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	})

	summary, err := l.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Ticks != 1 {
		t.Errorf("Expected exactly one tick before cancel, got %d", summary.Ticks)
	}
}

func TestNoKeyKeepsHeading(t *testing.T) {
	g := newGame(t, 5, 8)
	in := &scriptedInput{polls: []poll{{ok: false}, {quit: true}}}
	l := New(g, in, &recordingRenderer{}, Options{InitialFPS: 5}, nil)
	l.SetSleep((&sleepRecorder{}).sleep)

	if _, err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.Direction() != types.Down || g.Head() != (types.Point{X: 2, Y: 4}) {
		t.Errorf("Expected the snake to keep going down to (2,4), got %v at %v", g.Direction(), g.Head())
	}
	if g.Status() != manager.Running {
		t.Errorf("Expected running, got %v", g.Status())
	}
}
