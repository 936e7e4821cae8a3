package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"strawberry-snake/config"
	"strawberry-snake/game/entity"
	"strawberry-snake/game/grid"
	"strawberry-snake/game/manager"
	"strawberry-snake/game/types"
	"strawberry-snake/logger"
)

// Outcome says what a single Update did. Halted means the game was already lost.
type Outcome int

const (
	Moved Outcome = iota
	Ate
	HitWall
	HitSelf
	Halted
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case HitWall:
		return "hit wall"
	case HitSelf:
		return "hit self"
	case Halted:
		return "halted"
	default:
		return "unknown"
	}
}

// UpdateResult is returned by every Update. SpeedDelta is the tick rate the loop
// should add, non-zero only when a strawberry was eaten.
type UpdateResult struct {
	Status     manager.Status
	Outcome    Outcome
	SpeedDelta float64
	Head       types.Point
	Length     int
}

// Game is one snake on one board. It is not safe for concurrent use.
type Game struct {
	UUID string
	Grid *grid.Grid

	snake      *entity.Snake
	collisions *manager.CollisionManager
	food       *manager.FoodManager
	state      *manager.StateManager
	speedStep  float64
	log        *logger.Logger
}

// NewGame builds the board, lays the starting snake down the middle column facing
// Down and drops the first strawberry.
func NewGame(cfg *config.Config, rng grid.RandomSource, log *logger.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "new game")
	}
	if log == nil {
		log = logger.Discard()
	}

	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, errors.Wrap(err, "new game")
	}

	length := cfg.InitialLength
	head := types.Point{X: cfg.Width / 2, Y: length}
	for y := length; y > 0; y-- {
		if err := g.Set(head.X, y, y); err != nil {
			return nil, errors.Wrap(err, "place snake")
		}
	}

	id := uuid.New().String()
	game := &Game{
		UUID:       id,
		Grid:       g,
		snake:      entity.NewSnake(head, length, types.Down),
		collisions: manager.NewCollisionManager(g),
		food:       manager.NewFoodManager(g, rng),
		state:      manager.NewStateManager(id, nil),
		speedStep:  cfg.SpeedStep,
		log:        log,
	}
	game.state.Moved(length)

	if _, err := game.food.Spawn(); err != nil {
		return nil, errors.Wrap(err, "new game")
	}

	log.Infof("game %s started on a %dx%d board", id, cfg.Width, cfg.Height)
	return game, nil
}

// Update advances the game by one tick using the sampled input heading.
// Reversals are ignored. After a loss Update changes nothing.
func (g *Game) Update(input types.Direction) UpdateResult {
	if g.state.Status() == manager.Lost {
		return g.result(Halted, 0)
	}
	g.state.Tick()

	if g.snake.SetDirection(input) {
		g.log.Event("TURN", g.UUID, g.snake.Direction.String())
	}
	next := g.snake.NextHead()

	switch collision := g.collisions.CheckCollision(next); collision {
	case manager.NoCollision:
		g.Grid.DecayAll()
		g.advance(next, g.snake.Length)
		g.state.Moved(g.snake.Length)
		return g.result(Moved, 0)

	case manager.StrawberryCollision:
		length := g.snake.Grow()
		g.food.Eaten()
		g.advance(next, length)
		g.state.Ate(length)
		g.log.Event("ATE", g.UUID, fmt.Sprintf("length=%d at %v", length, next))
		if _, err := g.food.Spawn(); err != nil {
			g.log.Warnf("game %s: no room for a strawberry: %v", g.UUID, err)
		}
		return g.result(Ate, g.speedStep)

	default:
		g.state.Lose(collision)
		g.log.Infof("game %s lost: %s collision at %v, length %d", g.UUID, collision, next, g.snake.Length)
		if collision == manager.WallCollision {
			return g.result(HitWall, 0)
		}
		return g.result(HitSelf, 0)
	}
}

// advance writes the new head tile and moves the snake onto it.
func (g *Game) advance(next types.Point, length int) {
	if err := g.Grid.Set(next.X, next.Y, length); err != nil {
		// CheckCollision already ruled this out
		g.log.Errorf("game %s: %v", g.UUID, err)
		return
	}
	g.snake.Move(next)
}

func (g *Game) result(outcome Outcome, speedDelta float64) UpdateResult {
	return UpdateResult{
		Status:     g.state.Status(),
		Outcome:    outcome,
		SpeedDelta: speedDelta,
		Head:       g.snake.Head,
		Length:     g.snake.Length,
	}
}

func (g *Game) ID() string {
	return g.UUID
}

func (g *Game) Status() manager.Status {
	return g.state.Status()
}

func (g *Game) Direction() types.Direction {
	return g.snake.Direction
}

func (g *Game) Length() int {
	return g.snake.Length
}

func (g *Game) Head() types.Point {
	return g.snake.Head
}

// Strawberry returns the strawberry position, if any is on the board.
func (g *Game) Strawberry() (types.Point, bool) {
	return g.food.Strawberry()
}

// Snapshot copies the board for rendering.
func (g *Game) Snapshot() [][]int {
	return g.Grid.Snapshot()
}

// Summary closes the session record and returns it.
func (g *Game) Summary() manager.Summary {
	return g.state.Finish()
}
