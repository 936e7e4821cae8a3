package manager

import (
	"time"
)

// Status is the simulation state. Lost is terminal.
type Status int

const (
	Running Status = iota
	Lost
)

func (s Status) String() string {
	if s == Lost {
		return "lost"
	}
	return "running"
}

// Summary is the session record logged when the game ends.
type Summary struct {
	GameID            string    `json:"game_id"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	Ticks             int       `json:"ticks"`
	StrawberriesEaten int       `json:"strawberries_eaten"`
	FinalLength       int       `json:"final_length"`
	Status            string    `json:"status"`
	LossReason        string    `json:"loss_reason,omitempty"`
}

// Duration is the time between start and end, or since start while running.
func (s Summary) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

type StateManager struct {
	status     Status
	lossReason CollisionType
	now        func() time.Time
	summary    Summary
}

func NewStateManager(gameID string, now func() time.Time) *StateManager {
	if now == nil {
		now = time.Now
	}
	return &StateManager{
		status: Running,
		now:    now,
		summary: Summary{
			GameID:    gameID,
			StartTime: now(),
		},
	}
}

func (sm *StateManager) Status() Status {
	return sm.status
}

func (sm *StateManager) LossReason() CollisionType {
	return sm.lossReason
}

// Tick counts one Update that ran while the game was still going.
func (sm *StateManager) Tick() {
	sm.summary.Ticks++
}

func (sm *StateManager) Ate(length int) {
	sm.summary.StrawberriesEaten++
	sm.summary.FinalLength = length
}

func (sm *StateManager) Moved(length int) {
	sm.summary.FinalLength = length
}

// Lose moves the game to Lost. Later calls keep the first reason.
func (sm *StateManager) Lose(reason CollisionType) {
	if sm.status == Lost {
		return
	}
	sm.status = Lost
	sm.lossReason = reason
	sm.summary.EndTime = sm.now()
}

// Summary returns a copy of the session record.
func (sm *StateManager) Summary() Summary {
	s := sm.summary
	s.Status = sm.status.String()
	if sm.status == Lost {
		s.LossReason = sm.lossReason.String()
	}
	return s
}

// Finish stamps the end time for a game that was quit while running.
func (sm *StateManager) Finish() Summary {
	if sm.summary.EndTime.IsZero() {
		sm.summary.EndTime = sm.now()
	}
	return sm.Summary()
}
