package manager

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"canvas-arcade/storage"
)

// Tuning holds the scoring and speed parameters of a game.
type Tuning struct {
	FoodPoints   int
	BaseInterval time.Duration
	MinInterval  time.Duration
	SpeedStep    time.Duration
	SpeedUpEvery int
	HighScoreKey string
}

type StateManager struct {
	store  storage.Store
	logger *slog.Logger
	tuning Tuning

	score     int
	highScore int
	interval  time.Duration
}

// NewStateManager reads the persisted high score from store. A missing or
// malformed value counts as zero.
func NewStateManager(ctx context.Context, store storage.Store, tuning Tuning, logger *slog.Logger) *StateManager {
	sm := &StateManager{
		store:    store,
		logger:   logger,
		tuning:   tuning,
		interval: tuning.BaseInterval,
	}
	sm.highScore = sm.loadHighScore(ctx)
	return sm
}

func (sm *StateManager) loadHighScore(ctx context.Context) int {
	if sm.store == nil {
		return 0
	}

	raw, err := sm.store.Get(ctx, sm.tuning.HighScoreKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			sm.logger.Warn("can't read high score", slog.String("error", err.Error()))
		}
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		sm.logger.Warn("ignoring malformed high score", slog.String("value", raw))
		return 0
	}
	return value
}

// AddFood credits one eaten food. The interval shrinks by one step each time
// the score lands on a multiple of SpeedUpEvery, never below MinInterval.
func (sm *StateManager) AddFood(ctx context.Context) {
	sm.score += sm.tuning.FoodPoints

	if sm.tuning.SpeedUpEvery > 0 && sm.score%sm.tuning.SpeedUpEvery == 0 && sm.interval > sm.tuning.MinInterval {
		sm.interval = max(sm.interval-sm.tuning.SpeedStep, sm.tuning.MinInterval)
		sm.logger.Debug("speed up", slog.Int("score", sm.score), slog.Duration("interval", sm.interval))
	}

	sm.UpdateHighScore(ctx)
}

// UpdateHighScore records the current score if it beats the stored one.
// Store failures are logged; the in-memory high score is kept either way.
func (sm *StateManager) UpdateHighScore(ctx context.Context) bool {
	if sm.score <= sm.highScore {
		return false
	}
	sm.highScore = sm.score

	if sm.store != nil {
		if err := sm.store.Set(ctx, sm.tuning.HighScoreKey, strconv.Itoa(sm.highScore)); err != nil {
			sm.logger.Warn("can't save high score", slog.String("error", err.Error()))
		}
	}
	return true
}

// Reset starts a new round. The high score is kept.
func (sm *StateManager) Reset() {
	sm.score = 0
	sm.interval = sm.tuning.BaseInterval
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) Interval() time.Duration {
	return sm.interval
}
