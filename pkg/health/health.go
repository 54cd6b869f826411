package health

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

type Checker interface {
	Check(ctx context.Context) error
	Name() string
}

type Health struct {
	Status    Status                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks"`
}

type CheckResult struct {
	Status    Status    `json:"status"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type CheckerRegistry struct {
	checkers []Checker
}

func NewCheckerRegistry() *CheckerRegistry {
	return &CheckerRegistry{
		checkers: make([]Checker, 0),
	}
}

func (r *CheckerRegistry) Register(checker Checker) {
	r.checkers = append(r.checkers, checker)
}

func (r *CheckerRegistry) Check(ctx context.Context) Health {
	results := make(map[string]CheckResult)
	allHealthy := true

	for _, checker := range r.checkers {
		err := checker.Check(ctx)
		result := CheckResult{
			Timestamp: time.Now(),
		}

		if err != nil {
			result.Status = StatusUnhealthy
			result.Message = err.Error()
			allHealthy = false
		} else {
			result.Status = StatusHealthy
		}

		results[checker.Name()] = result
	}

	overallStatus := StatusHealthy
	if !allHealthy {
		overallStatus = StatusUnhealthy
	}

	return Health{
		Status:    overallStatus,
		Timestamp: time.Now(),
		Checks:    results,
	}
}

// Pinger is satisfied by the file store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type StoreChecker struct {
	store Pinger
}

func NewStoreChecker(store Pinger) *StoreChecker {
	return &StoreChecker{store: store}
}

func (c *StoreChecker) Name() string {
	return "store"
}

func (c *StoreChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("store ping failed: %w", err)
	}
	return nil
}

// BotAPI is satisfied by the Telegram client.
type BotAPI interface {
	GetMe() (tgbotapi.User, error)
}

type TelegramChecker struct {
	api BotAPI
}

func NewTelegramChecker(api BotAPI) *TelegramChecker {
	return &TelegramChecker{api: api}
}

func (c *TelegramChecker) Name() string {
	return "telegram"
}

func (c *TelegramChecker) Check(ctx context.Context) error {
	if _, err := c.api.GetMe(); err != nil {
		return fmt.Errorf("telegram getMe failed: %w", err)
	}
	return nil
}
