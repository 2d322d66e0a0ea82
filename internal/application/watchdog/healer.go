package watchdog

import (
	"context"
	"time"

	"github.com/doeshing/hostwatch/internal/domain"
	"github.com/doeshing/hostwatch/internal/ports"
)

// Healer turns a non-active status into exactly one restart attempt followed by
// one recheck. There is no retry: a unit that stays down is reported, not retried.
type Healer struct {
	Manager ports.ServiceManager
	Poller  *Poller
	Logger  ports.Logger

	settle time.Duration
	wait   func(context.Context, time.Duration) error
}

// NewHealer builds a Healer with the fixed settle interval.
func NewHealer(manager ports.ServiceManager, poller *Poller, log ports.Logger) *Healer {
	return &Healer{
		Manager: manager,
		Poller:  poller,
		Logger:  log,
		settle:  domain.SettleInterval,
		wait:    sleepContext,
	}
}

// Heal decides and performs the action for one observed status.
func (h *Healer) Heal(ctx context.Context, name string, status domain.ServiceStatus) domain.HealingOutcome {
	if status.IsActive() {
		return domain.OutcomeNoActionNeeded
	}

	h.Logger.Info("attempting restart", map[string]interface{}{
		"service": name,
		"status":  string(status),
	})
	if err := h.Manager.Restart(ctx, name); err != nil {
		h.Logger.Error("restart command failed", err, map[string]interface{}{"service": name})
		return domain.OutcomeRestartFailed
	}

	if err := h.wait(ctx, h.settle); err != nil {
		h.Logger.Error("settle wait interrupted", err, map[string]interface{}{"service": name})
		return domain.OutcomeRestartFailed
	}

	recheck := h.Poller.Poll(ctx, name)
	if recheck.Status.IsActive() {
		h.Logger.Info("service recovered", map[string]interface{}{"service": name})
		return domain.OutcomeRestartSucceeded
	}
	h.Logger.Warn("service still down after restart", map[string]interface{}{
		"service": name,
		"status":  string(recheck.Status),
	})
	return domain.OutcomeRestartFailed
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
