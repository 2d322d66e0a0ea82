// Package watchdog polls configured services, restarts the ones that are down
// and reports every intervention to the operator.
package watchdog

import (
	"context"
	"fmt"

	"github.com/doeshing/hostwatch/internal/domain"
	"github.com/doeshing/hostwatch/internal/ports"
)

// Service runs one pass over the configured service list.
type Service struct {
	Poller   *Poller
	Healer   *Healer
	Notifier ports.Notifier
	Logger   ports.Logger
}

// New wires a Service around one service manager.
func New(manager ports.ServiceManager, notifier ports.Notifier, log ports.Logger) *Service {
	poller := &Poller{Manager: manager, Logger: log}
	return &Service{
		Poller:   poller,
		Healer:   NewHealer(manager, poller, log),
		Notifier: notifier,
		Logger:   log,
	}
}

// RequirePrivilege fails with domain.ErrPrivilege when restarts are not allowed.
// Callers check it once, before reading configuration or touching any service.
func RequirePrivilege(checker ports.PrivilegeChecker) error {
	if checker == nil || !checker.Privileged() {
		return fmt.Errorf("%w: restarting services requires root", domain.ErrPrivilege)
	}
	return nil
}

// Run processes every configured service exactly once, in configuration order.
// Each service is polled, healed when not active and, when healing was
// attempted, reported with a single message. Dispatch failures are logged and
// recorded in the report; they never abort the run.
func (s *Service) Run(ctx context.Context, cfg domain.Config) domain.WatchdogReport {
	report := domain.WatchdogReport{
		Device:  cfg.DeviceName,
		Results: make([]domain.ServiceResult, 0, len(cfg.ServicesToMonitor)),
	}
	if len(cfg.ServicesToMonitor) == 0 {
		s.Logger.Info("no services configured to monitor", nil)
		return report
	}

	for _, name := range cfg.ServicesToMonitor {
		report.Results = append(report.Results, s.process(ctx, cfg.DeviceName, name))
	}

	s.Logger.Info("watchdog run complete", map[string]interface{}{
		"services":  len(report.Results),
		"restarted": report.Restarted(),
		"healed":    report.Healed(),
	})
	return report
}

func (s *Service) process(ctx context.Context, device, name string) domain.ServiceResult {
	obs := s.Poller.Poll(ctx, name)
	result := domain.ServiceResult{Service: name, Status: obs.Status}

	if obs.Status.IsActive() {
		result.Outcome = domain.OutcomeNoActionNeeded
		return result
	}

	// Error statuses are healed too: the manager could not tell us the state,
	// so a restart is the only recovery we can offer.
	s.Logger.Warn("service is down", map[string]interface{}{
		"service": name,
		"status":  string(obs.Status),
		"raw":     obs.Raw,
	})
	result.Outcome = s.Healer.Heal(ctx, name, obs.Status)

	text, ok := AlertMessage(device, name, obs.Status, result.Outcome)
	if !ok {
		return result
	}
	if err := s.Notifier.Send(ctx, text); err != nil {
		result.NotifyError = err
		s.Logger.Error("alert dispatch failed", err, map[string]interface{}{"service": name})
		return result
	}
	result.Notified = true
	return result
}
