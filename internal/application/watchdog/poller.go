package watchdog

import (
	"context"
	"strings"

	"github.com/doeshing/hostwatch/internal/domain"
	"github.com/doeshing/hostwatch/internal/ports"
)

// Poller asks the service manager for the state of one unit. It never changes
// service state and never returns an error: a failed query becomes StatusError.
type Poller struct {
	Manager ports.ServiceManager
	Logger  ports.Logger
}

// Poll queries name once and classifies the answer.
func (p *Poller) Poll(ctx context.Context, name string) domain.Observation {
	raw, err := p.Manager.Query(ctx, name)
	if err != nil {
		p.Logger.Warn("service query failed", map[string]interface{}{
			"service": name,
			"error":   err.Error(),
		})
		return domain.Observation{Service: name, Status: domain.StatusError, Raw: err.Error()}
	}

	raw = strings.TrimSpace(raw)
	obs := domain.Observation{Service: name, Status: domain.ParseServiceStatus(raw), Raw: raw}
	p.Logger.Debug("service polled", map[string]interface{}{
		"service": name,
		"raw":     raw,
		"status":  string(obs.Status),
	})
	return obs
}
