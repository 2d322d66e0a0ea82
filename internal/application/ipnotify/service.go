// Package ipnotify announces the host and its current address to the operator.
package ipnotify

import (
	"context"
	"fmt"

	"github.com/doeshing/hostwatch/internal/domain"
	"github.com/doeshing/hostwatch/internal/ports"
)

// Report is the result of one announcement.
type Report struct {
	Address  domain.HostAddress
	Platform string
}

// Service sends the "online" message. Unlike the threshold checks the
// message is the whole point, so a failed dispatch is returned as an error.
type Service struct {
	Resolver ports.AddressResolver
	Platform ports.PlatformDescriber
	Notifier ports.Notifier
	Logger   ports.Logger
}

// Run resolves the address and sends one message.
func (s *Service) Run(ctx context.Context, cfg domain.Config) (Report, error) {
	report := Report{
		Address:  s.Resolver.DefaultRouteIP(ctx),
		Platform: "unknown",
	}
	if s.Platform != nil {
		report.Platform = s.Platform.Describe(ctx)
	}
	s.Logger.Info("sending address", map[string]interface{}{
		"ip":       report.Address.IP,
		"resolved": report.Address.Resolved,
	})

	if err := s.Notifier.Send(ctx, OnlineMessage(cfg.DeviceName, report.Address.IP, report.Platform)); err != nil {
		return report, fmt.Errorf("send online notification: %w", err)
	}
	return report, nil
}

// OnlineMessage formats the announcement.
func OnlineMessage(device, ip, platform string) string {
	return fmt.Sprintf("🚀 *%s* is Online!\n"+
		"📍 IP Address: `%s`\n"+
		"✅ System: %s",
		device, ip, platform)
}
