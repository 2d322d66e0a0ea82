package sysinfo

import (
	"context"
	"net"
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/doeshing/hostwatch/internal/domain"
	"github.com/doeshing/hostwatch/internal/ports"
)

// Platform describes the operating system via gopsutil host info.
type Platform struct {
	info func(context.Context) (*host.InfoStat, error)
}

// NewPlatform builds a describer for the running host.
func NewPlatform() *Platform {
	return &Platform{info: host.InfoWithContext}
}

// Describe implements ports.PlatformDescriber, e.g. "ubuntu 24.04 (aarch64)".
func (p *Platform) Describe(ctx context.Context) string {
	info, err := p.info(ctx)
	if err != nil || info == nil {
		return "unknown"
	}
	parts := make([]string, 0, 3)
	if info.Platform != "" {
		parts = append(parts, info.Platform)
	} else if info.OS != "" {
		parts = append(parts, info.OS)
	}
	if info.PlatformVersion != "" {
		parts = append(parts, info.PlatformVersion)
	}
	label := strings.Join(parts, " ")
	if label == "" {
		label = "unknown"
	}
	if info.KernelArch != "" {
		label += " (" + info.KernelArch + ")"
	}
	return label
}

// RouteResolver learns the default route address by "connecting" a UDP socket.
// UDP connect only selects a route; nothing is sent.
type RouteResolver struct {
	target string
	dial   func(ctx context.Context, network, address string) (net.Conn, error)
}

// NewRouteResolver builds a resolver probing target, defaulting to a public DNS address.
func NewRouteResolver(target string) *RouteResolver {
	if target == "" {
		target = domain.RouteProbeAddress
	}
	var d net.Dialer
	return &RouteResolver{target: target, dial: d.DialContext}
}

// DefaultRouteIP implements ports.AddressResolver.
func (r *RouteResolver) DefaultRouteIP(ctx context.Context) domain.HostAddress {
	conn, err := r.dial(ctx, "udp", r.target)
	if err != nil {
		return domain.HostAddress{IP: domain.UnresolvedAddress}
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || addr.IP == nil || addr.IP.IsUnspecified() {
		return domain.HostAddress{IP: domain.UnresolvedAddress}
	}
	return domain.HostAddress{IP: addr.IP.String(), Resolved: true}
}

var (
	_ ports.PlatformDescriber = (*Platform)(nil)
	_ ports.AddressResolver   = (*RouteResolver)(nil)
)
