package systemd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/doeshing/hostwatch/internal/ports"
)

// DefaultBinary is resolved through PATH.
const DefaultBinary = "systemctl"

// Systemctl drives units through the systemctl binary.
type Systemctl struct {
	binary string
}

// NewSystemctl builds a manager, binary defaults to systemctl on PATH.
func NewSystemctl(binary string) *Systemctl {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Systemctl{binary: binary}
}

// Query implements ports.ServiceManager. `systemctl is-active` exits non-zero
// for every state other than active, so an exit status is not a failure as
// long as the binary ran: its stdout is the answer.
func (s *Systemctl) Query(ctx context.Context, name string) (string, error) {
	stdout, _, err := s.run(ctx, "is-active", "--", name)
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("query %s: %w", name, err)
		}
	}
	return strings.TrimSpace(stdout), nil
}

// Restart implements ports.ServiceManager. Any non-zero exit is a failure.
func (s *Systemctl) Restart(ctx context.Context, name string) error {
	_, stderr, err := s.run(ctx, "restart", "--", name)
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("restart %s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("restart %s: %w", name, err)
	}
	return nil
}

// Available reports whether the binary can be found.
func (s *Systemctl) Available() (string, error) {
	return exec.LookPath(s.binary)
}

func (s *Systemctl) run(ctx context.Context, args ...string) (string, string, error) {
	c := exec.CommandContext(ctx, s.binary, args...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	err := c.Run()
	return stdout.String(), stderr.String(), err
}

var _ ports.ServiceManager = (*Systemctl)(nil)
