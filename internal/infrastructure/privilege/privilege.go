package privilege

import (
	"os"

	"github.com/doeshing/hostwatch/internal/ports"
)

// Root grants privilege to the superuser only.
type Root struct {
	euid func() int
}

// NewRoot checks the effective uid of the current process.
func NewRoot() *Root {
	return &Root{euid: os.Geteuid}
}

// Privileged implements ports.PrivilegeChecker.
func (r *Root) Privileged() bool {
	return r.euid() == 0
}

var _ ports.PrivilegeChecker = (*Root)(nil)
