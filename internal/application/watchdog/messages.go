package watchdog

import (
	"fmt"

	"github.com/doeshing/hostwatch/internal/domain"
)

// HealedMessage is sent when a restart brought the service back.
func HealedMessage(device, service string, before domain.ServiceStatus) string {
	return fmt.Sprintf("🔧 *Service Auto-Healed* 🔧\n"+
		"🖥 Device: %s\n"+
		"⚙️ Service: `%s`\n"+
		"📉 State: Was `%s`\n"+
		"✅ Action: Restarted Successfully",
		device, service, before.DisplayName())
}

// FailureMessage is sent when the restart failed or the service stayed down.
func FailureMessage(device, service string, before domain.ServiceStatus) string {
	return fmt.Sprintf("🚨 *Service FAILURE* 🚨\n"+
		"🖥 Device: %s\n"+
		"⚙️ Service: `%s`\n"+
		"❌ Status: `%s`\n"+
		"⚠️ Action: Restart Attempt Failed!\n"+
		"Please check server manually.",
		device, service, before.DisplayName())
}

// AlertMessage picks the template for an outcome. ok is false when the outcome
// needs no message.
func AlertMessage(device, service string, before domain.ServiceStatus, outcome domain.HealingOutcome) (text string, ok bool) {
	switch outcome {
	case domain.OutcomeRestartSucceeded:
		return HealedMessage(device, service, before), true
	case domain.OutcomeRestartFailed:
		return FailureMessage(device, service, before), true
	default:
		return "", false
	}
}
