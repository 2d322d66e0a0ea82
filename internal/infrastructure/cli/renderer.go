package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/hostwatch/internal/application/ipnotify"
	"github.com/doeshing/hostwatch/internal/application/storage"
	"github.com/doeshing/hostwatch/internal/application/temperature"
	"github.com/doeshing/hostwatch/internal/domain"
)

func renderWatchdogReport(out io.Writer, report domain.WatchdogReport) {
	if len(report.Results) == 0 {
		fmt.Fprintln(out, "No services configured to monitor.")
		return
	}
	for _, res := range report.Results {
		line := fmt.Sprintf("Service '%s': %s", res.Service, res.Status.DisplayName())
		switch res.Outcome {
		case domain.OutcomeRestartSucceeded:
			line += " -> restarted"
		case domain.OutcomeRestartFailed:
			line += " -> restart failed"
		}
		if res.Outcome.RequiresAlert() {
			line += notificationSuffix(res.Notified, res.NotifyError)
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "%d checked, %d restarted, %d healed\n",
		len(report.Results), report.Restarted(), report.Healed())
}

func renderStorageReport(out io.Writer, report storage.Report) {
	u := report.Usage
	fmt.Fprintf(out, "Disk %s: %.1f%% used (%s of %s), threshold %g%%\n",
		u.Path, u.UsedPercent, humanize.IBytes(u.UsedBytes), humanize.IBytes(u.TotalBytes), report.Threshold)
	renderThreshold(out, report.ThresholdResult)
}

func renderTemperatureReport(out io.Writer, report temperature.Report) {
	fmt.Fprintf(out, "CPU temperature: %.1f°C (%s), limit %g°C\n",
		report.Reading.Celsius, report.Reading.Source, report.Threshold)
	renderThreshold(out, report.ThresholdResult)
}

func renderThreshold(out io.Writer, res domain.ThresholdResult) {
	if !res.Exceeded {
		fmt.Fprintln(out, "Within limits.")
		return
	}
	fmt.Fprintln(out, "Above threshold"+notificationSuffix(res.Notified, res.NotifyError))
}

func renderAddressReport(out io.Writer, report ipnotify.Report) {
	fmt.Fprintf(out, "IP address: %s\nSystem: %s\n", report.Address.IP, report.Platform)
}

func renderHealthReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
}

func notificationSuffix(notified bool, err error) string {
	switch {
	case notified:
		return " (notified)"
	case err != nil:
		return fmt.Sprintf(" (notification failed: %v)", err)
	default:
		return ""
	}
}
