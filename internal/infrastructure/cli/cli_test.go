package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/hostwatch/internal/app"
	"github.com/doeshing/hostwatch/internal/domain"
	"github.com/doeshing/hostwatch/internal/pkg/logger"
	"github.com/doeshing/hostwatch/internal/ports"
)

type fakeConfig struct {
	cfg   domain.Config
	err   error
	loads int
}

func (f *fakeConfig) Load(context.Context) (domain.Config, error) {
	f.loads++
	return f.cfg, f.err
}

type fakeManager struct {
	status map[string]string
	calls  []string
}

func (f *fakeManager) Query(_ context.Context, name string) (string, error) {
	f.calls = append(f.calls, "query:"+name)
	return f.status[name], nil
}

func (f *fakeManager) Restart(_ context.Context, name string) error {
	f.calls = append(f.calls, "restart:"+name)
	return errors.New("unit not found")
}

func (f *fakeManager) Available() (string, error) { return "/usr/bin/systemctl", nil }

type fakePrivilege bool

func (p fakePrivilege) Privileged() bool { return bool(p) }

type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, text string) error {
	f.sent = append(f.sent, text)
	return f.err
}

type fakeDisk struct{ usage domain.DiskUsage }

func (f fakeDisk) Usage(_ context.Context, path string) (domain.DiskUsage, error) {
	u := f.usage
	u.Path = path
	return u, nil
}

type fakeSensor struct{ err error }

func (f fakeSensor) Read(context.Context) (domain.Temperature, error) {
	return domain.Temperature{Celsius: 51.2, Source: "thermal_zone0"}, f.err
}

type fakeResolver struct{}

func (fakeResolver) DefaultRouteIP(context.Context) domain.HostAddress {
	return domain.HostAddress{IP: "192.168.1.20", Resolved: true}
}

type fakePlatform struct{}

func (fakePlatform) Describe(context.Context) string { return "debian 12.5 (arm64)" }

type harness struct {
	config   *fakeConfig
	manager  *fakeManager
	notifier *fakeNotifier
	root     fakePrivilege
	opts     app.Options
	out      bytes.Buffer
}

func validConfig(services ...string) domain.Config {
	return domain.Config{
		Path:              "/etc/hostwatch/config.json",
		DeviceName:        "garage-pi",
		ServicesToMonitor: services,
		DiskThreshold:     90,
		TempThreshold:     80,
		Telegram: domain.TelegramConfig{
			BotToken: "123:secret",
			ChatID:   "42",
			APIURL:   domain.DefaultTelegramAPIURL,
		},
	}
}

func newHarness(cfg domain.Config) *harness {
	return &harness{
		config:   &fakeConfig{cfg: cfg},
		manager:  &fakeManager{status: map[string]string{}},
		notifier: &fakeNotifier{},
		root:     true,
	}
}

func (h *harness) execute(args ...string) error {
	root := NewRootCmd(Options{Build: func(opts app.Options) *app.Container {
		h.opts = opts
		return &app.Container{
			RunID:          "test-run",
			Logger:         logger.NewNop(),
			ConfigProvider: h.config,
			ServiceManager: h.manager,
			Privilege:      h.root,
			Disk:           fakeDisk{usage: domain.DiskUsage{TotalBytes: 32 << 30, UsedBytes: 30 << 30, UsedPercent: 93.75}},
			Sensor:         fakeSensor{},
			Resolver:       fakeResolver{},
			Platform:       fakePlatform{},
			NewNotifier: func(domain.TelegramConfig) ports.Notifier {
				return h.notifier
			},
		}
	}})
	root.SetOut(&h.out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func TestWatchdogRefusesWithoutRootBeforeLoadingConfig(t *testing.T) {
	h := newHarness(validConfig("nginx"))
	h.root = false

	err := h.execute("watchdog")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPrivilege)
	assert.Contains(t, err.Error(), "sudo hostwatch watchdog")
	assert.Zero(t, h.config.loads)
	assert.Empty(t, h.manager.calls)
}

func TestWatchdogAbortsOnMissingConfig(t *testing.T) {
	h := newHarness(domain.Config{})
	h.config.err = domain.ErrConfig

	err := h.execute("watchdog")
	require.ErrorIs(t, err, domain.ErrConfig)
	assert.Empty(t, h.manager.calls)
	assert.Empty(t, h.notifier.sent)
}

func TestWatchdogAbortsOnInvalidConfig(t *testing.T) {
	h := newHarness(validConfig("--now"))

	err := h.execute("watchdog")
	require.ErrorIs(t, err, domain.ErrConfig)
	assert.Empty(t, h.manager.calls)
}

func TestWatchdogEmptyListIsNoop(t *testing.T) {
	h := newHarness(validConfig())

	require.NoError(t, h.execute("watchdog"))
	assert.Empty(t, h.manager.calls)
	assert.Empty(t, h.notifier.sent)
	assert.Contains(t, h.out.String(), "No services configured to monitor.")
}

func TestWatchdogReportsActiveServices(t *testing.T) {
	h := newHarness(validConfig("nginx", "ssh"))
	h.manager.status["nginx"] = "active\n"
	h.manager.status["ssh"] = "active\n"

	require.NoError(t, h.execute("watchdog"))
	assert.Equal(t, []string{"query:nginx", "query:ssh"}, h.manager.calls)
	assert.Empty(t, h.notifier.sent)
	assert.Equal(t, "Service 'nginx': Active\nService 'ssh': Active\n2 checked, 0 restarted, 0 healed\n", h.out.String())
}

func TestWatchdogRestartFailureStillExitsCleanly(t *testing.T) {
	h := newHarness(validConfig("cron"))
	h.manager.status["cron"] = "inactive\n"
	h.notifier.err = domain.ErrDispatch

	require.NoError(t, h.execute("watchdog"))
	assert.Equal(t, []string{"query:cron", "restart:cron"}, h.manager.calls)
	require.Len(t, h.notifier.sent, 1)
	assert.Contains(t, h.notifier.sent[0], "Service FAILURE")
	assert.Contains(t, h.out.String(), "Service 'cron': Inactive -> restart failed (notification failed:")
}

func TestStorageAlertsAboveThreshold(t *testing.T) {
	h := newHarness(validConfig())

	require.NoError(t, h.execute("storage"))
	require.Len(t, h.notifier.sent, 1)
	assert.Contains(t, h.notifier.sent[0], "Low Disk Space Alert!")
	assert.Contains(t, h.out.String(), "Disk /: 93.8% used (30 GiB of 32 GiB), threshold 90%")
	assert.Contains(t, h.out.String(), "Above threshold (notified)")
}

func TestTemperatureWithinLimits(t *testing.T) {
	h := newHarness(validConfig())

	require.NoError(t, h.execute("temp"))
	assert.Empty(t, h.notifier.sent)
	assert.Contains(t, h.out.String(), "CPU temperature: 51.2°C (thermal_zone0), limit 80°C")
	assert.Contains(t, h.out.String(), "Within limits.")
}

func TestIPDispatchFailureIsAnError(t *testing.T) {
	h := newHarness(validConfig())
	h.notifier.err = domain.ErrDispatch

	err := h.execute("ip")
	require.ErrorIs(t, err, domain.ErrDispatch)
	assert.Contains(t, h.out.String(), "IP address: 192.168.1.20")
}

func TestConfigShowRedactsToken(t *testing.T) {
	h := newHarness(validConfig("nginx"))

	require.NoError(t, h.execute("config", "show"))
	out := h.out.String()
	assert.Contains(t, out, "# /etc/hostwatch/config.json")
	assert.Contains(t, out, "device_name: garage-pi")
	assert.Contains(t, out, "***")
	assert.NotContains(t, out, "secret")
}

func TestConfigFlagReachesContainer(t *testing.T) {
	h := newHarness(validConfig())

	require.NoError(t, h.execute("--config", "/tmp/hw.json", "--debug", "config", "validate"))
	assert.Equal(t, "/tmp/hw.json", h.opts.ConfigPath)
	assert.True(t, h.opts.Verbose)
	assert.Contains(t, h.out.String(), "Configuration valid")
}

func TestDoctorFailsOnBrokenConfig(t *testing.T) {
	h := newHarness(domain.Config{})
	h.config.err = domain.ErrConfig

	err := h.execute("doctor")
	require.Error(t, err)
	assert.Contains(t, h.out.String(), "[ERROR] Config file")
	assert.Contains(t, h.out.String(), "[OK] Service manager - /usr/bin/systemctl")
}

func TestVersionCommand(t *testing.T) {
	h := newHarness(domain.Config{})

	require.NoError(t, h.execute("version"))
	assert.Contains(t, h.out.String(), "hostwatch version dev")
}
