// Package reminder finds placed blocks starting soon, renders the
// notification text for them, and checks through the tray helper's
// lockfile whether that helper process is already running. It does not
// itself display a notification or start a process.
package reminder

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/scheduler"
)

const trayExecutablePrefix = "daywise-tray"

// findProcessFunc is swapped out in tests.
var findProcessFunc = ps.FindProcess

// Due returns every block in result that is not completed, whose Start
// falls within window of now and has not yet started, ordered by Start. Consumes the core's
// output only; never mutates it.
func Due(result scheduler.Result, now time.Time, window time.Duration) []domain.PlacedBlock {
	due := make([]domain.PlacedBlock, 0)
	for _, b := range result.ScheduledBlocks {
		if b.IsCompleted {
			continue
		}
		untilStart := b.Start.Sub(now)
		if untilStart >= 0 && untilStart <= window {
			due = append(due, b)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].Start.Before(due[j].Start) })
	return due
}

// Lockfile describes the running tray helper process, in the
// "port|pid|secret" shape the helper writes on startup.
type Lockfile struct {
	Port   string
	PID    int
	Secret string
}

// ParseLockfile parses the lockfile content written by the tray helper.
func ParseLockfile(content string) (Lockfile, error) {
	parts := strings.Split(strings.TrimSpace(content), "|")
	if len(parts) != 3 {
		return Lockfile{}, fmt.Errorf("malformed lockfile: expected 3 fields, got %d", len(parts))
	}
	port := strings.TrimSpace(parts[0])
	if port == "" {
		return Lockfile{}, fmt.Errorf("empty port in lockfile")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil || portNum < 1 || portNum > 65535 {
		return Lockfile{}, fmt.Errorf("invalid port %q in lockfile", port)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Lockfile{}, fmt.Errorf("invalid pid in lockfile: %w", err)
	}
	secret := strings.TrimSpace(parts[2])
	if secret == "" {
		return Lockfile{}, fmt.Errorf("empty secret in lockfile")
	}
	return Lockfile{Port: port, PID: pid, Secret: secret}, nil
}

// TrayRunning reports whether the process named in lock is alive and is
// actually the tray helper. A stale lockfile left by a crashed helper
// must not block spawning a fresh one.
func TrayRunning(lock Lockfile) bool {
	process, err := findProcessFunc(lock.PID)
	if err != nil || process == nil {
		return false
	}
	return strings.HasPrefix(process.Executable(), trayExecutablePrefix)
}

// Message renders the notification text for a due block.
func Message(b domain.PlacedBlock, now time.Time) string {
	in := int(b.Start.Sub(now).Minutes())
	if in <= 0 {
		return fmt.Sprintf("%s starts now", b.Title)
	}
	return fmt.Sprintf("%s starts in %dm", b.Title, in)
}

// SpawnGuard reports whether a new tray helper process should be spawned:
// true only when no lockfile exists, or the process it names is no
// longer running, mirroring go-ps usage to avoid orphaned duplicate
// helpers (os.ReadFile failure is treated as "no tray running").
func SpawnGuard(lockfilePath string) bool {
	data, err := os.ReadFile(lockfilePath)
	if err != nil {
		return true
	}
	lock, err := ParseLockfile(string(data))
	if err != nil {
		return true
	}
	return !TrayRunning(lock)
}
