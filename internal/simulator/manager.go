package simulator

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jaredbothwell/isim/internal/domain"
	"go.uber.org/zap"
)

// runtimePattern matches iOS/iPadOS runtime identifiers, e.g.
// "com.apple.CoreSimulator.SimRuntime.iOS-17-2" or "...iPadOS-17-0-1".
// Other platforms (watchOS, tvOS, visionOS) are skipped on purpose.
var runtimePattern = regexp.MustCompile(`(?i)(i(?:OS|PadOS))-(\d+)-(\d+)(?:-(\d+))?$`)

// Manager handles simulator discovery via `xcrun simctl`
type Manager struct {
	xcrunPath string
	log       *zap.SugaredLogger
}

// NewManager creates a new simulator manager
func NewManager(log *zap.SugaredLogger) *Manager {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Manager{
		xcrunPath: "xcrun",
		log:       log,
	}
}

// List returns all available iOS/iPadOS simulators, sorted by
// (OS version, name) ascending. The device list is queried fresh on
// every call.
func (m *Manager) List(ctx context.Context) ([]domain.Simulator, error) {
	cmd := exec.CommandContext(ctx, m.xcrunPath, "simctl", "list", "devices", "available", "--json")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("simctl list failed: %w", err)
	}

	var resp domain.SimctlDevicesResponse
	if err := json.Unmarshal(output, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse simctl output: %w", err)
	}

	var sims []domain.Simulator
	for runtime, devs := range resp.Devices {
		osName, version, ok := parseRuntime(runtime)
		if !ok {
			m.log.Debugw("skipping runtime", "runtime", runtime)
			continue
		}

		for _, d := range devs {
			if !d.IsAvailable {
				continue
			}
			sims = append(sims, domain.Simulator{
				UDID:    d.UDID,
				Name:    d.Name,
				OS:      osName,
				State:   domain.DeviceState(d.State),
				Version: version,
			})
		}
	}

	Sort(sims)
	m.log.Debugw("listed simulators", "count", len(sims))
	return sims, nil
}

// Sort orders simulators by (version tuple, name) ascending. The sort is
// stable so devices sharing a version and name keep their simctl order.
func Sort(sims []domain.Simulator) {
	sort.SliceStable(sims, func(i, j int) bool {
		if c := sims[i].Version.Compare(sims[j].Version); c != 0 {
			return c < 0
		}
		return sims[i].Name < sims[j].Name
	})
}

// Filter returns the simulators whose UDID, name, OS, or state contains
// term, case-insensitively. An empty term returns the input unchanged.
func Filter(sims []domain.Simulator, term string) []domain.Simulator {
	if term == "" {
		return sims
	}
	term = strings.ToLower(term)
	var out []domain.Simulator
	for _, s := range sims {
		haystack := strings.ToLower(s.UDID + " " + s.Name + " " + s.OS + " " + string(s.State))
		if strings.Contains(haystack, term) {
			out = append(out, s)
		}
	}
	return out
}

// Find locates a single simulator for query. A case-insensitive UDID
// prefix match wins; otherwise the first simulator whose UDID, name, or
// OS contains the query is returned. Returns nil when nothing matches.
func Find(sims []domain.Simulator, query string) *domain.Simulator {
	q := strings.ToLower(query)

	for i := range sims {
		if strings.HasPrefix(strings.ToLower(sims[i].UDID), q) {
			return &sims[i]
		}
	}
	for i := range sims {
		haystack := strings.ToLower(sims[i].UDID + " " + sims[i].Name + " " + sims[i].OS)
		if strings.Contains(haystack, q) {
			return &sims[i]
		}
	}
	return nil
}

// FindDevice lists simulators and resolves query against them.
func (m *Manager) FindDevice(ctx context.Context, query string) (*domain.Simulator, error) {
	sims, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	sim := Find(sims, query)
	if sim == nil {
		return nil, &NotFoundError{Query: query}
	}
	return sim, nil
}

// GetDevice returns the current record for an exact UDID.
func (m *Manager) GetDevice(ctx context.Context, udid string) (*domain.Simulator, error) {
	sims, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sims {
		if strings.EqualFold(sims[i].UDID, udid) {
			return &sims[i], nil
		}
	}
	return nil, &NotFoundError{Query: udid}
}

// parseRuntime extracts the OS name and version tuple from a simctl
// runtime identifier. ok is false for non-iOS/iPadOS runtimes.
func parseRuntime(runtime string) (string, domain.Version, bool) {
	m := runtimePattern.FindStringSubmatch(runtime)
	if m == nil {
		return "", domain.Version{}, false
	}

	major, _ := strconv.Atoi(m[2])
	minor, _ := strconv.Atoi(m[3])
	patch := 0
	if m[4] != "" {
		patch, _ = strconv.Atoi(m[4])
	}

	v := domain.Version{Major: major, Minor: minor, Patch: patch}
	return fmt.Sprintf("%s %s", m[1], v), v, true
}
