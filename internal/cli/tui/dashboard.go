package tui

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/corvidae/daywise/internal/app"
	"github.com/corvidae/daywise/internal/cli/formatter"
	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/scheduler"
)

const defaultListHeight = 16

// RunDashboard launches the interactive "today" dashboard over resp. It is
// only invoked when stdout is a TTY (internal/cli/schedule_cmd.go checks
// formatter.IsTTY before calling this).
func RunDashboard(resp *app.ScheduleResponse) error {
	m := newDashboardModel(resp)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// dashboardModel is the bubbletea program backing `daywise schedule --tui`:
// a day-by-day view over a ScheduleResponse's placed blocks, each day
// rendered as a fuzzy-filterable bubbles/list (list.go), navigable with
// left/right.
type dashboardModel struct {
	resp   *app.ScheduleResponse
	days   []time.Time
	dayIdx int
	lists  map[int]list.Model
	width  int
	height int
}

var _ tea.Model = (*dashboardModel)(nil)

func newDashboardModel(resp *app.ScheduleResponse) *dashboardModel {
	days := dayKeys(resp.ScheduledBlocks)
	if len(days) == 0 {
		days = []time.Time{time.Now()}
	}
	return &dashboardModel{
		resp:   resp,
		days:   days,
		lists:  make(map[int]list.Model),
		width:  80,
		height: defaultListHeight,
	}
}

func dayKeys(blocks []domain.PlacedBlock) []time.Time {
	seen := make(map[time.Time]bool)
	days := make([]time.Time, 0)
	for _, b := range blocks {
		y, m, d := b.Start.Date()
		key := time.Date(y, m, d, 0, 0, 0, 0, b.Start.Location())
		if !seen[key] {
			seen[key] = true
			days = append(days, key)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// listForDay lazily builds (and caches) the bubbles list for days[idx].
func (m *dashboardModel) listForDay(idx int) list.Model {
	if l, ok := m.lists[idx]; ok {
		return l
	}
	blocks := scheduler.BlocksForDay(scheduler.Result{ScheduledBlocks: m.resp.ScheduledBlocks}, m.days[idx])
	l := NewBlockList(blocks, m.width, m.height)
	m.lists[idx] = l
	return l
}

func (m *dashboardModel) Init() tea.Cmd { return nil }

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height-6
		for idx, l := range m.lists {
			l.SetSize(m.width, m.height)
			m.lists[idx] = l
		}
	case tea.KeyMsg:
		current := m.listForDay(m.dayIdx)
		if !current.SettingFilter() {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "right", "n":
				if m.dayIdx < len(m.days)-1 {
					m.dayIdx++
				}
				return m, nil
			case "left", "p":
				if m.dayIdx > 0 {
					m.dayIdx--
				}
				return m, nil
			}
		}
	}

	updated, cmd := m.listForDay(m.dayIdx).Update(msg)
	m.lists[m.dayIdx] = updated
	return m, cmd
}

func (m *dashboardModel) View() string {
	day := m.days[m.dayIdx]
	header := lipgloss.NewStyle().Foreground(formatter.ColorPurple).Bold(true).
		Render(day.Format("Monday, Jan 2"))
	nav := formatter.Dim(fmt.Sprintf("day %d/%d  (←/→ to navigate, / to filter, q to quit)", m.dayIdx+1, len(m.days)))

	digest := ""
	if m.dayIdx == len(m.days)-1 {
		digest = formatter.FormatDigest(m.resp.Warnings, m.resp.Overloaded)
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n%s", header, nav, m.listForDay(m.dayIdx).View(), digest)
}
