package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
)

type timerKeyMap struct {
	Stop    key.Binding
	Discard key.Binding
	Quit    key.Binding
}

var timerKeys = timerKeyMap{
	Stop: key.NewBinding(
		key.WithKeys("s", "enter"),
		key.WithHelp("s", "stop and save"),
	),
	Discard: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "discard"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "leave running"),
	),
}

// timerView is the live timer screen. The stopwatch ticks from zero; the
// elapsed time before the screen opened is carried in base so reattaching
// to a running timer shows the true total.
type timerView struct {
	timer     service.TimerService
	sw        stopwatch.Model
	base      time.Duration
	startedAt time.Time

	// Outcome, read by the command after the program exits.
	saved     *domain.SessionRecord
	discarded bool
	err       error
}

func newTimerView(timer service.TimerService, status service.TimerStatus) *timerView {
	return &timerView{
		timer:     timer,
		sw:        stopwatch.NewWithInterval(time.Second),
		base:      status.Elapsed,
		startedAt: status.StartedAt,
	}
}

func (v *timerView) Init() tea.Cmd {
	return v.sw.Init()
}

func (v *timerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, timerKeys.Stop):
			rec, err := v.timer.Stop(context.Background())
			if err != nil {
				v.err = err
			} else {
				v.saved = &rec
			}
			return v, tea.Quit
		case key.Matches(msg, timerKeys.Discard):
			if err := v.timer.Discard(context.Background()); err != nil {
				v.err = err
			} else {
				v.discarded = true
			}
			return v, tea.Quit
		case key.Matches(msg, timerKeys.Quit):
			return v, tea.Quit
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.sw, cmd = v.sw.Update(msg)
	return v, cmd
}

func (v *timerView) View() string {
	elapsed := v.base + v.sw.Elapsed()

	content := formatter.StyleBold.Render(formatter.FormatElapsed(elapsed)) + "\n\n" +
		formatter.Dim("Started at "+v.startedAt.Format("15:04")) + "\n" +
		formatter.Dim("s stop and save · d discard · q leave running")

	return formatter.RenderBox("Timer", content) + "\n"
}
