package tui

import (
	"github.com/MKhiriev/go-safe-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// busyReporter is implemented by pages that run a vault operation in the
// background. The router does not quit while such an operation is running.
type busyReporter interface {
	Busy() bool
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) owns the error overlay and the build info window
// 5) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	buildInfo models.AppBuildInfo
	vaultPath string

	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel

	outcome RunOutcome
	err     error
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, vaultPath string) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		buildInfo:   buildInfo,
		vaultPath:   vaultPath,
		outcome:     OutcomeCancelled,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			if r.busy() {
				return r, nil
			}
			r.outcome = OutcomeCancelled
			return r, tea.Quit
		case r.showError:
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				r.showError = false
				r.errorOverlay.message = ""
			}
			return r, nil
		case r.showBuildInfo:
			if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		case key.Matches(keyMsg, keys.version) && r.currentName == pageMenu:
			r.showBuildInfo = true
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next
		r.currentName = msg.Page

		if msg.Payload != nil {
			return r, tea.Batch(r.current.Init(), func() tea.Msg { return msg.Payload })
		}
		return r, r.current.Init()

	case errorNotice:
		r.showError = true
		r.errorOverlay.message = msg.message
		return r, nil

	case finishMsg:
		r.outcome = msg.outcome
		r.err = msg.err
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.vaultPath)
	}
	if r.current == nil {
		return renderPage("SAFEVAULT", "", "")
	}
	if r.showError {
		return r.current.View() + "\n\n" + r.errorOverlay.View()
	}
	return r.current.View()
}

// Outcome returns how the session ended and the error that ended it, if any.
func (r RootModel) Outcome() (RunOutcome, error) {
	return r.outcome, r.err
}

func (r RootModel) busy() bool {
	b, ok := r.current.(busyReporter)
	return ok && b.Busy()
}
