package tui

import tea "github.com/charmbracelet/bubbletea"

// NavigateTo asks [RootModel] to switch the active page. A non-nil Payload is
// delivered to the new page as its first message instead of calling Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// statusNotice is delivered to the menu to show the result of a page action.
type statusNotice struct {
	text string
}

type unlockDoneMsg struct {
	err error
}

type savedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

// finishMsg ends the program with outcome. A non-nil err is returned from
// [TUI.Run].
type finishMsg struct {
	outcome RunOutcome
	err     error
}

// errorNotice opens the error overlay on top of the current page.
type errorNotice struct {
	message string
}

const (
	pageUnlock   = "unlock"
	pageMenu     = "menu"
	pageAdd      = "add"
	pageRetrieve = "retrieve"
	pageList     = "list"
	pageDelete   = "delete"
)

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

func finish(outcome RunOutcome, err error) tea.Cmd {
	return func() tea.Msg { return finishMsg{outcome: outcome, err: err} }
}

func showError(message string) tea.Cmd {
	return func() tea.Msg { return errorNotice{message: message} }
}

// lookupRequest opens the retrieve page with label already looked up.
type lookupRequest struct {
	label string
}
