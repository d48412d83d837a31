package main

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/mod/semver"

	"github.com/mnove/voidui/internal/changelog"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			val := m.textInput.Value()
			if m.validate != nil {
				if err := m.validate(val); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// --- confirmModel: bubbletea model for yes/no confirmation ---

type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab", "h", "l":
			m.value = !m.value
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes := " Yes "
	no := " No "
	if m.value {
		yes = selectedStyle.Render(" Yes ")
	} else {
		no = selectedStyle.Render(" No ")
	}
	return fmt.Sprintf("%s %s / %s\n", titleStyle.Render(m.title), yes, no)
}

// --- prompt helpers ---

func promptInput(title, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	m := inputModel{
		textInput: ti,
		title:     title,
		validate:  validate,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return strings.TrimSpace(rm.textInput.Value()), nil
}

func promptConfirm(title string) (bool, error) {
	m := confirmModel{
		title: title,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, err
	}
	rm := result.(confirmModel)
	if rm.aborted {
		return false, fmt.Errorf("user aborted")
	}
	return rm.value, nil
}

var entryVersionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// promptEntry runs an interactive loop collecting a complete changelog
// entry: the new version, one or more typed changes, and the breaking flag.
func promptEntry(cl *changelog.Changelog) (changelog.Entry, error) {
	ver, err := promptInput(
		fmt.Sprintf("New version for %s", cl.Component),
		"1.2.0",
		versionValidator(cl.CurrentVersion),
	)
	if err != nil {
		return changelog.Entry{}, err
	}

	var changes []changelog.Change
	for {
		typ, err := promptInput(
			"Change type (added, changed, deprecated, removed, fixed, security)",
			"changed",
			changeTypeValidator,
		)
		if err != nil {
			return changelog.Entry{}, err
		}

		desc, err := promptInput("Description", "what changed in this release", func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("description is required")
			}
			return nil
		})
		if err != nil {
			return changelog.Entry{}, err
		}

		changes = append(changes, changelog.Change{
			Type:        changelog.ChangeType(typ),
			Description: desc,
		})

		more, err := promptConfirm("Add another change?")
		if err != nil {
			return changelog.Entry{}, err
		}
		if !more {
			break
		}
	}

	breaking, err := promptConfirm("Is this a breaking release?")
	if err != nil {
		return changelog.Entry{}, err
	}

	return changelog.Entry{
		Version:  ver,
		Date:     time.Now().UTC().Format(time.RFC3339),
		Changes:  changes,
		Breaking: breaking,
	}, nil
}

func versionValidator(current string) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if !entryVersionPattern.MatchString(s) {
			return fmt.Errorf("version must be MAJOR.MINOR.PATCH")
		}
		if current != "" && semver.Compare("v"+s, "v"+current) <= 0 {
			return fmt.Errorf("version must be newer than %s", current)
		}
		return nil
	}
}

func changeTypeValidator(s string) error {
	switch changelog.ChangeType(strings.TrimSpace(s)) {
	case changelog.TypeAdded, changelog.TypeChanged, changelog.TypeDeprecated,
		changelog.TypeRemoved, changelog.TypeFixed, changelog.TypeSecurity:
		return nil
	}
	return fmt.Errorf("unknown change type %q", strings.TrimSpace(s))
}
