package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ChaoticWyrme/tui-rename/pkg/rename/logging"
	"github.com/ChaoticWyrme/tui-rename/pkg/rename/manifest"
	"github.com/ChaoticWyrme/tui-rename/pkg/rename/plan"
	"github.com/ChaoticWyrme/tui-rename/pkg/rename/workflow"
)

// AppState represents the current state of the application.
type AppState int

const (
	// StateBrowse is the main view: pattern inputs over the file table.
	StateBrowse AppState = iota
	// StateNoFiles replaces the whole session when no candidates exist.
	StateNoFiles
	// StateMissing shows the dismissible list of argument paths that did
	// not exist.
	StateMissing
	// StatePatternError is the blocking dialog for a failed submit.
	StatePatternError
	// StateWarnings shows the pre-commit warning dialog(s).
	StateWarnings
	// StateSummary is the post-commit report.
	StateSummary
	// StateLogConsole is the diagnostic log console.
	StateLogConsole
)

// focusArea tracks which widget receives keystrokes in the browse state.
type focusArea int

const (
	focusFind focusArea = iota
	focusReplace
	focusList
)

// Options configures the TUI application.
type Options struct {
	// Candidates are the files up for renaming, in argument order.
	Candidates []Candidate

	// Missing are argument paths that did not exist.
	Missing []string

	// Find and Replace preload the two pattern inputs. Find must be a
	// valid expression; callers validate before starting the TUI.
	Find    string
	Replace string

	// FS is the filesystem used for checks and renames. Nil means the
	// real one.
	FS plan.FS

	// Manifest records committed batches. Nil disables recording.
	Manifest *manifest.Manifest
}

// Model is the main Bubble Tea model for the tui-rename TUI.
type Model struct {
	state     AppState
	prevState AppState // state to return to when the log console closes
	opts      Options
	fsys      plan.FS
	logger    *logging.Logger

	// Planning state
	patterns *plan.Patterns
	items    []plan.Item
	list     FileListModel

	// Inputs
	findInput    textinput.Model
	replaceInput textinput.Model
	focus        focusArea

	// patternErr is the inline single-line compile error; dialogErr is
	// the blocking dialog text after a failed submit.
	patternErr string
	dialogErr  string

	// Apply state
	check       plan.CheckResult
	planned     int
	wf          *workflow.Workflow
	warnStack   []workflow.Warning // bottom first; last is focused
	warnFocus   int                // 0 = Cancel, 1 = Continue, top dialog only
	applyResult plan.ApplyResult

	logView LogViewerModel

	width  int
	height int
}

// NewModel creates the TUI model from the given options.
func NewModel(opts Options) Model {
	fsys := opts.FS
	if fsys == nil {
		fsys = plan.OS
	}

	items := make([]plan.Item, 0, len(opts.Candidates))
	for _, c := range opts.Candidates {
		items = append(items, plan.NewItem(c.Path))
	}

	find := textinput.New()
	find.Prompt = "> "
	find.Placeholder = "search pattern"
	find.Focus()

	replace := textinput.New()
	replace.Prompt = "> "
	replace.Placeholder = "replacement, $1 for groups"

	m := Model{
		state:        StateBrowse,
		opts:         opts,
		fsys:         fsys,
		logger:       logging.Get("tui"),
		patterns:     plan.NewPatterns(),
		items:        items,
		list:         NewFileList(items, opts.Candidates),
		findInput:    find,
		replaceInput: replace,
		focus:        focusFind,
		logView:      NewLogViewer(),
		width:        80,
		height:       24,
	}

	if len(items) == 0 {
		m.state = StateNoFiles
		return m
	}

	if opts.Find != "" {
		m.findInput.SetValue(opts.Find)
		if err := m.patterns.SetFind(opts.Find); err != nil {
			// Callers validate; fall back to the empty pattern.
			m.patternErr = lastLine(err.Error())
		}
	}
	if opts.Replace != "" {
		m.replaceInput.SetValue(opts.Replace)
		m.patterns.SetReplace(opts.Replace)
	}
	plan.ApplyPatternAll(m.items, m.patterns)

	if len(opts.Missing) > 0 {
		m.state = StateMissing
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inputWidth := m.width - 20
		if inputWidth < 20 {
			inputWidth = 20
		}
		m.findInput.Width = inputWidth
		m.replaceInput.Width = inputWidth
		m.list.SetDimensions(m.width-6, m.listHeight())
		m.logView.SetDimensions(m.width, m.height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey handles keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global keys
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		if m.state == StateLogConsole {
			m.state = m.prevState
		} else {
			m.prevState = m.state
			m.state = StateLogConsole
		}
		return m, nil
	}

	switch m.state {
	case StateBrowse:
		return m.handleBrowseKey(msg)

	case StateNoFiles:
		if key == "enter" || key == "esc" || key == "q" {
			return m, tea.Quit
		}

	case StateMissing:
		if key == "enter" || key == "esc" {
			m.state = StateBrowse
		}

	case StatePatternError:
		if key == "enter" || key == "esc" {
			m.dialogErr = ""
			m.state = StateBrowse
		}

	case StateWarnings:
		return m.handleWarningKey(key)

	case StateSummary:
		if key == "enter" || key == "q" || key == "esc" {
			return m, tea.Quit
		}

	case StateLogConsole:
		if key == "esc" {
			m.state = m.prevState
			return m, nil
		}
		m.logView.HandleKey(key)
	}

	return m, nil
}

// handleBrowseKey handles input on the main view.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+r":
		return m.startApply()
	case "esc":
		return m, tea.Quit
	case "tab":
		m.setFocus((m.focus + 1) % 3)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + 2) % 3)
		return m, nil
	}

	switch m.focus {
	case focusFind:
		if key == "enter" {
			m.submitFind()
			return m, nil
		}
		var cmd tea.Cmd
		m.findInput, cmd = m.findInput.Update(msg)
		if m.findInput.Value() != m.patterns.FindRaw {
			m.editFind(m.findInput.Value())
		}
		return m, cmd

	case focusReplace:
		if key == "enter" {
			m.setFocus(focusList)
			return m, nil
		}
		var cmd tea.Cmd
		m.replaceInput, cmd = m.replaceInput.Update(msg)
		if m.replaceInput.Value() != m.patterns.Replace {
			m.editReplace(m.replaceInput.Value())
		}
		return m, cmd

	case focusList:
		m.list.HandleKey(key)
	}

	return m, nil
}

// setFocus moves keyboard focus between the inputs and the list.
func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.findInput.Blur()
	m.replaceInput.Blur()
	switch f {
	case focusFind:
		m.findInput.Focus()
	case focusReplace:
		m.replaceInput.Focus()
	}
}

// editFind handles a live edit of the search text. A compile failure keeps
// the previous pattern in effect and surfaces a one-line message.
func (m *Model) editFind(value string) {
	if err := m.patterns.SetFind(value); err != nil {
		short := lastLine(err.Error())
		m.patternErr = short
		m.logger.Warn(short)
		return
	}
	m.patternErr = ""
	m.recompute()
}

// submitFind handles explicit submission of the search text. A compile
// failure here is a stronger signal of intent and gets a blocking dialog.
func (m *Model) submitFind() {
	if err := m.patterns.SetFind(m.findInput.Value()); err != nil {
		m.dialogErr = err.Error()
		m.state = StatePatternError
		return
	}
	m.patternErr = ""
	m.recompute()
}

// editReplace handles a live edit of the replacement template, which has no
// invalid form.
func (m *Model) editReplace(value string) {
	m.patterns.SetReplace(value)
	m.recompute()
}

// recompute recomputes every item's proposed name and refreshes the list
// order.
func (m *Model) recompute() {
	plan.ApplyPatternAll(m.items, m.patterns)
	m.list.Resort()
}

// startApply validates the current rename set and opens the confirmation
// workflow.
func (m Model) startApply() (tea.Model, tea.Cmd) {
	m.check = plan.Check(m.items, m.fsys)
	m.planned = len(m.items) - len(m.check.PermissionProblems)

	wf, decision := workflow.Begin(m.check)
	m.wf = wf
	if decision == workflow.DecisionCommit {
		return m.commit()
	}

	m.warnStack = m.warnStack[:0]
	if wf.Open(workflow.WarningNames) {
		m.warnStack = append(m.warnStack, workflow.WarningNames)
	}
	if wf.Open(workflow.WarningPerms) {
		m.warnStack = append(m.warnStack, workflow.WarningPerms)
	}
	m.warnFocus = 0
	m.state = StateWarnings
	return m, nil
}

// handleWarningKey drives the warning dialog under focus (the top of the
// stack).
func (m Model) handleWarningKey(key string) (tea.Model, tea.Cmd) {
	if len(m.warnStack) == 0 {
		m.state = StateBrowse
		return m, nil
	}
	top := m.warnStack[len(m.warnStack)-1]

	switch key {
	case "left", "h":
		m.warnFocus = 0
	case "right", "l":
		m.warnFocus = 1
	case "tab":
		m.warnFocus = (m.warnFocus + 1) % 2
	case "esc":
		return m.answerWarning(top, false)
	case "enter":
		return m.answerWarning(top, m.warnFocus == 1)
	}
	return m, nil
}

// answerWarning resolves the top warning dialog with Continue or Cancel.
func (m Model) answerWarning(top workflow.Warning, cont bool) (tea.Model, tea.Cmd) {
	var decision workflow.Decision
	if cont {
		if !m.wf.ContinueEnabled(top) {
			// Continue was disabled by the other dialog's Cancel.
			return m, nil
		}
		decision = m.wf.Continue(top)
	} else if m.wf.State() == workflow.StateAborted {
		// Already aborted; closing the leftover dialog decides nothing.
		m.wf.Dismiss(top)
	} else {
		decision = m.wf.Cancel(top)
	}

	m.warnStack = m.warnStack[:len(m.warnStack)-1]
	m.warnFocus = 0

	if decision == workflow.DecisionCommit {
		return m.commit()
	}
	if len(m.warnStack) == 0 {
		m.state = StateBrowse
	}
	return m, nil
}

// commit renames every item in the set, flagged ones included, then reports.
// The loop is synchronous; the batch is small and human-sized.
func (m Model) commit() (tea.Model, tea.Cmd) {
	m.applyResult = plan.ApplyAll(m.items, m.fsys)
	m.logger.Info("renamed files",
		"attempted", m.applyResult.Attempted,
		"failed", len(m.applyResult.Failures))

	m.recordManifest()

	m.warnStack = nil
	m.state = StateSummary
	return m, nil
}

// recordManifest writes the batch record. Failures only get logged; history
// is best-effort.
func (m *Model) recordManifest() {
	if m.opts.Manifest == nil {
		return
	}

	failures := make(map[string]string, len(m.applyResult.Failures))
	for _, f := range m.applyResult.Failures {
		failures[f.Item.Location] = f.Err.Error()
	}

	records := make([]manifest.FileRecord, 0, len(m.items))
	for _, it := range m.items {
		records = append(records, manifest.FileRecord{
			Path:    it.Location,
			Renamed: it.Renamed,
			Error:   failures[it.Location],
		})
	}

	if err := m.opts.Manifest.EnsureDir(); err != nil {
		m.logger.Error("manifest dir", "error", err)
		return
	}
	if _, err := m.opts.Manifest.LogRename(records, m.planned); err != nil {
		m.logger.Error("manifest write", "error", err)
	}
}

// listHeight returns the rows available to the file table.
func (m Model) listHeight() int {
	h := m.height - 12
	if h < 4 {
		h = 4
	}
	return h
}

// View renders the current state.
func (m Model) View() string {
	switch m.state {
	case StateNoFiles:
		dialog := renderDialog("Error", "No files provided!",
			[]dialogButton{{label: "Close", focused: true}}, 50)
		return overlayDialog("", dialog, m.width, m.height)

	case StateMissing:
		return overlayDialog(m.renderBrowse(), m.renderMissingDialog(), m.width, m.height)

	case StatePatternError:
		dialog := renderDialog("Pattern Error", m.dialogErr,
			[]dialogButton{{label: "Close", focused: true}}, m.width-10)
		return overlayDialog(m.renderBrowse(), dialog, m.width, m.height)

	case StateWarnings:
		return stackDialogs(m.renderBrowse(), m.renderWarningDialogs(), m.width, m.height)

	case StateSummary:
		return overlayDialog(m.renderBrowse(), m.renderSummaryDialog(), m.width, m.height)

	case StateLogConsole:
		return m.logView.View()
	}

	return m.renderBrowse()
}

// renderBrowse renders the main view.
func (m Model) renderBrowse() string {
	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("  tui-rename: %d files", len(m.items))))
	b.WriteString("\n")
	b.WriteString(renderDivider(contentWidth))
	b.WriteString("\n")

	b.WriteString("  " + labelStyle.Render("Find pattern:") + "\n")
	b.WriteString("  " + m.findInput.View() + "\n")
	b.WriteString("  " + labelStyle.Render("Replace pattern:") + "\n")
	b.WriteString("  " + m.replaceInput.View() + "\n")
	b.WriteString(renderDivider(contentWidth))
	b.WriteString("\n")

	b.WriteString(m.list.View(m.focus == focusList))
	b.WriteString(renderDivider(contentWidth))
	b.WriteString("\n")

	if m.patternErr != "" {
		b.WriteString(center(inlineErrorStyle.Render(m.patternErr), contentWidth))
	} else {
		b.WriteString(m.renderHelpBar())
	}
	b.WriteString("\n")

	return outerBoxStyle.Width(m.width - 2).Render(b.String())
}

// renderHelpBar renders the key hints.
func (m Model) renderHelpBar() string {
	hints := []struct {
		key  string
		desc string
	}{
		{"Tab", "Focus"},
		{"o/r", "Sort"},
		{"Ctrl+R", "Apply"},
		{"Ctrl+L", "Logs"},
		{"Esc", "Quit"},
	}

	var parts []string
	for _, h := range hints {
		parts = append(parts, keyStyle.Render("["+h.key+"]")+" "+keyDescStyle.Render(h.desc))
	}
	return "  " + strings.Join(parts, "  ")
}

// renderMissingDialog renders the startup list of paths that were not found.
func (m Model) renderMissingDialog() string {
	body := strings.Join(m.opts.Missing, "\n")
	return renderDialog("Failed to access items", body,
		[]dialogButton{{label: "Close", focused: true}}, m.width-10)
}

// renderWarningDialogs renders every open warning, bottom of the stack
// first. Only the top dialog shows button focus.
func (m Model) renderWarningDialogs() []string {
	dialogs := make([]string, 0, len(m.warnStack))
	for i, w := range m.warnStack {
		isTop := i == len(m.warnStack)-1

		var title, body string
		switch w {
		case workflow.WarningNames:
			title = "Conflicting names"
			body = "Files will be renamed to the same value:\n " +
				strings.Join(m.check.ConflictingNames, ",\n ")
		case workflow.WarningPerms:
			title = "Permission problems"
			body = "Files cannot be renamed:\n " +
				strings.Join(m.check.PermissionProblems, ",\n ")
		}

		buttons := []dialogButton{
			{label: "Cancel", focused: isTop && m.warnFocus == 0},
			{
				label:    "Continue",
				focused:  isTop && m.warnFocus == 1,
				disabled: !m.wf.ContinueEnabled(w),
			},
		}
		dialogs = append(dialogs, renderDialog(title, body, buttons, m.width-10))
	}
	return dialogs
}

// renderSummaryDialog renders the post-commit report. The headline count is
// computed before the commit (candidates minus permission-flagged items);
// actual per-file failures are listed separately.
func (m Model) renderSummaryDialog() string {
	var body strings.Builder
	body.WriteString(fmt.Sprintf("Renamed %d files", m.planned))

	if n := len(m.applyResult.Failures); n > 0 {
		body.WriteString("\n\n")
		body.WriteString(fmt.Sprintf("%d renames failed:", n))
		for _, f := range m.applyResult.Failures {
			body.WriteString("\n " + f.Err.Error())
		}
	}

	return renderDialog("Done", body.String(),
		[]dialogButton{{label: "Finish", focused: true}}, m.width-10)
}

// lastLine returns the final line of a possibly multi-line diagnostic, to
// keep inline errors on one status line.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	return lines[len(lines)-1]
}

// Run starts the TUI application.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
