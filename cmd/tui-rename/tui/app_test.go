package tui

import (
	"io/fs"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ChaoticWyrme/tui-rename/pkg/rename/workflow"
)

// fakeInfo is a minimal os.FileInfo for the fake filesystem.
type fakeInfo struct {
	name string
	mode os.FileMode
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() os.FileMode  { return f.mode }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return false }
func (f fakeInfo) Sys() interface{}   { return nil }

// fakeFS records rename calls instead of touching the disk.
type fakeFS struct {
	modes   map[string]os.FileMode
	renames [][2]string
}

func newFakeFS(paths ...string) *fakeFS {
	modes := make(map[string]os.FileMode, len(paths))
	for _, p := range paths {
		modes[p] = 0o644
	}
	return &fakeFS{modes: modes}
}

func (f *fakeFS) Stat(name string) (os.FileInfo, error) {
	mode, ok := f.modes[name]
	if !ok {
		return nil, &os.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return fakeInfo{name: name, mode: mode}, nil
}

func (f *fakeFS) Rename(oldpath, newpath string) error {
	f.renames = append(f.renames, [2]string{oldpath, newpath})
	return nil
}

func candidates(paths ...string) []Candidate {
	out := make([]Candidate, 0, len(paths))
	for _, p := range paths {
		out = append(out, Candidate{Path: p, Size: 100, ModTime: time.Now()})
	}
	return out
}

func press(t *testing.T, m tea.Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlR = tea.KeyMsg{Type: tea.KeyCtrlR}
)

func TestNewModelNoFiles(t *testing.T) {
	m := NewModel(Options{FS: newFakeFS()})
	if m.state != StateNoFiles {
		t.Errorf("state = %d, want StateNoFiles", m.state)
	}
}

func TestNewModelMissingArgs(t *testing.T) {
	fsys := newFakeFS("/d/a.txt")
	m := NewModel(Options{
		Candidates: candidates("/d/a.txt"),
		Missing:    []string{"/d/gone.txt"},
		FS:         fsys,
	})
	if m.state != StateMissing {
		t.Errorf("state = %d, want StateMissing", m.state)
	}

	m = press(t, m, keyEnter)
	if m.state != StateBrowse {
		t.Errorf("state after dismiss = %d, want StateBrowse", m.state)
	}
}

func TestNewModelPreloadsPatterns(t *testing.T) {
	fsys := newFakeFS("/d/foo.txt")
	m := NewModel(Options{
		Candidates: candidates("/d/foo.txt"),
		Find:       `^foo`,
		Replace:    "bar",
		FS:         fsys,
	})
	if m.items[0].Renamed != "bar.txt" {
		t.Errorf("Renamed = %q, want %q", m.items[0].Renamed, "bar.txt")
	}
}

func TestApplyCleanSetCommitsImmediately(t *testing.T) {
	fsys := newFakeFS("/d/a.txt", "/d/b.txt")
	m := NewModel(Options{
		Candidates: candidates("/d/a.txt", "/d/b.txt"),
		Find:       `\.txt$`,
		Replace:    ".md",
		FS:         fsys,
	})

	m = press(t, m, keyCtrlR)
	if m.state != StateSummary {
		t.Fatalf("state = %d, want StateSummary", m.state)
	}
	if len(fsys.renames) != 2 {
		t.Errorf("renames = %d, want 2", len(fsys.renames))
	}
	if m.planned != 2 {
		t.Errorf("planned = %d, want 2", m.planned)
	}
	if !strings.Contains(m.renderSummaryDialog(), "Renamed 2 files") {
		t.Error("summary does not report the planned count")
	}
}

func TestApplyCollisionCancelRenamesNothing(t *testing.T) {
	fsys := newFakeFS("/d/a.txt", "/d/b.txt")
	m := NewModel(Options{
		Candidates: candidates("/d/a.txt", "/d/b.txt"),
		Find:       `^.*$`,
		Replace:    "same.txt",
		FS:         fsys,
	})

	m = press(t, m, keyCtrlR)
	if m.state != StateWarnings {
		t.Fatalf("state = %d, want StateWarnings", m.state)
	}
	if len(m.warnStack) != 1 || m.warnStack[0] != workflow.WarningNames {
		t.Fatalf("warnStack = %v, want just the names warning", m.warnStack)
	}

	// Cancel is the default button.
	m = press(t, m, keyEnter)
	if m.state != StateBrowse {
		t.Errorf("state = %d, want StateBrowse", m.state)
	}
	if len(fsys.renames) != 0 {
		t.Errorf("renames = %d, want 0 after cancel", len(fsys.renames))
	}
}

func TestApplyCollisionContinueCommits(t *testing.T) {
	fsys := newFakeFS("/d/a.txt", "/d/b.txt")
	m := NewModel(Options{
		Candidates: candidates("/d/a.txt", "/d/b.txt"),
		Find:       `^.*$`,
		Replace:    "same.txt",
		FS:         fsys,
	})

	m = press(t, m, keyCtrlR)
	m = press(t, m, keyRight)
	m = press(t, m, keyEnter)

	if m.state != StateSummary {
		t.Fatalf("state = %d, want StateSummary", m.state)
	}
	if len(fsys.renames) != 2 {
		t.Errorf("renames = %d, want 2", len(fsys.renames))
	}
}

func TestApplyBothWarningsContinueBothCommitsOnce(t *testing.T) {
	fsys := newFakeFS("/d/a.txt", "/d/b.txt", "/d/c.txt")
	fsys.modes["/d/c.txt"] = 0o444
	m := NewModel(Options{
		Candidates: candidates("/d/a.txt", "/d/b.txt", "/d/c.txt"),
		Find:       `^.*$`,
		Replace:    "same.txt",
		FS:         fsys,
	})

	m = press(t, m, keyCtrlR)
	if m.state != StateWarnings {
		t.Fatalf("state = %d, want StateWarnings", m.state)
	}
	if len(m.warnStack) != 2 {
		t.Fatalf("warnStack has %d entries, want 2", len(m.warnStack))
	}

	// Continue the top dialog, then the remaining one.
	m = press(t, m, keyRight)
	m = press(t, m, keyEnter)
	if m.state != StateWarnings {
		t.Fatalf("state = %d after first continue, want StateWarnings", m.state)
	}
	if len(fsys.renames) != 0 {
		t.Errorf("renames = %d before both continue, want 0", len(fsys.renames))
	}

	m = press(t, m, keyRight)
	m = press(t, m, keyEnter)
	if m.state != StateSummary {
		t.Fatalf("state = %d, want StateSummary", m.state)
	}

	// Every item is renamed, flagged ones included, exactly once.
	if len(fsys.renames) != 3 {
		t.Errorf("renames = %d, want 3", len(fsys.renames))
	}
	if m.planned != 2 {
		t.Errorf("planned = %d, want 2 (read-only file excluded)", m.planned)
	}
}

func TestApplyCancelOneDisablesOtherContinue(t *testing.T) {
	fsys := newFakeFS("/d/a.txt", "/d/b.txt", "/d/c.txt")
	fsys.modes["/d/c.txt"] = 0o444
	m := NewModel(Options{
		Candidates: candidates("/d/a.txt", "/d/b.txt", "/d/c.txt"),
		Find:       `^.*$`,
		Replace:    "same.txt",
		FS:         fsys,
	})

	m = press(t, m, keyCtrlR)

	// Cancel the top dialog via esc.
	m = press(t, m, keyEsc)
	if m.state != StateWarnings {
		t.Fatalf("state = %d, want StateWarnings with one dialog left", m.state)
	}

	remaining := m.warnStack[len(m.warnStack)-1]
	if m.wf.ContinueEnabled(remaining) {
		t.Error("remaining dialog's Continue should be disabled after a cancel")
	}

	// Pressing Continue on a disabled button does nothing.
	m = press(t, m, keyRight)
	m = press(t, m, keyEnter)
	if m.state != StateWarnings {
		t.Fatalf("state = %d, disabled continue must not resolve the dialog", m.state)
	}

	// Esc on the leftover dialog dismisses it without a second abort.
	m = press(t, m, keyEsc)
	if m.state != StateBrowse {
		t.Errorf("state = %d, want StateBrowse", m.state)
	}
	if m.wf.Open(remaining) {
		t.Error("leftover dialog still open after dismiss")
	}
	if m.wf.State() != workflow.StateAborted {
		t.Errorf("workflow state = %v, want aborted", m.wf.State())
	}
	if len(fsys.renames) != 0 {
		t.Errorf("renames = %d, want 0 after cancel", len(fsys.renames))
	}
}

func TestSubmitInvalidPatternOpensDialog(t *testing.T) {
	fsys := newFakeFS("/d/foo.txt")
	m := NewModel(Options{
		Candidates: candidates("/d/foo.txt"),
		FS:         fsys,
	})

	m.findInput.SetValue("foo[")
	m = press(t, m, keyEnter)
	if m.state != StatePatternError {
		t.Fatalf("state = %d, want StatePatternError", m.state)
	}
	if m.dialogErr == "" {
		t.Error("dialogErr is empty")
	}

	m = press(t, m, keyEnter)
	if m.state != StateBrowse {
		t.Errorf("state = %d after dismiss, want StateBrowse", m.state)
	}
}

func TestInvalidEditKeepsPreviousPattern(t *testing.T) {
	fsys := newFakeFS("/d/foo.txt")
	m := NewModel(Options{
		Candidates: candidates("/d/foo.txt"),
		Find:       `^foo`,
		Replace:    "bar",
		FS:         fsys,
	})

	m.findInput.SetValue("^foo[")
	m.editFind("^foo[")
	if m.patternErr == "" {
		t.Error("patternErr is empty after invalid edit")
	}
	if m.patterns.Compiled() != "^foo" {
		t.Errorf("Compiled() = %q, want the previous pattern", m.patterns.Compiled())
	}
	if m.items[0].Renamed != "bar.txt" {
		t.Errorf("Renamed = %q, want the stale pattern still applied", m.items[0].Renamed)
	}
}

func TestLogConsoleToggleRestoresState(t *testing.T) {
	fsys := newFakeFS("/d/a.txt")
	m := NewModel(Options{
		Candidates: candidates("/d/a.txt"),
		FS:         fsys,
	})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if m.state != StateLogConsole {
		t.Fatalf("state = %d, want StateLogConsole", m.state)
	}

	m = press(t, m, keyEsc)
	if m.state != StateBrowse {
		t.Errorf("state = %d, want StateBrowse restored", m.state)
	}
}

func TestBrowseViewTitle(t *testing.T) {
	fsys := newFakeFS("/d/a.txt", "/d/b.txt")
	m := NewModel(Options{
		Candidates: candidates("/d/a.txt", "/d/b.txt"),
		FS:         fsys,
	})

	view := m.View()
	if !strings.Contains(view, "tui-rename: 2 files") {
		t.Errorf("view missing title, got:\n%s", view)
	}
}

func TestLastLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"single", "single"},
		{"first\nsecond", "second"},
		{"trailing\nnewline\n", "newline"},
	}
	for _, tt := range tests {
		if got := lastLine(tt.in); got != tt.want {
			t.Errorf("lastLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
