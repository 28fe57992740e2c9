// Package workflow implements the staged confirmation that gates a rename
// commit. Validation produces up to two warnings (name collisions,
// permission problems); each is answered with Continue or Cancel, and the
// commit fires only when every shown warning was continued. A single state
// enum tracks the whole exchange, including cross-warning cancellation.
package workflow

import "github.com/ChaoticWyrme/tui-rename/pkg/rename/plan"

// Warning identifies one of the two warning classes.
type Warning int

const (
	// WarningNames covers proposed-name collisions within the batch.
	WarningNames Warning = iota
	// WarningPerms covers items that cannot be renamed.
	WarningPerms
)

// String returns a short identifier for the warning.
func (w Warning) String() string {
	switch w {
	case WarningNames:
		return "names"
	case WarningPerms:
		return "permissions"
	default:
		return "unknown"
	}
}

// State is the confirmation workflow state.
type State int

const (
	// StateNoWarnings means validation found nothing; commit is immediate.
	StateNoWarnings State = iota
	// StateNamesWarning means only the collision warning is open.
	StateNamesWarning
	// StatePermWarning means only the permission warning is open.
	StatePermWarning
	// StateBothWarnings means both warnings are open.
	StateBothWarnings
	// StateCommitted means every shown warning was continued.
	StateCommitted
	// StateAborted means some warning was cancelled.
	StateAborted
)

// Decision is the outcome of answering a warning.
type Decision int

const (
	// DecisionNone means the workflow is still waiting on a warning.
	DecisionNone Decision = iota
	// DecisionCommit means the commit should fire now. Returned at most
	// once per workflow.
	DecisionCommit
	// DecisionAbort means the operation is aborted; no commit will fire.
	DecisionAbort
)

// Workflow tracks one apply attempt from validation through commit or abort.
type Workflow struct {
	state State
	open  map[Warning]bool
}

// Begin starts a workflow for the given validation result. When the result
// is clean there is nothing to confirm and the returned decision is
// DecisionCommit immediately.
func Begin(result plan.CheckResult) (*Workflow, Decision) {
	w := &Workflow{open: make(map[Warning]bool, 2)}

	names := len(result.ConflictingNames) > 0
	perms := len(result.PermissionProblems) > 0

	switch {
	case names && perms:
		w.state = StateBothWarnings
		w.open[WarningNames] = true
		w.open[WarningPerms] = true
	case names:
		w.state = StateNamesWarning
		w.open[WarningNames] = true
	case perms:
		w.state = StatePermWarning
		w.open[WarningPerms] = true
	default:
		w.state = StateCommitted
		return w, DecisionCommit
	}

	return w, DecisionNone
}

// State returns the current state.
func (w *Workflow) State() State { return w.state }

// Open reports whether the given warning is still unanswered.
func (w *Workflow) Open(warning Warning) bool { return w.open[warning] }

// ContinueEnabled reports whether the warning may still be answered with
// Continue. Once any warning is cancelled, continuing the other would commit
// on a partial acknowledgment, so it is disabled.
func (w *Workflow) ContinueEnabled(warning Warning) bool {
	return w.open[warning] && w.state != StateAborted
}

// Continue answers a warning with Continue. The commit decision is returned
// only when this was the last open warning and nothing was cancelled.
func (w *Workflow) Continue(warning Warning) Decision {
	if !w.ContinueEnabled(warning) {
		return DecisionNone
	}
	delete(w.open, warning)

	if len(w.open) > 0 {
		if w.open[WarningNames] {
			w.state = StateNamesWarning
		} else {
			w.state = StatePermWarning
		}
		return DecisionNone
	}

	w.state = StateCommitted
	return DecisionCommit
}

// Cancel answers a warning with Cancel, aborting the whole operation. Any
// other open warning remains visible for the user to read, but its Continue
// is disabled from this point on.
func (w *Workflow) Cancel(warning Warning) Decision {
	if !w.open[warning] {
		return DecisionNone
	}
	delete(w.open, warning)

	if w.state == StateAborted {
		return DecisionNone
	}
	w.state = StateAborted
	return DecisionAbort
}

// Dismiss closes a warning that lingers after an abort, without changing the
// outcome.
func (w *Workflow) Dismiss(warning Warning) {
	delete(w.open, warning)
}
