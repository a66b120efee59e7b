package proof

import (
	"testing"

	"github.com/hakimgo/hakimgo/pkg/engine"
	"github.com/hakimgo/hakimgo/pkg/term"
)

// stubParser resolves only the identifiers the tests below declare,
// using a closed-form grammar just expressive enough to exercise
// Snapshot/Session without depending on pkg/parser.
type stubParser struct{}

func (stubParser) Parse(text string, e *engine.Engine) (term.Term, error) {
	switch text {
	case "Goal":
		return term.Forall{term.Abstraction{VarTy: term.Universe{Index: 0}, Body: term.Var{Index: 0}, HintName: "T"}}, nil
	case "Wild":
		return term.Wild{Index: 0, Scope: 0}, nil
	default:
		if ty, ok := e.Lookup(text); ok {
			return term.Axiom{Ty: ty, UniqueName: text}, nil
		}
		return term.Universe{Index: 0}, nil
	}
}

func newTestEngine() *engine.Engine {
	return engine.New(stubParser{})
}

func TestNewSnapshotRejectsWild(t *testing.T) {
	_, err := NewSnapshot(newTestEngine(), "Wild")
	if err != ErrGoalWithWildCard {
		t.Fatalf("got %v, want ErrGoalWithWildCard", err)
	}
}

func TestSnapshotWithSuccessorsReplacesFocused(t *testing.T) {
	snap, err := NewSnapshot(newTestEngine(), "Goal")
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}
	a := NewFrame(newTestEngine(), term.Universe{Index: 0})
	b := NewFrame(newTestEngine(), term.Universe{Index: 1})
	next := snap.WithSuccessors([]*Frame{a, b})
	if len(next.Frames) != 2 {
		t.Fatalf("len(Frames) = %d, want 2", len(next.Frames))
	}
	if next.Focused() != b {
		t.Fatal("Focused() should return the last successor")
	}
}

func TestSnapshotWithSuccessorsEmptyFinishesGoal(t *testing.T) {
	snap, err := NewSnapshot(newTestEngine(), "Goal")
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}
	next := snap.WithSuccessors(nil)
	if !next.IsFinished() {
		t.Fatal("expected a snapshot with no successors to be finished")
	}
}

func TestSnapshotSwitchFrame(t *testing.T) {
	eng := newTestEngine()
	snap := &Snapshot{Frames: []*Frame{
		NewFrame(eng, term.Universe{Index: 0}),
		NewFrame(eng, term.Universe{Index: 1}),
		NewFrame(eng, term.Universe{Index: 2}),
	}}
	next, err := snap.SwitchFrame(1)
	if err != nil {
		t.Fatalf("SwitchFrame: %v", err)
	}
	if !term.Equal(next.Focused().Goal, term.Universe{Index: 1}) {
		t.Fatalf("focused goal = %v, want Universe(1)", next.Focused().Goal)
	}
	if !term.Equal(next.Frames[1].Goal, term.Universe{Index: 2}) {
		t.Fatal("the previously focused frame should have moved to position 1")
	}
	if _, err := snap.SwitchFrame(0); err != ErrSwitchOutOfRange {
		t.Errorf("SwitchFrame(0) = %v, want ErrSwitchOutOfRange", err)
	}
	if _, err := snap.SwitchFrame(len(snap.Frames)); err != ErrSwitchOutOfRange {
		t.Errorf("SwitchFrame(len) = %v, want ErrSwitchOutOfRange", err)
	}
}

func TestSessionUndo(t *testing.T) {
	sess, err := NewSession(newTestEngine(), "Goal")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if err := sess.Undo(); err != ErrCanNotUndo {
		t.Fatalf("Undo on seed = %v, want ErrCanNotUndo", err)
	}
	sess.Append("intros T", sess.Current().WithSuccessors(nil))
	if err := sess.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if len(sess.History) != 1 {
		t.Fatalf("len(History) = %d, want 1", len(sess.History))
	}
}

func TestFrameDependsOn(t *testing.T) {
	eng := newTestEngine()
	f := NewFrame(eng, term.Axiom{Ty: term.Universe{Index: 0}, UniqueName: "widget"})
	if !f.DependsOn("widget") {
		t.Fatal("goal mentions widget but DependsOn returned false")
	}
	if f.DependsOn("gadget") {
		t.Fatal("goal does not mention gadget but DependsOn returned true")
	}
	f.Hyps["h"] = term.Axiom{Ty: term.Universe{Index: 0}, UniqueName: "gadget"}
	if !f.DependsOn("gadget") {
		t.Fatal("hypothesis h mentions gadget but DependsOn returned false")
	}
}

func TestFrameCloneIsIndependent(t *testing.T) {
	eng := newTestEngine()
	f := NewFrame(eng, term.Universe{Index: 0})
	f.Hyps["a"] = term.Universe{Index: 0}
	clone := f.Clone()
	clone.Hyps["b"] = term.Universe{Index: 1}
	if _, ok := f.Hyps["b"]; ok {
		t.Fatal("mutating the clone's Hyps leaked back into the original")
	}
}

func TestMonitorReportsFinished(t *testing.T) {
	sess, err := NewSession(newTestEngine(), "Goal")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	sess.Append("done", sess.Current().WithSuccessors(nil))
	got := sess.Monitor(func(t term.Term) string { return t.String() })
	if got != "No more subgoals." {
		t.Fatalf("Monitor() = %q, want %q", got, "No more subgoals.")
	}
}
