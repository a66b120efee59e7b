// Package proof models the interactive proof state: a Frame is one open
// subgoal, a Snapshot the stack of open subgoals, and a Session the
// append-only history of snapshots produced by running tactics.
package proof

import (
	"errors"
	"maps"
	"sort"
	"strconv"

	"github.com/hakimgo/hakimgo/pkg/engine"
	"github.com/hakimgo/hakimgo/pkg/term"
)

// ErrGoalWithWildCard is returned by NewSnapshot when the parsed goal
// still contains a Wild.
var ErrGoalWithWildCard = errors.New("goal contains a wild card")

// ErrCanNotUndo is returned by Session.Undo when only the seed record
// remains.
var ErrCanNotUndo = errors.New("cannot undo the seed snapshot")

// ErrSwitchOutOfRange is returned by Snapshot.SwitchFrame when n does
// not name a frame below the focused one.
var ErrSwitchOutOfRange = errors.New("switch index out of range")

// Frame is a single open subgoal: a goal term, its named local
// hypotheses, and the engine snapshot it was born under.
type Frame struct {
	Goal   term.Term
	Hyps   map[string]term.Term
	Engine *engine.Engine
}

// NewFrame returns a Frame with no hypotheses, cloning eng.
func NewFrame(eng *engine.Engine, goal term.Term) *Frame {
	return &Frame{Goal: goal, Hyps: make(map[string]term.Term), Engine: eng.Clone()}
}

// Clone returns an independent copy of f; Hyps is copied, Engine is
// cloned, term values inside are shared (they are immutable).
func (f *Frame) Clone() *Frame {
	return &Frame{Goal: f.Goal, Hyps: maps.Clone(f.Hyps), Engine: f.Engine.Clone()}
}

// DependsOn reports whether name occurs as an Axiom's unique name
// anywhere in the goal or in any hypothesis's type — used to reject
// removing a hypothesis that other state still refers to.
func (f *Frame) DependsOn(name string) bool {
	pred := func(axiomName string) bool { return axiomName == name }
	if term.PredictAxiom(f.Goal, pred) {
		return true
	}
	for hypName, ty := range f.Hyps {
		if hypName == name {
			continue
		}
		if term.PredictAxiom(ty, pred) {
			return true
		}
	}
	return false
}

// Snapshot is an ordered stack of open subgoals; the last Frame is
// focused.
type Snapshot struct {
	Frames []*Frame
}

// NewSnapshot parses goalText against eng and returns a one-frame
// snapshot, rejecting a goal that still contains a Wild.
func NewSnapshot(eng *engine.Engine, goalText string) (*Snapshot, error) {
	goal, err := eng.ParseText(goalText)
	if err != nil {
		return nil, err
	}
	if term.ContainsWild(goal) {
		return nil, ErrGoalWithWildCard
	}
	return &Snapshot{Frames: []*Frame{NewFrame(eng, goal)}}, nil
}

// Focused returns the last frame, or nil if the snapshot has none.
func (s *Snapshot) Focused() *Frame {
	if len(s.Frames) == 0 {
		return nil
	}
	return s.Frames[len(s.Frames)-1]
}

// IsFinished reports whether no frames remain.
func (s *Snapshot) IsFinished() bool { return len(s.Frames) == 0 }

// WithSuccessors returns a new Snapshot with the focused frame replaced
// by successors, in order. The unaffected prefix is shared with s.
func (s *Snapshot) WithSuccessors(successors []*Frame) *Snapshot {
	prefix := s.Frames[:len(s.Frames)-1]
	next := make([]*Frame, 0, len(prefix)+len(successors))
	next = append(next, prefix...)
	next = append(next, successors...)
	return &Snapshot{Frames: next}
}

// SwitchFrame swaps the focused frame with the frame n positions before
// it (1-indexed from the top).
func (s *Snapshot) SwitchFrame(n int) (*Snapshot, error) {
	if n <= 0 || n >= len(s.Frames) {
		return nil, ErrSwitchOutOfRange
	}
	next := append([]*Frame(nil), s.Frames...)
	i, j := len(next)-1, len(next)-1-n
	next[i], next[j] = next[j], next[i]
	return &Snapshot{Frames: next}, nil
}

// Record is one entry in a Session's history: the tactic text that
// produced snapshot (or "Goal" for the seed record).
type Record struct {
	TacticText string
	Snapshot   *Snapshot
}

// Session is the append-only list of (tactic_text, snapshot) records
// produced over the lifetime of a proof attempt.
type Session struct {
	History []Record
}

// NewSession seeds a session with goalText's initial snapshot, tagged
// with tactic name "Goal".
func NewSession(eng *engine.Engine, goalText string) (*Session, error) {
	snap, err := NewSnapshot(eng, goalText)
	if err != nil {
		return nil, err
	}
	return &Session{History: []Record{{TacticText: "Goal", Snapshot: snap}}}, nil
}

// Current returns the most recent snapshot.
func (s *Session) Current() *Snapshot {
	return s.History[len(s.History)-1].Snapshot
}

// Append records snap under tacticText.
func (s *Session) Append(tacticText string, snap *Snapshot) {
	s.History = append(s.History, Record{TacticText: tacticText, Snapshot: snap})
}

// Undo pops the last record, rejecting popping the seed.
func (s *Session) Undo() error {
	if len(s.History) <= 1 {
		return ErrCanNotUndo
	}
	s.History = s.History[:len(s.History)-1]
	return nil
}

// Monitor renders the focused frame as a REPL would display it: each
// hypothesis, a banner, and the goal per open frame from innermost
// outward, or "No more subgoals." when finished.
func (s *Session) Monitor(pretty func(term.Term) string) string {
	snap := s.Current()
	if snap.IsFinished() {
		return "No more subgoals."
	}
	var b []byte
	focused := snap.Focused()
	for _, name := range sortedKeys(focused.Hyps) {
		b = append(b, []byte(" "+name+": "+pretty(focused.Hyps[name])+"\n")...)
	}
	count := len(snap.Frames)
	for i := len(snap.Frames) - 1; i >= 0; i-- {
		b = append(b, []byte(banner(count-i, count))...)
		b = append(b, []byte("    "+pretty(snap.Frames[i].Goal)+"\n")...)
	}
	return string(b)
}

func banner(i, count int) string {
	return "------(" + strconv.Itoa(i) + "/" + strconv.Itoa(count) + ")\n"
}

func sortedKeys(m map[string]term.Term) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
