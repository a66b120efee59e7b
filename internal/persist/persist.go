// Package persist (de)serializes a proof session to YAML, so an
// interrupted interactive proof can be saved and reloaded without
// losing tactic history.
package persist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hakimgo/hakimgo/pkg/engine"
	"github.com/hakimgo/hakimgo/pkg/parser"
	"github.com/hakimgo/hakimgo/pkg/proof"
	"github.com/hakimgo/hakimgo/pkg/stdlib"
)

// Record is the on-disk shape of one proof.Record: the tactic text
// that produced a snapshot, plus enough of the snapshot to reconstruct
// it without re-running the tactic (the goal and hyps of every open
// frame, rendered through the surface syntax so Engine.ParseText can
// read them back).
type Record struct {
	TacticText string       `yaml:"tactic"`
	Frames     []FrameState `yaml:"frames"`
}

// FrameState is one frame's goal and hypotheses as surface-syntax text.
type FrameState struct {
	Goal string            `yaml:"goal"`
	Hyps map[string]string `yaml:"hyps,omitempty"`
}

// File is the top-level document: the library the session's engine
// was seeded with, plus the full tactic history.
type File struct {
	Library string   `yaml:"library"`
	History []Record `yaml:"history"`
}

// Save renders sess to YAML and writes it to path. library names the
// stdlib library the session's engine was loaded from (so Load can
// rebuild an equivalent engine before re-parsing frame text).
func Save(sess *proof.Session, library, path string) error {
	file := File{Library: library}
	for _, rec := range sess.History {
		frState := make([]FrameState, 0, len(rec.Snapshot.Frames))
		for _, f := range rec.Snapshot.Frames {
			hyps := make(map[string]string, len(f.Hyps))
			for name, ty := range f.Hyps {
				hyps[name] = parser.Unparse(ty)
			}
			frState = append(frState, FrameState{Goal: parser.Unparse(f.Goal), Hyps: hyps})
		}
		file.History = append(file.History, Record{TacticText: rec.TacticText, Frames: frState})
	}

	out, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("persist: marshal: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("persist: write %s: %w", path, err)
	}
	return nil
}

// Load reads path and rebuilds its tactic history against a fresh
// engine seeded from the saved library, reconstructing a session whose
// current snapshot matches what was saved. Load does not re-run
// tactics; it reconstructs frames directly from their saved text, so a
// reloaded session resumes from exactly where Save left off even if
// the tactic that produced an intermediate frame is no longer
// reproducible verbatim (e.g. it depended on a side goal from apply).
func Load(path string, textParser engine.TextParser) (*proof.Session, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("persist: read %s: %w", path, err)
	}
	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("persist: unmarshal: %w", err)
	}
	if len(file.History) == 0 {
		return nil, fmt.Errorf("persist: %s has no history", path)
	}

	eng := engine.New(textParser)
	if file.Library != "" {
		if err := stdlib.Load(eng, file.Library); err != nil {
			return nil, fmt.Errorf("persist: loading library %q: %w", file.Library, err)
		}
	}

	first := file.History[0]
	if len(first.Frames) == 0 {
		return nil, fmt.Errorf("persist: first record has no frames")
	}
	sess, err := proof.NewSession(eng, first.Frames[0].Goal)
	if err != nil {
		return nil, fmt.Errorf("persist: restoring initial goal: %w", err)
	}

	for _, rec := range file.History[1:] {
		successors, err := framesFromState(eng, rec.Frames)
		if err != nil {
			return nil, fmt.Errorf("persist: restoring %q: %w", rec.TacticText, err)
		}
		sess.Append(rec.TacticText, &proof.Snapshot{Frames: successors})
	}
	return sess, nil
}

func framesFromState(eng *engine.Engine, states []FrameState) ([]*proof.Frame, error) {
	frames := make([]*proof.Frame, 0, len(states))
	for _, st := range states {
		goal, err := eng.ParseText(st.Goal)
		if err != nil {
			return nil, fmt.Errorf("parsing goal %q: %w", st.Goal, err)
		}
		f := proof.NewFrame(eng, goal)
		for name, text := range st.Hyps {
			ty, err := eng.ParseText(text)
			if err != nil {
				return nil, fmt.Errorf("parsing hyp %s: %q: %w", name, text, err)
			}
			f.Hyps[name] = ty
		}
		frames = append(frames, f)
	}
	return frames, nil
}
