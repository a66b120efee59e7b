package persist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hakimgo/hakimgo/pkg/engine"
	"github.com/hakimgo/hakimgo/pkg/parser"
	"github.com/hakimgo/hakimgo/pkg/proof"
	"github.com/hakimgo/hakimgo/pkg/stdlib"
	"github.com/hakimgo/hakimgo/pkg/tactic"
)

func noAsker(string) (string, bool) { return "", true }

func newEqSession(t *testing.T, goal string) *proof.Session {
	t.Helper()
	eng := engine.New(parser.New())
	require.NoError(t, stdlib.Load(eng, "Eq"))
	sess, err := proof.NewSession(eng, goal)
	require.NoError(t, err)
	return sess
}

func TestSaveLoadRoundTripsFinishedSession(t *testing.T) {
	sess := newEqSession(t, "(forall (T U0) (forall (x T) (eq T x x)))")
	require.NoError(t, tactic.RunLine(sess, "intros T x", noAsker))
	require.NoError(t, tactic.RunLine(sess, "apply (eq_refl T x)", noAsker))
	require.True(t, sess.Current().IsFinished())

	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, Save(sess, "Eq", path))

	reloaded, err := Load(path, parser.New())
	require.NoError(t, err)
	require.True(t, reloaded.Current().IsFinished())
	require.Len(t, reloaded.History, len(sess.History))
}

func TestSaveLoadRoundTripsOpenGoalAndHyps(t *testing.T) {
	sess := newEqSession(t, "(forall (T U0) (forall (x T) (eq T x x)))")
	require.NoError(t, tactic.RunLine(sess, "intros T x", noAsker))

	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, Save(sess, "Eq", path))

	reloaded, err := Load(path, parser.New())
	require.NoError(t, err)
	require.False(t, reloaded.Current().IsFinished())

	focused := reloaded.Current().Focused()
	require.Contains(t, focused.Hyps, "T")
	require.Contains(t, focused.Hyps, "x")

	require.NoError(t, tactic.RunLine(reloaded, "apply (eq_refl T x)", noAsker))
	require.True(t, reloaded.Current().IsFinished())
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"), parser.New())
	require.Error(t, err)
}
