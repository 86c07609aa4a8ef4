package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oahshtsua/lab/bst/algos/bst"
	"github.com/oahshtsua/lab/bst/internal/journal"
	"github.com/oahshtsua/lab/bst/internal/render"
)

type memoryJournal struct {
	events []journal.Event
}

func (m *memoryJournal) WriteInsert(key int) {
	m.write(journal.EventInsert, key)
}

func (m *memoryJournal) WriteDelete(key int) {
	m.write(journal.EventDelete, key)
}

func (m *memoryJournal) write(t journal.EventType, key int) {
	m.events = append(m.events, journal.Event{Sequence: uint64(len(m.events) + 1), Type: t, Key: key})
}

func (m *memoryJournal) Err() <-chan error { return nil }
func (m *memoryJournal) Run()              {}
func (m *memoryJournal) Close() error      { return nil }

func (m *memoryJournal) ReadEvents() (<-chan journal.Event, <-chan error) {
	events := make(chan journal.Event, len(m.events))
	errs := make(chan error)
	for _, e := range m.events {
		events <- e
	}
	close(events)
	close(errs)
	return events, errs
}

func TestExec(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, render.StyleASCII, false)

	testCases := []struct {
		line     string
		expected string
	}{
		{"insert 5 3 8 1 4 7 9", ""},
		{"count", "7\n"},
		{"height", "3\n"},
		{"min", "1\n"},
		{"delete 5", ""},
		{"inorder", "[1 3 4 7 8 9]\n"},
		{"count", "6\n"},
		{"check", "ok\n"},
		{"  ", ""},
	}
	for _, tc := range testCases {
		out.Reset()
		quit, err := s.Exec(tc.line)
		require.NoError(t, err, tc.line)
		assert.False(t, quit)
		assert.Equal(t, tc.expected, out.String(), tc.line)
	}

	assert.Equal(t, 7, s.Root().Key())
}

func TestExecErrors(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, render.StyleASCII, false)

	_, err := s.Exec("min")
	assert.ErrorIs(t, err, bst.ErrEmptyTree)

	_, err = s.Exec("insert five")
	assert.Error(t, err)

	_, err = s.Exec("insert")
	assert.Error(t, err)

	_, err = s.Exec("rotate 1")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = s.Exec("print fancy")
	assert.ErrorIs(t, err, render.ErrUnknownStyle)

	_, err = s.Exec(`insert "1`)
	assert.Error(t, err)
}

func TestJournal(t *testing.T) {
	var out bytes.Buffer
	j := &memoryJournal{}
	s := New(&out, render.StyleASCII, false).WithJournal(j)

	for _, line := range []string{"insert 10 5 15", "delete 10", "insert 12"} {
		_, err := s.Exec(line)
		require.NoError(t, err)
	}
	require.Len(t, j.events, 5)

	events, errs := j.ReadEvents()
	root, err := journal.Replay(nil, events, errs)
	require.NoError(t, err)
	assert.Equal(t, bst.Keys(s.Root()), bst.Keys(root))

	_, err = s.Exec("reset")
	require.NoError(t, err)
	assert.Nil(t, s.Root())

	events, errs = j.ReadEvents()
	root, err = journal.Replay(nil, events, errs)
	require.NoError(t, err)
	assert.Nil(t, root)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, render.StyleASCII, false)

	in := strings.NewReader("insert 2 1 3\nbogus\nprint\nquit\ninsert 4\n")
	require.NoError(t, s.Run(in))

	assert.Equal(t, []int{1, 2, 3}, bst.Keys(s.Root()))
	assert.Contains(t, out.String(), "unknown command")
	assert.Contains(t, out.String(), "└── 2")

	t.Run("eof", func(t *testing.T) {
		out.Reset()
		s := New(&out, render.StyleASCII, false).WithRoot(bst.New(1))
		require.NoError(t, s.Run(strings.NewReader("count\n")))
		assert.Contains(t, out.String(), "1\n")
	})
}
