package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/chord"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/config"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/pkg"
)

// fakeClient records calls and answers from canned replies.
type fakeClient struct {
	address string
	key     string
	text    string

	reply   *chord.Reply
	err     error
	fingers []uint64
	info    chord.NodeInfo
	ids     []string
}

func (f *fakeClient) record(ctx context.Context, address, key string) {
	f.address = address
	f.key = key
	f.ids = append(f.ids, pkg.RequestIDFromContext(ctx))
}

func (f *fakeClient) Save(ctx context.Context, address, key, text string) (*chord.Reply, error) {
	f.record(ctx, address, key)
	f.text = text
	return f.reply, f.err
}

func (f *fakeClient) Remove(ctx context.Context, address, key string) (*chord.Reply, error) {
	f.record(ctx, address, key)
	return f.reply, f.err
}

func (f *fakeClient) Find(ctx context.Context, address, key string) (*chord.Reply, error) {
	f.record(ctx, address, key)
	return f.reply, f.err
}

func (f *fakeClient) FingerTable(ctx context.Context, address string) ([]uint64, error) {
	f.record(ctx, address, "")
	return f.fingers, f.err
}

func (f *fakeClient) NodeInfo(ctx context.Context, address string) (chord.NodeInfo, error) {
	f.record(ctx, address, "")
	return f.info, f.err
}

func newTestShell(t *testing.T) (*Shell, *fakeClient, *bytes.Buffer) {
	t.Helper()

	fake := &fakeClient{}
	var out bytes.Buffer
	return NewShell(fake, config.DefaultMembers(), &out, pkg.Nop(), Options{}), fake, &out
}

func run(t *testing.T, s *Shell, out *bytes.Buffer, line string) string {
	t.Helper()

	out.Reset()
	require.NoError(t, s.Execute(context.Background(), line))
	return out.String()
}

func TestShell_Connect(t *testing.T) {
	s, _, out := newTestShell(t)

	_, ok := s.Connected()
	assert.False(t, ok)

	assert.Equal(t, "Connected To Node 2\n", run(t, s, out, "connect 2"))

	member, ok := s.Connected()
	require.True(t, ok)
	assert.Equal(t, uint64(24), member.ID)

	assert.Contains(t, run(t, s, out, "connect 6"), "between 0 and 5")
	assert.Contains(t, run(t, s, out, "connect x"), "between 0 and 5")
	assert.Contains(t, run(t, s, out, "connect"), "Usage: connect <index>")

	member, _ = s.Connected()
	assert.Equal(t, uint64(24), member.ID, "a rejected connect keeps the old node")
}

func TestShell_RequiresConnection(t *testing.T) {
	s, fake, out := newTestShell(t)

	for _, line := range []string{"save k v", "remove k", "find k", "get_finger_table", "info"} {
		assert.Contains(t, run(t, s, out, line), "Not connected", line)
	}
	assert.Empty(t, fake.ids, "nothing may be sent before connect")
}

func TestShell_Save(t *testing.T) {
	s, fake, out := newTestShell(t)
	run(t, s, out, "connect 0")

	fake.reply = &chord.Reply{NodeID: 24, Success: true}
	assert.Equal(t, "Success, s was saved in node 24\n", run(t, s, out, "save s hello  big world"))
	assert.Equal(t, "127.0.0.1:5000", fake.address)
	assert.Equal(t, "s", fake.key)
	assert.Equal(t, "hello  big world", fake.text, "text keeps inner spaces")

	run(t, s, out, "save s")
	assert.Equal(t, "", fake.text)

	fake.reply = &chord.Reply{NodeID: 0, Success: false, Reason: chord.ReasonUnreachable}
	assert.Equal(t, "Failure, key was not saved\n", run(t, s, out, "save s v"))

	fake.reply, fake.err = nil, errors.New("connection refused")
	assert.Equal(t, "Failure, key was not saved\n", run(t, s, out, "save s v"))

	assert.Contains(t, run(t, s, out, "save"), "Usage: save")
}

func TestShell_SaveSplitsKeyAndText(t *testing.T) {
	tests := []struct {
		line string
		key  string
		text string
	}{
		{line: "save k hello", key: "k", text: "hello"},
		{line: "save k hello world", key: "k", text: "hello world"},
		{line: "save  k hello", key: "k", text: "hello"},
		{line: " save k hello", key: "k", text: "hello"},
		{line: "save\tk hello", key: "k", text: "hello"},
		{line: "save k\thello", key: "k", text: "hello"},
		{line: "save k  hello", key: "k", text: " hello"},
		{line: "save k", key: "k", text: ""},
		{line: "save k ", key: "k", text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s, fake, out := newTestShell(t)
			run(t, s, out, "connect 0")

			fake.reply = &chord.Reply{NodeID: 2, Success: true}
			run(t, s, out, tt.line)
			assert.Equal(t, tt.key, fake.key)
			assert.Equal(t, tt.text, fake.text)
		})
	}
}

func TestShell_Remove(t *testing.T) {
	s, fake, out := newTestShell(t)
	run(t, s, out, "connect 5")

	fake.reply = &chord.Reply{NodeID: 16, Success: true}
	assert.Equal(t, "Success, k was removed from node 16\n", run(t, s, out, "remove k"))
	assert.Equal(t, "127.0.0.1:5005", fake.address)

	fake.reply = &chord.Reply{NodeID: 16, Reason: chord.ReasonNotFound}
	assert.Equal(t, "Failure, key was not removed\n", run(t, s, out, "remove k"))

	assert.Contains(t, run(t, s, out, "remove a b"), "Usage: remove <key>")
}

func TestShell_Find(t *testing.T) {
	s, fake, out := newTestShell(t)
	run(t, s, out, "connect 1")

	fake.reply = &chord.Reply{NodeID: 24, Success: true, Data: "v w"}
	assert.Equal(t, "Success, s was found in node 24 with data v w\n", run(t, s, out, "find s"))

	fake.reply = &chord.Reply{NodeID: 24, Reason: chord.ReasonNotFound}
	assert.Equal(t, "Failure, data was not found\n", run(t, s, out, "find s"))

	// empty data is the miss sentinel
	fake.reply = &chord.Reply{NodeID: 24, Success: true}
	assert.Equal(t, "Failure, data was not found\n", run(t, s, out, "find s"))
}

func TestShell_FingerTableAndInfo(t *testing.T) {
	s, fake, out := newTestShell(t)
	run(t, s, out, "connect 0")

	fake.fingers = []uint64{16, 16, 16, 16, 24}
	assert.Equal(t, "[16, 16, 16, 16, 24]\n", run(t, s, out, "get_finger_table"))

	fake.info = chord.NodeInfo{
		Self:        chord.NewNodeAddress(2, "127.0.0.1", 5000),
		Predecessor: chord.NewNodeAddress(31, "127.0.0.1", 5005),
		Successor:   chord.NewNodeAddress(16, "127.0.0.1", 5001),
		KeyCount:    3,
		Stats:       pkg.Stats{Entries: 3, Hits: 4, Misses: 1, Sets: 3},
	}
	assert.Equal(t, "Node 2 at 127.0.0.1:5000, predecessor 31, successor 16, 3 keys\n"+
		"Store: 4 hits, 1 misses, 3 sets, 0 deletes\n", run(t, s, out, "info"))

	fake.err = errors.New("down")
	assert.Contains(t, run(t, s, out, "get_finger_table"), "Failure")
	assert.Contains(t, run(t, s, out, "info"), "Failure")
}

func TestShell_MiscCommands(t *testing.T) {
	s, _, out := newTestShell(t)

	assert.Equal(t, "Unrecognised command\n\n", run(t, s, out, "jump 3"))
	assert.Empty(t, run(t, s, out, "   "))
	assert.Contains(t, run(t, s, out, "help"), "get_finger_table")

	out.Reset()
	err := s.Execute(context.Background(), "quit")
	assert.ErrorIs(t, err, ErrQuit)
	assert.Equal(t, "Shutting Down\n", out.String())
}

func TestShell_RequestIDPerCommand(t *testing.T) {
	s, fake, out := newTestShell(t)
	run(t, s, out, "connect 0")

	fake.reply = &chord.Reply{NodeID: 2, Success: true}
	run(t, s, out, "save a v")
	run(t, s, out, "find a")

	require.Len(t, fake.ids, 2)
	assert.NotEmpty(t, fake.ids[0])
	assert.NotEqual(t, fake.ids[0], fake.ids[1])
}

func TestValidateLine(t *testing.T) {
	s, _, _ := newTestShell(t)

	assert.NoError(t, s.ValidateLine(""))
	assert.NoError(t, s.ValidateLine("connect 3"))
	assert.NoError(t, s.ValidateLine("whatever"), "unknown commands are reported by Execute")
	assert.Error(t, s.ValidateLine("find"))
	assert.Error(t, s.ValidateLine("find k"), "not connected yet")
}
