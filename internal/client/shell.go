// Package client implements the interactive command shell that talks to a ring node.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/xerrors"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/chord"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/config"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/pkg"
)

// ErrQuit is returned by Execute when the user asked to leave.
var ErrQuit = errors.New("quit")

// Prompt is printed before every command.
const Prompt = "> "

// NodeClient is the set of calls the shell makes against the connected node.
// transport.GRPCClient implements it.
type NodeClient interface {
	Save(ctx context.Context, address, key, text string) (*chord.Reply, error)
	Remove(ctx context.Context, address, key string) (*chord.Reply, error)
	Find(ctx context.Context, address, key string) (*chord.Reply, error)
	FingerTable(ctx context.Context, address string) ([]uint64, error)
	NodeInfo(ctx context.Context, address string) (chord.NodeInfo, error)
}

// Options tune the shell output.
type Options struct {
	Color bool
}

// Shell parses command lines and runs them against the connected node.
type Shell struct {
	client  NodeClient
	members []config.Member
	out     io.Writer
	logger  *pkg.Logger

	// index into members, -1 until connect
	current int

	success *color.Color
	failure *color.Color
	notice  *color.Color
}

// NewShell creates a shell writing to out. members is the ring the
// connect command indexes into.
func NewShell(client NodeClient, members []config.Member, out io.Writer, logger *pkg.Logger, opts Options) *Shell {
	if logger == nil {
		logger = pkg.Nop()
	}

	s := &Shell{
		client:  client,
		members: members,
		out:     out,
		logger:  logger.WithFields(pkg.Fields{"component": "shell"}),
		current: -1,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		notice:  color.New(color.FgHiYellow),
	}

	if !opts.Color {
		s.success.DisableColor()
		s.failure.DisableColor()
		s.notice.DisableColor()
	}

	return s
}

// Connected returns the member commands are sent to.
func (s *Shell) Connected() (config.Member, bool) {
	if s.current < 0 {
		return config.Member{}, false
	}
	return s.members[s.current], true
}

// Execute runs one command line. It returns ErrQuit after quit and nil
// otherwise; command failures are reported on the output.
func (s *Shell) Execute(ctx context.Context, line string) error {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	if err := s.ValidateLine(line); err != nil {
		s.failure.Fprintln(s.out, err.Error())
		return nil
	}

	ctx = pkg.ContextWithRequestID(ctx, pkg.NewRequestID())

	switch fields[0] {
	case "connect":
		s.connect(fields[1])
	case "save":
		key, text := splitSave(line)
		s.save(ctx, key, text)
	case "remove":
		s.remove(ctx, fields[1])
	case "find":
		s.find(ctx, fields[1])
	case "get_finger_table":
		s.fingerTable(ctx)
	case "info":
		s.info(ctx)
	case "help":
		s.help()
	case "quit":
		fmt.Fprintln(s.out, "Shutting Down")
		return ErrQuit
	default:
		fmt.Fprint(s.out, "Unrecognised command\n\n")
	}

	return nil
}

// ValidateLine checks the argument count of known commands. Unknown
// commands pass, so Execute can report them. It has the survey validator
// signature and is used to re-prompt on a terminal.
func (s *Shell) ValidateLine(ans interface{}) error {
	line, _ := ans.(string)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "connect":
		if len(fields) != 2 {
			return xerrors.Errorf("Usage: connect <index>")
		}
		return s.indexValidator(fields[1])
	case "save":
		if len(fields) < 2 {
			return xerrors.Errorf("Usage: save <key> <text...>")
		}
	case "remove", "find":
		if len(fields) != 2 {
			return xerrors.Errorf("Usage: %s <key>", fields[0])
		}
	}

	if needsConnection(fields[0]) && s.current < 0 {
		return xerrors.Errorf("Not connected, use connect <index> first")
	}
	return nil
}

func (s *Shell) indexValidator(ans interface{}) error {
	raw, _ := ans.(string)
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= len(s.members) {
		return xerrors.Errorf("Please enter a node index between 0 and %d", len(s.members)-1)
	}
	return nil
}

// splitSave cuts a save line into its key and text. The text is everything
// after the single separator that follows the key, inner spacing included.
func splitSave(line string) (key, text string) {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	rest = strings.TrimLeftFunc(rest[len("save"):], unicode.IsSpace)

	end := strings.IndexFunc(rest, unicode.IsSpace)
	if end < 0 {
		return rest, ""
	}
	key, rest = rest[:end], rest[end:]

	_, size := utf8.DecodeRuneInString(rest)
	return key, rest[size:]
}

func needsConnection(command string) bool {
	switch command {
	case "save", "remove", "find", "get_finger_table", "info":
		return true
	}
	return false
}

func (s *Shell) address() string {
	return s.members[s.current].Address()
}

func (s *Shell) connect(raw string) {
	i, _ := strconv.Atoi(raw)
	s.current = i
	s.notice.Fprintf(s.out, "Connected To Node %d\n", i)
}

func (s *Shell) save(ctx context.Context, key, text string) {
	reply, err := s.client.Save(ctx, s.address(), key, text)
	if err != nil || !reply.Success {
		s.report(ctx, "save", key, reply, err)
		s.failure.Fprintln(s.out, "Failure, key was not saved")
		return
	}
	s.success.Fprintf(s.out, "Success, %s was saved in node %d\n", key, reply.NodeID)
}

func (s *Shell) remove(ctx context.Context, key string) {
	reply, err := s.client.Remove(ctx, s.address(), key)
	if err != nil || !reply.Success {
		s.report(ctx, "remove", key, reply, err)
		s.failure.Fprintln(s.out, "Failure, key was not removed")
		return
	}
	s.success.Fprintf(s.out, "Success, %s was removed from node %d\n", key, reply.NodeID)
}

// find treats empty data as a miss, the sentinel the nodes answer with.
func (s *Shell) find(ctx context.Context, key string) {
	reply, err := s.client.Find(ctx, s.address(), key)
	if err != nil || !reply.Success || reply.Data == "" {
		s.report(ctx, "find", key, reply, err)
		s.failure.Fprintln(s.out, "Failure, data was not found")
		return
	}
	s.success.Fprintf(s.out, "Success, %s was found in node %d with data %s\n", key, reply.NodeID, reply.Data)
}

func (s *Shell) fingerTable(ctx context.Context) {
	ids, err := s.client.FingerTable(ctx, s.address())
	if err != nil {
		s.logger.WithContext(ctx).Debug().Err(err).Msg("GetFingerTable failed")
		s.failure.Fprintln(s.out, "Failure, finger table unavailable")
		return
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}
	fmt.Fprintf(s.out, "[%s]\n", strings.Join(parts, ", "))
}

func (s *Shell) info(ctx context.Context) {
	info, err := s.client.NodeInfo(ctx, s.address())
	if err != nil {
		s.logger.WithContext(ctx).Debug().Err(err).Msg("GetNodeInfo failed")
		s.failure.Fprintln(s.out, "Failure, node info unavailable")
		return
	}

	fmt.Fprintf(s.out, "Node %d at %s, predecessor %d, successor %d, %d keys\n",
		info.Self.ID, info.Self.Address(), info.Predecessor.ID, info.Successor.ID, info.KeyCount)
	fmt.Fprintf(s.out, "Store: %d hits, %d misses, %d sets, %d deletes\n",
		info.Stats.Hits, info.Stats.Misses, info.Stats.Sets, info.Stats.Deletes)
}

func (s *Shell) help() {
	s.notice.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  connect <index>        select the node to talk to")
	fmt.Fprintln(s.out, "  save <key> <text...>   store text under key")
	fmt.Fprintln(s.out, "  remove <key>           delete key")
	fmt.Fprintln(s.out, "  find <key>             look key up")
	fmt.Fprintln(s.out, "  get_finger_table       show the node's finger table")
	fmt.Fprintln(s.out, "  info                   show the node's neighbours and key count")
	fmt.Fprintln(s.out, "  quit                   leave the shell")
}

// report logs why a request failed. The user only sees the result line.
func (s *Shell) report(ctx context.Context, op, key string, reply *chord.Reply, err error) {
	event := s.logger.WithContext(ctx).Debug().Str("op", op).Str("key", key)
	if err != nil {
		event = event.Err(err)
	}
	if reply != nil {
		event = event.Uint64("node_id", reply.NodeID).Str("reason", reply.Reason)
	}
	event.Msg("Request failed")
}
