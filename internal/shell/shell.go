package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/oahshtsua/lab/bst/algos/bst"
	"github.com/oahshtsua/lab/bst/internal/journal"
	"github.com/oahshtsua/lab/bst/internal/render"
)

var ErrUnknownCommand = errors.New("unknown command")

const usage = `commands:
  insert KEY...   insert keys
  delete KEY...   delete keys
  height          height of the tree
  count           number of keys
  min             smallest key
  inorder         keys in order
  print [STYLE]   draw the tree (ascii, rounded, list)
  stats           table of all queries
  check           verify the tree invariants
  reset           delete every key
  help            show this message
  quit            leave the shell
`

// Shell applies line oriented commands to a single tree. It is not safe for
// concurrent use.
type Shell struct {
	root    *bst.Node
	journal journal.Journal
	out     io.Writer
	style   render.Style
	colored bool

	prompt func(io.Writer, string, ...interface{})
	fail   func(io.Writer, string, ...interface{})
}

func New(out io.Writer, style render.Style, colored bool) *Shell {
	prompt := color.New(color.FgHiYellow)
	fail := color.New(color.FgHiRed)
	if !colored {
		prompt.DisableColor()
		fail.DisableColor()
	}

	return &Shell{
		out:     out,
		style:   style,
		colored: colored,
		prompt:  prompt.FprintfFunc(),
		fail:    fail.FprintfFunc(),
	}
}

// WithJournal records every mutation to j. The caller owns j.
func (s *Shell) WithJournal(j journal.Journal) *Shell {
	s.journal = j
	return s
}

// WithRoot starts the shell on an existing tree.
func (s *Shell) WithRoot(root *bst.Node) *Shell {
	s.root = root
	return s
}

func (s *Shell) Root() *bst.Node {
	return s.root
}

// Run reads commands from in until EOF or quit.
func (s *Shell) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for {
		s.prompt(s.out, "bst> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return errors.Wrap(scanner.Err(), "failed to read command")
		}

		quit, err := s.Exec(scanner.Text())
		if err != nil {
			s.fail(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Exec runs a single command line. It reports whether the shell should stop.
func (s *Shell) Exec(line string) (bool, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return false, errors.Wrapf(err, "failed to parse %q", line)
	}
	if len(args) == 0 {
		return false, nil
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	log.WithField("command", cmd).Debugf("exec %v", args)

	switch cmd {
	case "insert", "add":
		keys, err := parseKeys(args)
		if err != nil {
			return false, err
		}
		for _, key := range keys {
			s.insert(key)
		}

	case "delete", "del", "remove":
		keys, err := parseKeys(args)
		if err != nil {
			return false, err
		}
		for _, key := range keys {
			s.delete(key)
		}

	case "height":
		fmt.Fprintln(s.out, s.root.Height())

	case "count":
		fmt.Fprintln(s.out, s.root.Count())

	case "min":
		min, err := s.root.Min()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, min)

	case "inorder":
		fmt.Fprintln(s.out, bst.Keys(s.root))

	case "print":
		style := s.style
		if len(args) > 0 {
			if style, err = render.ParseStyle(args[0]); err != nil {
				return false, err
			}
		}
		return false, render.Tree(s.out, s.root, style)

	case "stats":
		render.Stats(s.out, s.root, s.colored)

	case "check":
		if err := bst.Validate(s.root); err != nil {
			return false, errors.Wrap(err, "invariant violated")
		}
		fmt.Fprintln(s.out, "ok")

	case "reset":
		for _, key := range bst.Keys(s.root) {
			s.delete(key)
		}

	case "help":
		fmt.Fprint(s.out, usage)

	case "quit", "exit":
		return true, nil

	default:
		return false, errors.Wrapf(ErrUnknownCommand, "%q", cmd)
	}

	return false, nil
}

func (s *Shell) insert(key int) {
	if s.root == nil {
		s.root = bst.New(key)
	} else {
		s.root.Insert(key)
	}

	if s.journal != nil {
		s.journal.WriteInsert(key)
	}
}

func (s *Shell) delete(key int) {
	s.root = s.root.Delete(key)

	if s.journal != nil {
		s.journal.WriteDelete(key)
	}
}

func parseKeys(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, errors.New("at least one key is required")
	}

	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid key %q", arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
