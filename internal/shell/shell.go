// Package shell interprets the line commands of the interactive tree shell.
package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/btree-query-bench/leafchain/index/btree"
	"github.com/btree-query-bench/leafchain/report"
)

const Help = `
Threaded B-tree shell

Available Commands:
  INSERT <key>...  Insert one or more keys
  DELETE <key>...  Delete one or more keys
  SEARCH <key>     Report whether a key is present
  MIN | MAX        Smallest / largest key
  HEIGHT           Levels from root to leaves
  NODES | LEN      Node tally / key count
  LEAVES           Leaf keys collected recursively
  CHAIN            Leaf keys following the leaf chain
  PRE | IN | POST | LEVEL
  DETAIL           Level-by-level node dump
  DOT <file>       Write the tree as a Graphviz DOT file
  CHECK            Validate the tree invariants
  CLEAR            Remove every key
  HELP | EXIT
`

type Shell struct {
	tree    *btree.BTree
	out     io.Writer
	console *report.Console
	log     *zap.Logger
}

func New(tree *btree.BTree, out io.Writer, log *zap.Logger) *Shell {
	return &Shell{tree: tree, out: out, console: report.NewConsole(out), log: log}
}

// Exec runs one command line and reports whether the shell should exit.
func (s *Shell) Exec(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return false
	}
	command, args := strings.ToLower(fields[0]), fields[1:]
	switch command {
	default:
		fmt.Fprintf(s.out, "Unknown command %q\n", command)
	case "help":
		fmt.Fprint(s.out, Help)
	case "exit", "quit":
		return true
	case "insert":
		s.insert(args)
	case "delete":
		s.delete(args)
	case "search":
		s.search(args)
	case "min":
		s.bound(s.tree.Min)
	case "max":
		s.bound(s.tree.Max)
	case "height":
		fmt.Fprintln(s.out, s.tree.Height())
	case "nodes":
		fmt.Fprintln(s.out, s.tree.Nodes())
	case "len":
		fmt.Fprintln(s.out, s.tree.Len())
	case "leaves":
		fmt.Fprintln(s.out, report.JoinKeys(s.tree.LeafKeys()))
	case "chain":
		s.console.Keys("chain", s.tree.LeafChain())
	case "pre":
		s.console.Keys("pre-order", s.tree.PreOrder())
	case "in":
		s.console.Keys("in-order", s.tree.InOrder())
	case "post":
		s.console.Keys("post-order", s.tree.PostOrder())
	case "level":
		s.console.Keys("level-order", s.tree.LevelOrder())
	case "detail":
		s.tree.Report(s.console)
	case "dot":
		s.dot(args)
	case "check":
		if err := s.tree.Validate(); err != nil {
			fmt.Fprintf(s.out, "invalid: %v\n", err)
			return false
		}
		fmt.Fprintln(s.out, "ok")
	case "clear":
		s.tree.Clear()
	}
	return false
}

func (s *Shell) insert(args []string) {
	keys, ok := s.parseKeys("INSERT <key>...", args)
	if !ok {
		return
	}
	for _, k := range keys {
		s.tree.Insert(k)
	}
	s.log.Debug("inserted", zap.Int("count", len(keys)), zap.Int("height", s.tree.Height()))
	s.tree.Report(s.console)
}

func (s *Shell) delete(args []string) {
	keys, ok := s.parseKeys("DELETE <key>...", args)
	if !ok {
		return
	}
	for _, k := range keys {
		if !s.tree.Delete(k) {
			fmt.Fprintf(s.out, "Key %d not found.\n", k)
		}
	}
	s.tree.Report(s.console)
}

func (s *Shell) search(args []string) {
	keys, ok := s.parseKeys("SEARCH <key>", args)
	if !ok {
		return
	}
	if len(keys) != 1 {
		fmt.Fprintln(s.out, "Usage: SEARCH <key>")
		return
	}
	if s.tree.Contains(keys[0]) {
		fmt.Fprintln(s.out, "found")
	} else {
		fmt.Fprintln(s.out, "Key not found.")
	}
}

func (s *Shell) bound(f func() (int64, bool)) {
	k, ok := f()
	if !ok {
		fmt.Fprintln(s.out, "Tree is empty.")
		return
	}
	fmt.Fprintln(s.out, k)
}

func (s *Shell) dot(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: DOT <file>")
		return
	}
	if err := report.ExportDOT(s.tree, args[0]); err != nil {
		s.log.Error("dot export failed", zap.String("path", args[0]), zap.Error(err))
		fmt.Fprintf(s.out, "dot export failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "wrote %s\n", args[0])
}

func (s *Shell) parseKeys(usage string, args []string) ([]int64, bool) {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "Usage: %s\n", usage)
		return nil, false
	}
	keys := make([]int64, 0, len(args))
	for _, a := range args {
		k, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid key %q\n", a)
			return nil, false
		}
		keys = append(keys, k)
	}
	return keys, true
}
