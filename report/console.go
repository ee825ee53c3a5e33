// Package report renders trees for people: coloured text for terminals and
// Graphviz DOT for pictures. Both consume btree.Reporter callbacks, so the
// tree itself never formats anything.
package report

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/btree-query-bench/leafchain/index/btree"
)

var _ btree.Reporter = (*Console)(nil)

// Console prints one line per node, grouped under a header per level.
type Console struct {
	w        io.Writer
	header   *color.Color
	internal *color.Color
	leaf     *color.Color
	link     *color.Color
}

func NewConsole(w io.Writer) *Console {
	return &Console{
		w:        w,
		header:   color.New(color.FgYellow, color.Bold),
		internal: color.New(color.FgCyan),
		leaf:     color.New(color.FgGreen),
		link:     color.New(color.FgHiBlack),
	}
}

func (c *Console) BeginLevel(level int) {
	c.header.Fprintf(c.w, "Level %d:\n", level)
}

func (c *Console) Node(info btree.NodeInfo) {
	col := c.internal
	if info.Leaf {
		col = c.leaf
	}
	col.Fprintf(c.w, "  #%d [%s]", info.ID, JoinKeys(info.Keys))
	if info.Next >= 0 {
		c.link.Fprintf(c.w, " -> #%d", info.Next)
	}
	fmt.Fprintln(c.w)
}

// Keys prints label followed by every key of seq on one line.
func (c *Console) Keys(label string, seq iter.Seq[int64]) {
	c.header.Fprintf(c.w, "%s:", label)
	for k := range seq {
		fmt.Fprintf(c.w, " %d", k)
	}
	fmt.Fprintln(c.w)
}

func JoinKeys(keys []int64) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.FormatInt(k, 10)
	}
	return strings.Join(parts, " ")
}
