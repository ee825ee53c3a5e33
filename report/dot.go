package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"

	"github.com/btree-query-bench/leafchain/index/btree"
)

var _ btree.Reporter = (*DOT)(nil)

// DOT buffers a level-order walk and writes it as a Graphviz digraph, with
// solid parent edges and dashed leaf-chain edges.
type DOT struct {
	levels [][]btree.NodeInfo
}

func (d *DOT) BeginLevel(level int) {
	d.levels = append(d.levels, nil)
}

func (d *DOT) Node(info btree.NodeInfo) {
	last := len(d.levels) - 1
	d.levels[last] = append(d.levels[last], info)
}

// WriteTo writes the buffered tree as a DOT graph.
func (d *DOT) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	fmt.Fprintln(cw, "digraph BTree {")
	fmt.Fprintln(cw, "  graph [ranksep=0.8, nodesep=0.5, bgcolor=\"#ffffff\", rankdir=TB];")
	fmt.Fprintln(cw, "  node [shape=none, fontname=\"Helvetica\", fontsize=10];")
	fmt.Fprintln(cw, "  edge [arrowsize=0.8, color=\"#444444\"];")

	for _, level := range d.levels {
		for _, info := range level {
			header, bg := "INTERNAL", "#DAE8FC"
			if info.Leaf {
				header, bg = "LEAF", "#D5E8D4"
			}
			fmt.Fprintf(cw, "  node%d [label=<<TABLE BORDER=\"0\" CELLBORDER=\"1\" CELLSPACING=\"0\" CELLPADDING=\"4\">"+
				"<TR><TD BGCOLOR=\"%s\"><B>#%d %s</B></TD></TR>"+
				"<TR><TD BGCOLOR=\"#F5F5F5\">%s</TD></TR></TABLE>>];\n",
				info.ID, bg, info.ID, header, JoinKeys(info.Keys))
			if info.Parent >= 0 {
				fmt.Fprintf(cw, "  node%d -> node%d;\n", info.Parent, info.ID)
			}
		}
	}

	// Leaves share the bottom rank; the chain runs along it.
	if n := len(d.levels); n > 0 && len(d.levels[n-1]) > 1 {
		fmt.Fprint(cw, "  { rank=same;")
		for _, info := range d.levels[n-1] {
			fmt.Fprintf(cw, " node%d;", info.ID)
		}
		fmt.Fprintln(cw, " }")
	}
	for _, level := range d.levels {
		for _, info := range level {
			if info.Leaf && info.Next >= 0 {
				fmt.Fprintf(cw, "  node%d -> node%d [style=dashed, color=\"#03A9F4\", constraint=false];\n", info.ID, info.Next)
			}
		}
	}
	fmt.Fprintln(cw, "}")

	if cw.err != nil {
		return cw.n, errors.Wrap(cw.err, "dot: write")
	}
	if err := cw.w.Flush(); err != nil {
		return cw.n, errors.Wrap(err, "dot: flush")
	}
	return cw.n, nil
}

// ExportDOT writes tree as a DOT file at path.
func ExportDOT(tree *btree.BTree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "dot: create %s", path)
	}
	defer f.Close()

	var d DOT
	tree.Report(&d)
	if _, err := d.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}

// Render runs Graphviz to turn a DOT file into a PNG.
func Render(dotPath, pngPath string) error {
	cmd := exec.Command("dot", "-Tpng", dotPath, "-o", pngPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "graphviz: %s", out)
	}
	return nil
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
