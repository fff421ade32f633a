package lgf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/preflow/core"
)

// WriteFile writes doc to path, creating or truncating it.
func WriteFile(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(f, doc); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Write serializes doc. The label column comes first in @nodes and @arcs;
// remaining columns and attributes are written in name order so the output
// is stable. Arcs without a label column are labeled by arc ID, so the
// @arcs header is never empty.
func Write(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	g := doc.Graph

	nodeCols := columnOrder(doc.NodeMaps)
	if len(nodeCols) == 0 || nodeCols[0] != labelColumn {
		nodeCols = append([]string{labelColumn}, nodeCols...)
	}
	fmt.Fprintln(bw, "@nodes")
	fmt.Fprintln(bw, strings.Join(nodeCols, "\t"))
	for n := 0; n < g.NodeCount(); n++ {
		row := make([]string, len(nodeCols))
		for i, c := range nodeCols {
			if c == labelColumn {
				row[i] = quote(doc.labels[n])
				continue
			}
			row[i] = quote(doc.NodeMaps[c][n])
		}
		fmt.Fprintln(bw, strings.Join(row, "\t"))
	}

	arcCols := columnOrder(doc.ArcMaps)
	arcLabels := len(arcCols) == 0 || arcCols[0] != labelColumn
	if arcLabels {
		arcCols = append([]string{labelColumn}, arcCols...)
	}
	fmt.Fprintln(bw, "@arcs")
	fmt.Fprintln(bw, "\t\t"+strings.Join(arcCols, "\t"))
	for a := 0; a < g.ArcCount(); a++ {
		u, v, err := g.Endpoints(core.Arc(a))
		if err != nil {
			return err
		}
		row := make([]string, 0, len(arcCols)+2)
		row = append(row, quote(doc.labels[u]), quote(doc.labels[v]))
		for _, c := range arcCols {
			if c == labelColumn && arcLabels {
				row = append(row, strconv.Itoa(a))
				continue
			}
			row = append(row, quote(doc.ArcMaps[c][a]))
		}
		fmt.Fprintln(bw, strings.Join(row, "\t"))
	}

	if len(doc.Attributes) > 0 {
		keys := make([]string, 0, len(doc.Attributes))
		for k := range doc.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(bw, "@attributes")
		for _, k := range keys {
			fmt.Fprintf(bw, "%s %s\n", quote(k), quote(doc.Attributes[k]))
		}
	}

	return bw.Flush()
}

// columnOrder lists map names with the label column first, the rest sorted.
func columnOrder(maps map[string][]string) []string {
	cols := make([]string, 0, len(maps))
	hasLabel := false
	for c := range maps {
		if c == labelColumn {
			hasLabel = true
			continue
		}
		cols = append(cols, c)
	}
	sort.Strings(cols)
	if hasLabel {
		cols = append([]string{labelColumn}, cols...)
	}

	return cols
}

// quote returns s unchanged when it reads back as a single plain token.
func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\r\n\"\\") || s[0] == '#' || s[0] == '@' {
		return strconv.Quote(s)
	}

	return s
}
