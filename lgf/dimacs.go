package lgf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadDIMACS parses a DIMACS max-flow problem into a Document so that it
// can be solved or rewritten as LGF.
//
// Recognized lines:
//
//	c <comment>
//	p max <nodes> <arcs>
//	n <id> s|t
//	a <from> <to> <capacity>
//
// Nodes are labeled 1..nodes as in the input. The capacity column is named
// "capacity"; the terminals are stored as the "source" and "target"
// attributes.
func ReadDIMACS(r io.Reader) (*Document, error) {
	doc := newDocument()
	var capacity []string
	line, arcs := 0, -1

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] == "c" {
			continue
		}
		bad := func(msg string) error {
			return &SyntaxError{Line: line, Msg: msg}
		}

		switch fields[0] {
		case "p":
			if arcs >= 0 {
				return nil, bad("duplicate problem line")
			}
			if len(fields) != 4 || fields[1] != "max" {
				return nil, bad("want \"p max <nodes> <arcs>\"")
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, bad("bad node count")
			}
			m, err := strconv.Atoi(fields[3])
			if err != nil || m < 0 {
				return nil, bad("bad arc count")
			}
			for i := 1; i <= n; i++ {
				doc.addLabel(strconv.Itoa(i))
				doc.Graph.AddNode()
			}
			arcs = m
			capacity = make([]string, 0, m)

		case "n":
			if arcs < 0 {
				return nil, bad("node line before problem line")
			}
			if len(fields) != 3 {
				return nil, bad("want \"n <id> s|t\"")
			}
			if _, err := doc.NodeByLabel(fields[1]); err != nil {
				return nil, fmt.Errorf("lgf: line %d: %w", line, err)
			}
			switch fields[2] {
			case "s":
				doc.Attributes["source"] = fields[1]
			case "t":
				doc.Attributes["target"] = fields[1]
			default:
				return nil, bad("node designator must be s or t")
			}

		case "a":
			if arcs < 0 {
				return nil, bad("arc line before problem line")
			}
			if len(fields) != 4 {
				return nil, bad("want \"a <from> <to> <capacity>\"")
			}
			u, err := doc.NodeByLabel(fields[1])
			if err != nil {
				return nil, fmt.Errorf("lgf: line %d: %w", line, err)
			}
			v, err := doc.NodeByLabel(fields[2])
			if err != nil {
				return nil, fmt.Errorf("lgf: line %d: %w", line, err)
			}
			doc.Graph.MustAddArc(u, v)
			capacity = append(capacity, fields[3])

		default:
			return nil, bad(fmt.Sprintf("unknown line type %q", fields[0]))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lgf: read: %w", err)
	}
	if arcs < 0 {
		return nil, &SyntaxError{Line: line, Msg: "missing problem line"}
	}
	if len(capacity) != arcs {
		return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("problem declares %d arcs, found %d", arcs, len(capacity))}
	}

	doc.NodeMaps[labelColumn] = doc.labels
	doc.ArcMaps["capacity"] = capacity

	return doc, nil
}
