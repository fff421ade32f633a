package lgf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type section int

const (
	sectionNone section = iota
	sectionNodes
	sectionArcs
	sectionAttributes
	sectionSkip
)

// maxLine bounds a single input line; dense generated files have long rows.
const maxLine = 16 << 20

// parser holds the state of one Read call.
type parser struct {
	doc     *Document
	line    int
	section section
	columns []string // header of the current @nodes/@arcs section
	header  bool     // header line seen for the current section
	seen    map[section]bool
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read parses an LGF stream.
//
// Errors:
//   - *SyntaxError (matches ErrSyntax) for malformed lines, rows whose width
//     does not match the header, duplicate labels or sections.
//   - ErrUnknownNode for an arc endpoint that no @nodes row defines.
func Read(r io.Reader) (*Document, error) {
	p := &parser{doc: newDocument(), seen: make(map[section]bool)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		p.line++
		if err := p.handle(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lgf: read: %w", err)
	}
	if p.doc.NodeMaps[labelColumn] == nil {
		p.doc.NodeMaps[labelColumn] = p.doc.labels
	}

	return p.doc, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) handle(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed[0] == '#' {
		return nil
	}
	if trimmed[0] == '@' {
		return p.enter(trimmed)
	}

	tokens, err := tokenize(trimmed)
	if err != nil {
		return p.errorf("%v", err)
	}

	switch p.section {
	case sectionNone:
		return p.errorf("content outside of a section")
	case sectionSkip:
		return nil
	case sectionAttributes:
		return p.attribute(tokens)
	}

	if !p.header {
		p.header = true
		p.columns = tokens
		if err = p.checkColumns(); err != nil {
			return err
		}
		if p.section == sectionNodes {
			for _, c := range p.columns {
				p.doc.NodeMaps[c] = nil
			}
		} else {
			for _, c := range p.columns {
				p.doc.ArcMaps[c] = nil
			}
		}

		return nil
	}
	if p.section == sectionNodes {
		return p.node(tokens)
	}

	return p.arc(tokens)
}

// enter switches to the section named by a '@' line.
func (p *parser) enter(line string) error {
	name := strings.Fields(line)[0]
	next := sectionSkip
	switch name {
	case "@nodes":
		next = sectionNodes
	case "@arcs", "@edges":
		next = sectionArcs
	case "@attributes":
		next = sectionAttributes
	}
	if next != sectionSkip {
		if p.seen[next] {
			return p.errorf("duplicate section %s", name)
		}
		p.seen[next] = true
	}
	if next == sectionArcs && !p.seen[sectionNodes] {
		return p.errorf("%s before @nodes", name)
	}

	p.section = next
	p.columns = nil
	p.header = false

	return nil
}

func (p *parser) checkColumns() error {
	seen := make(map[string]bool, len(p.columns))
	for _, c := range p.columns {
		if seen[c] {
			return p.errorf("duplicate column %q", c)
		}
		seen[c] = true
	}

	return nil
}

func (p *parser) node(tokens []string) error {
	if len(tokens) != len(p.columns) {
		return p.errorf("node row has %d fields, header has %d", len(tokens), len(p.columns))
	}

	label := strconv.Itoa(p.doc.Graph.NodeCount())
	for i, c := range p.columns {
		if c == labelColumn {
			label = tokens[i]
		}
		p.doc.NodeMaps[c] = append(p.doc.NodeMaps[c], tokens[i])
	}
	if !p.doc.addLabel(label) {
		return p.errorf("duplicate node label %q", label)
	}
	p.doc.Graph.AddNode()

	return nil
}

func (p *parser) arc(tokens []string) error {
	if len(tokens) != len(p.columns)+2 {
		return p.errorf("arc row has %d fields, want %d", len(tokens), len(p.columns)+2)
	}

	u, err := p.doc.NodeByLabel(tokens[0])
	if err != nil {
		return fmt.Errorf("lgf: line %d: %w", p.line, err)
	}
	v, err := p.doc.NodeByLabel(tokens[1])
	if err != nil {
		return fmt.Errorf("lgf: line %d: %w", p.line, err)
	}
	p.doc.Graph.MustAddArc(u, v)
	for i, c := range p.columns {
		p.doc.ArcMaps[c] = append(p.doc.ArcMaps[c], tokens[i+2])
	}

	return nil
}

func (p *parser) attribute(tokens []string) error {
	if len(tokens) != 2 {
		return p.errorf("attribute row has %d fields, want 2", len(tokens))
	}
	if _, dup := p.doc.Attributes[tokens[0]]; dup {
		return p.errorf("duplicate attribute %q", tokens[0])
	}
	p.doc.Attributes[tokens[0]] = tokens[1]

	return nil
}

// tokenize splits a line on blanks, honoring double-quoted tokens.
func tokenize(line string) ([]string, error) {
	var tokens []string
	for i := 0; i < len(line); {
		c := line[i]
		if c == ' ' || c == '\t' {
			i++
			continue
		}
		if c != '"' {
			j := i
			for j < len(line) && line[j] != ' ' && line[j] != '\t' {
				j++
			}
			tokens = append(tokens, line[i:j])
			i = j
			continue
		}

		j := i + 1
		for ; j < len(line); j++ {
			if line[j] == '\\' {
				j++
				continue
			}
			if line[j] == '"' {
				break
			}
		}
		if j >= len(line) {
			return nil, fmt.Errorf("unterminated quoted token")
		}
		tok, err := strconv.Unquote(line[i : j+1])
		if err != nil {
			return nil, fmt.Errorf("bad quoted token %s", line[i:j+1])
		}
		tokens = append(tokens, tok)
		i = j + 1
	}

	return tokens, nil
}
