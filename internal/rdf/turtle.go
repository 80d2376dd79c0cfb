package rdf

import (
	"fmt"
	"strings"
)

// Prefixes emitted at the top of every Turtle document, in fixed order.
var turtlePrefixes = []struct {
	Name string
	IRI  string
}{
	{"rdf", RDFNS},
	{"xsd", XSDNS},
	{"ont", Base},
}

// qname compacts an IRI against the declared prefixes, falling back to the
// <...> form for anything outside them.
func qname(iri string) string {
	for _, p := range turtlePrefixes {
		if strings.HasPrefix(iri, p.IRI) {
			return p.Name + ":" + iri[len(p.IRI):]
		}
	}
	return "<" + iri + ">"
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeLiteral(s string) string { return literalEscaper.Replace(s) }

func turtleObject(o Object) string {
	if o.IsResource() {
		return qname(o.IRI)
	}
	lit := `"` + escapeLiteral(o.Value) + `"`
	if o.Datatype != "" {
		lit += "^^" + qname(o.Datatype)
	}
	return lit
}

// ToTurtle renders the graph as Turtle: the fixed prefix declarations, then
// one block per subject in insertion order, predicate lines joined with ` ;`
// and each block closed with ` .`.
func ToTurtle(g *Graph) string {
	var b strings.Builder
	for _, p := range turtlePrefixes {
		fmt.Fprintf(&b, "@prefix %s: <%s> .\n", p.Name, p.IRI)
	}

	for _, subject := range g.Subjects() {
		b.WriteString("\n")
		b.WriteString(qname(subject))
		for i, t := range g.TriplesFor(subject) {
			if i > 0 {
				b.WriteString(" ;\n\t")
			} else {
				b.WriteString(" ")
			}
			b.WriteString(qname(t.Predicate))
			b.WriteString(" ")
			b.WriteString(turtleObject(t.Object))
		}
		b.WriteString(" .\n")
	}
	return b.String()
}

// ParseTurtle re-parses a document produced by ToTurtle. It covers exactly
// the emitted subset of the syntax (prefix declarations, prefixed names,
// <...> IRIs, quoted literals with escapes and optional ^^datatype) and is
// the validity gate before RDF/XML conversion: if this fails, the generated
// document is malformed and the whole run is aborted.
func ParseTurtle(text string) ([]Triple, error) {
	p := &turtleParser{input: text, prefixes: map[string]string{}}
	var triples []Triple

	for {
		p.skipSpace()
		if p.done() {
			return triples, nil
		}
		if strings.HasPrefix(p.rest(), "@prefix") {
			if err := p.parsePrefix(); err != nil {
				return nil, err
			}
			continue
		}

		subject, err := p.parseIRI()
		if err != nil {
			return nil, fmt.Errorf("subject: %w", err)
		}
		for {
			p.skipSpace()
			predicate, err := p.parseIRI()
			if err != nil {
				return nil, fmt.Errorf("predicate of %s: %w", subject, err)
			}
			p.skipSpace()
			object, err := p.parseObject()
			if err != nil {
				return nil, fmt.Errorf("object of %s: %w", subject, err)
			}
			triples = append(triples, Triple{Subject: subject, Predicate: predicate, Object: object})

			p.skipSpace()
			sep, err := p.next()
			if err != nil {
				return nil, err
			}
			if sep == '.' {
				break
			}
			if sep != ';' {
				return nil, fmt.Errorf("unexpected %q after object of %s", sep, subject)
			}
		}
	}
}

type turtleParser struct {
	input    string
	pos      int
	prefixes map[string]string
}

func (p *turtleParser) done() bool   { return p.pos >= len(p.input) }
func (p *turtleParser) rest() string { return p.input[p.pos:] }
func (p *turtleParser) peek() byte   { return p.input[p.pos] }

func (p *turtleParser) next() (byte, error) {
	if p.done() {
		return 0, fmt.Errorf("unexpected end of document")
	}
	c := p.input[p.pos]
	p.pos++
	return c, nil
}

func (p *turtleParser) skipSpace() {
	for !p.done() {
		switch p.peek() {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *turtleParser) parsePrefix() error {
	p.pos += len("@prefix")
	p.skipSpace()

	colon := strings.IndexByte(p.rest(), ':')
	if colon < 0 {
		return fmt.Errorf("@prefix without name")
	}
	name := p.rest()[:colon]
	p.pos += colon + 1

	p.skipSpace()
	iri, err := p.parseBracketedIRI()
	if err != nil {
		return fmt.Errorf("@prefix %s: %w", name, err)
	}
	p.prefixes[name] = iri

	p.skipSpace()
	c, err := p.next()
	if err != nil {
		return err
	}
	if c != '.' {
		return fmt.Errorf("@prefix %s not terminated", name)
	}
	return nil
}

func (p *turtleParser) parseBracketedIRI() (string, error) {
	c, err := p.next()
	if err != nil {
		return "", err
	}
	if c != '<' {
		return "", fmt.Errorf("expected '<', got %q", c)
	}
	end := strings.IndexByte(p.rest(), '>')
	if end < 0 {
		return "", fmt.Errorf("unterminated IRI")
	}
	iri := p.rest()[:end]
	p.pos += end + 1
	return iri, nil
}

// parseIRI reads either a <...> IRI or a prefixed name and returns the
// expanded IRI.
func (p *turtleParser) parseIRI() (string, error) {
	if p.done() {
		return "", fmt.Errorf("unexpected end of document")
	}
	if p.peek() == '<' {
		return p.parseBracketedIRI()
	}

	start := p.pos
	for !p.done() {
		c := p.peek()
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ';' {
			break
		}
		p.pos++
	}
	token := p.input[start:p.pos]
	colon := strings.IndexByte(token, ':')
	if colon < 0 {
		return "", fmt.Errorf("expected prefixed name, got %q", token)
	}
	ns, ok := p.prefixes[token[:colon]]
	if !ok {
		return "", fmt.Errorf("undeclared prefix %q", token[:colon])
	}
	return ns + token[colon+1:], nil
}

func (p *turtleParser) parseObject() (Object, error) {
	if p.done() {
		return Object{}, fmt.Errorf("unexpected end of document")
	}
	if p.peek() != '"' {
		iri, err := p.parseIRI()
		if err != nil {
			return Object{}, err
		}
		return Resource(iri), nil
	}

	p.pos++ // opening quote
	var b strings.Builder
	for {
		c, err := p.next()
		if err != nil {
			return Object{}, fmt.Errorf("unterminated literal")
		}
		if c == '"' {
			break
		}
		if c == '\n' || c == '\r' {
			return Object{}, fmt.Errorf("raw newline in literal")
		}
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		esc, err := p.next()
		if err != nil {
			return Object{}, fmt.Errorf("unterminated escape in literal")
		}
		switch esc {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			return Object{}, fmt.Errorf("unknown escape \\%c in literal", esc)
		}
	}

	if strings.HasPrefix(p.rest(), "^^") {
		p.pos += 2
		datatype, err := p.parseIRI()
		if err != nil {
			return Object{}, fmt.Errorf("datatype: %w", err)
		}
		return TypedLiteral(b.String(), datatype), nil
	}
	return Literal(b.String()), nil
}
