package rdf

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

func xmlEscape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s)) //nolint:errcheck // bytes.Buffer never errors
	return buf.String()
}

// xmlName compacts a predicate IRI to a prefixed XML element name. Unlike
// Turtle there is no long-form fallback: a predicate outside the declared
// namespaces cannot be expressed and fails the conversion.
func xmlName(iri string) (string, error) {
	for _, p := range turtlePrefixes {
		if strings.HasPrefix(iri, p.IRI) {
			return p.Name + ":" + iri[len(p.IRI):], nil
		}
	}
	return "", fmt.Errorf("%w: predicate %s outside declared namespaces", ErrSerialization, iri)
}

// ToRDFXML renders the graph as RDF/XML: one rdf:Description element per
// subject in insertion order, property elements in insertion order, typed
// literals carrying an rdf:datatype attribute. The triple set is preserved
// exactly; no grouping or abbreviation is applied.
func ToRDFXML(g *Graph) (string, error) {
	var b strings.Builder
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, "<rdf:RDF xmlns:rdf=%q xmlns:ont=%q>\n", RDFNS, Base)

	for _, subject := range g.Subjects() {
		fmt.Fprintf(&b, "  <rdf:Description rdf:about=\"%s\">\n", xmlEscape(subject))
		for _, t := range g.TriplesFor(subject) {
			name, err := xmlName(t.Predicate)
			if err != nil {
				return "", err
			}
			o := t.Object
			switch {
			case o.IsResource():
				fmt.Fprintf(&b, "    <%s rdf:resource=\"%s\"/>\n", name, xmlEscape(o.IRI))
			case o.Datatype != "":
				fmt.Fprintf(&b, "    <%s rdf:datatype=\"%s\">%s</%s>\n",
					name, xmlEscape(o.Datatype), xmlEscape(o.Value), name)
			default:
				fmt.Fprintf(&b, "    <%s>%s</%s>\n", name, xmlEscape(o.Value), name)
			}
		}
		b.WriteString("  </rdf:Description>\n")
	}

	b.WriteString("</rdf:RDF>\n")
	return b.String(), nil
}
