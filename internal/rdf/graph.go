package rdf

// Object is the object position of a triple: either a resource reference
// (IRI set) or a literal (Value set, optionally tagged with a datatype IRI).
type Object struct {
	IRI      string
	Value    string
	Datatype string
}

// IsResource reports whether the object is a resource reference.
func (o Object) IsResource() bool { return o.IRI != "" }

// Resource returns a resource-reference object.
func Resource(iri string) Object { return Object{IRI: iri} }

// Literal returns a plain string literal object.
func Literal(value string) Object { return Object{Value: value} }

// TypedLiteral returns a literal tagged with an XML-Schema datatype IRI.
func TypedLiteral(value, datatype string) Object {
	return Object{Value: value, Datatype: datatype}
}

// Triple is one subject-predicate-object statement.
type Triple struct {
	Subject   string
	Predicate string
	Object    Object
}

// Graph is an insertion-ordered collection of triples. Insertion order is
// significant: the serializers emit subjects and predicates in the order
// they were added, which keeps regeneration byte-identical for unchanged
// input data.
type Graph struct {
	triples []Triple
}

// NewGraph returns an empty graph.
func NewGraph() *Graph { return &Graph{} }

// Add appends one triple to the graph.
func (g *Graph) Add(subject, predicate string, object Object) {
	g.triples = append(g.triples, Triple{Subject: subject, Predicate: predicate, Object: object})
}

// Triples returns the triples in insertion order.
func (g *Graph) Triples() []Triple { return g.triples }

// Len returns the number of triples.
func (g *Graph) Len() int { return len(g.triples) }

// Subjects returns the distinct subject IRIs in first-insertion order.
func (g *Graph) Subjects() []string {
	seen := make(map[string]bool, len(g.triples))
	var subjects []string
	for _, t := range g.triples {
		if !seen[t.Subject] {
			seen[t.Subject] = true
			subjects = append(subjects, t.Subject)
		}
	}
	return subjects
}

// TriplesFor returns the triples with the given subject, in insertion order.
func (g *Graph) TriplesFor(subject string) []Triple {
	var out []Triple
	for _, t := range g.triples {
		if t.Subject == subject {
			out = append(out, t)
		}
	}
	return out
}
