package rdf

import (
	"fmt"
	"strconv"
	"time"

	"github.com/semnoticias/backend/internal/model"
)

// Accepted layouts for date values coming out of the relational store. The
// stored text is not guaranteed to be ISO-8601, so the builder normalizes at
// its boundary instead of embedding the raw value under an XSD datatype tag.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseFecha(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized fecha %q", ErrMalformedInput, s)
}

func normalizeDateTime(s string) (string, error) {
	t, err := parseFecha(s)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02T15:04:05"), nil
}

func normalizeDate(s string) (string, error) {
	t, err := parseFecha(s)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}

func intLiteral(v int64) Object {
	return TypedLiteral(strconv.FormatInt(v, 10), XSDInteger)
}

// BuildUserGraph assembles the dynamic per-user activity graph: one user
// block followed by one block per authored comment. Correo and contrasena
// are deliberately left out of this variant; they only appear in the bulk
// usuarios document.
func BuildUserGraph(u *model.Usuario, comentarios []model.Comentario, likes []model.LikeNoticia, historial []model.HistorialNoticia) (*Graph, error) {
	g := NewGraph()
	subject := UsuarioIRI(u.ID)

	g.Add(subject, RDFType, Resource(ClassUsuario))
	if u.UserName != "" {
		g.Add(subject, PropNombre, Literal(u.UserName))
	}
	if u.Dia > 0 {
		g.Add(subject, PropDia, intLiteral(u.Dia))
	}
	if u.Mes > 0 {
		g.Add(subject, PropMes, intLiteral(u.Mes))
	}
	if u.Anio > 0 {
		g.Add(subject, PropAnio, intLiteral(u.Anio))
	}

	for _, c := range comentarios {
		g.Add(subject, PropRealizoComentario, Resource(ComentarioIRI(c.IDComentarios)))
	}
	for _, l := range likes {
		g.Add(subject, PropLeGusta, Resource(PublicacionIRI(l.IDNoticia)))
	}
	for _, h := range historial {
		g.Add(subject, PropVisualizo, Resource(PublicacionIRI(h.IDNoticia)))
	}

	for _, c := range comentarios {
		if err := appendComentario(g, c, false); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// appendComentario emits one comment block. withAutor additionally embeds
// the author foreign-key IRI, which the bulk document needs and the per-user
// document already expresses as a realizoComentario edge.
func appendComentario(g *Graph, c model.Comentario, withAutor bool) error {
	if c.Contenido == "" {
		return fmt.Errorf("%w: comentario %d has no contenido", ErrMalformedInput, c.IDComentarios)
	}
	subject := ComentarioIRI(c.IDComentarios)
	g.Add(subject, RDFType, Resource(ClassComentario))
	g.Add(subject, PropContenido, Literal(c.Contenido))
	if c.FechaComent != "" {
		fecha, err := normalizeDateTime(c.FechaComent)
		if err != nil {
			return fmt.Errorf("comentario %d: %w", c.IDComentarios, err)
		}
		g.Add(subject, PropFecha, TypedLiteral(fecha, XSDDateTime))
	}
	if withAutor {
		g.Add(subject, PropRealizadoPor, Resource(UsuarioIRI(c.IDUsuario)))
	}
	g.Add(subject, PropComentaSobre, Resource(PublicacionIRI(c.IDNoticias)))
	return nil
}

// BuildUsuariosGraph is the bulk builder for the usuario table. Unlike the
// per-user variant it includes correo and the stored password hash.
func BuildUsuariosGraph(usuarios []model.Usuario) (*Graph, error) {
	g := NewGraph()
	for _, u := range usuarios {
		subject := UsuarioIRI(u.ID)
		g.Add(subject, RDFType, Resource(ClassUsuario))
		if u.UserName != "" {
			g.Add(subject, PropNombre, Literal(u.UserName))
		}
		if u.Correo != "" {
			g.Add(subject, PropCorreo, Literal(u.Correo))
		}
		if u.Contrasena != "" {
			g.Add(subject, PropContrasena, Literal(u.Contrasena))
		}
		if u.Dia > 0 {
			g.Add(subject, PropDia, intLiteral(u.Dia))
		}
		if u.Mes > 0 {
			g.Add(subject, PropMes, intLiteral(u.Mes))
		}
		if u.Anio > 0 {
			g.Add(subject, PropAnio, intLiteral(u.Anio))
		}
	}
	return g, nil
}

// BuildPublicacionesGraph is the bulk builder for the noticias table.
func BuildPublicacionesGraph(noticias []model.Noticia) (*Graph, error) {
	g := NewGraph()
	for _, n := range noticias {
		subject := PublicacionIRI(n.IDNoticias)
		g.Add(subject, RDFType, Resource(ClassPublicacion))
		if n.Titulo != "" {
			g.Add(subject, PropTitulo, Literal(n.Titulo))
		}
		if n.Contenido != "" {
			g.Add(subject, PropContenido, Literal(n.Contenido))
		}
		if n.Categoria != "" {
			g.Add(subject, PropCategoria, Literal(n.Categoria))
		}
		if n.Autor != "" {
			g.Add(subject, PropAutor, Literal(n.Autor))
		}
		if n.FechaPublicacion != "" {
			fecha, err := normalizeDate(n.FechaPublicacion)
			if err != nil {
				return nil, fmt.Errorf("noticia %d: %w", n.IDNoticias, err)
			}
			g.Add(subject, PropFechaPublicacion, TypedLiteral(fecha, XSDDate))
		}
		g.Add(subject, PropLikes, intLiteral(n.Likes))
	}
	return g, nil
}

// BuildComentariosGraph is the bulk builder for the comentarios table.
func BuildComentariosGraph(comentarios []model.Comentario) (*Graph, error) {
	g := NewGraph()
	for _, c := range comentarios {
		if err := appendComentario(g, c, true); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// BuildHistorialNoticiasGraph is the bulk builder for the historialnoticias
// table.
func BuildHistorialNoticiasGraph(historial []model.HistorialNoticia) (*Graph, error) {
	g := NewGraph()
	for _, h := range historial {
		subject := HistorialIRI(h.ID)
		g.Add(subject, RDFType, Resource(ClassHistorialNoticia))
		if h.FechaVista != "" {
			fecha, err := normalizeDateTime(h.FechaVista)
			if err != nil {
				return nil, fmt.Errorf("historial %d: %w", h.ID, err)
			}
			g.Add(subject, PropFechaVista, TypedLiteral(fecha, XSDDateTime))
		}
		g.Add(subject, PropRealizadoPor, Resource(UsuarioIRI(h.IDUsuario)))
		g.Add(subject, PropSobreNoticia, Resource(PublicacionIRI(h.IDNoticia)))
	}
	return g, nil
}

// BuildLikesGraph is the bulk builder for the likes_noticias table. Rows are
// rendered as returned; uniqueness per (usuario, noticia) is the store's
// concern.
func BuildLikesGraph(likes []model.LikeNoticia) (*Graph, error) {
	g := NewGraph()
	for _, l := range likes {
		subject := LikeIRI(l.ID)
		g.Add(subject, RDFType, Resource(ClassLikeNoticia))
		if l.FechaLike != "" {
			fecha, err := normalizeDateTime(l.FechaLike)
			if err != nil {
				return nil, fmt.Errorf("like %d: %w", l.ID, err)
			}
			g.Add(subject, PropFechaLike, TypedLiteral(fecha, XSDDateTime))
		}
		g.Add(subject, PropRealizadoPor, Resource(UsuarioIRI(l.IDUsuario)))
		g.Add(subject, PropSobreNoticia, Resource(PublicacionIRI(l.IDNoticia)))
	}
	return g, nil
}

// BuildHistorialComentariosGraph is the bulk builder for the
// historialcomentarios table.
func BuildHistorialComentariosGraph(historial []model.HistorialComentario) (*Graph, error) {
	g := NewGraph()
	for _, h := range historial {
		subject := HistorialComentarioIRI(h.ID)
		g.Add(subject, RDFType, Resource(ClassHistorialComentario))
		if h.FechaVista != "" {
			fecha, err := normalizeDateTime(h.FechaVista)
			if err != nil {
				return nil, fmt.Errorf("historialcomentario %d: %w", h.ID, err)
			}
			g.Add(subject, PropFechaVista, TypedLiteral(fecha, XSDDateTime))
		}
		g.Add(subject, PropRealizadoPor, Resource(UsuarioIRI(h.IDUsuario)))
		if h.IDNoticia > 0 {
			g.Add(subject, PropSobreNoticia, Resource(PublicacionIRI(h.IDNoticia)))
		}
		if h.IDComentario > 0 {
			g.Add(subject, PropSobreComentario, Resource(ComentarioIRI(h.IDComentario)))
		}
	}
	return g, nil
}
