package rdf

import "fmt"

// Base is the namespace IRI for the news ontology vocabulary and for the
// generated instance resources.
const Base = "http://www.semanticweb.org/noticias/ontologia#"

// Standard namespace IRIs.
const (
	RDFNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	XSDNS = "http://www.w3.org/2001/XMLSchema#"
)

// RDFType is the rdf:type predicate.
const RDFType = RDFNS + "type"

// XML-Schema datatype IRIs used for typed literals.
const (
	XSDInteger  = XSDNS + "integer"
	XSDDate     = XSDNS + "date"
	XSDDateTime = XSDNS + "dateTime"
)

// Class IRIs, one per relational table.
const (
	ClassUsuario             = Base + "Usuario"
	ClassPublicacion         = Base + "Publicacion"
	ClassComentario          = Base + "Comentario"
	ClassHistorialNoticia    = Base + "HistorialNoticia"
	ClassLikeNoticia         = Base + "LikeNoticia"
	ClassHistorialComentario = Base + "HistorialComentario"
)

// Object property IRIs (resource-valued edges).
const (
	// PropRealizoComentario links a user to a comment they authored.
	PropRealizoComentario = Base + "realizoComentario"

	// PropLeGusta links a user to a news item they liked.
	PropLeGusta = Base + "leGusta"

	// PropVisualizo links a user to a news item they viewed.
	PropVisualizo = Base + "visualizo"

	// PropComentaSobre links a comment to the news item it was left on.
	PropComentaSobre = Base + "comentaSobre"

	// PropRealizadoPor links an activity row (comment, like, view) back to
	// the user who performed it. Used in the bulk table documents.
	PropRealizadoPor = Base + "realizadoPor"

	// PropSobreNoticia links an activity row to the news item it refers to.
	PropSobreNoticia = Base + "sobreNoticia"

	// PropSobreComentario links a comment-history row to the viewed comment.
	PropSobreComentario = Base + "sobreComentario"
)

// Data property IRIs (literal-valued attributes).
const (
	PropNombre           = Base + "nombre"
	PropCorreo           = Base + "correo"
	PropContrasena       = Base + "contrasena"
	PropDia              = Base + "dia"
	PropMes              = Base + "mes"
	PropAnio             = Base + "anio"
	PropContenido        = Base + "contenido"
	PropFecha            = Base + "fecha"
	PropTitulo           = Base + "titulo"
	PropCategoria        = Base + "categoria"
	PropAutor            = Base + "autor"
	PropFechaPublicacion = Base + "fechaPublicacion"
	PropLikes            = Base + "likes"
	PropFechaVista       = Base + "fechaVista"
	PropFechaLike        = Base + "fechaLike"
)

// Instance IRI constructors. Every instance IRI is the fixed namespace plus
// an entity-kind segment plus the numeric row identifier.

func UsuarioIRI(id int64) string     { return fmt.Sprintf("%susuario%d", Base, id) }
func PublicacionIRI(id int64) string { return fmt.Sprintf("%spublicacion%d", Base, id) }
func ComentarioIRI(id int64) string  { return fmt.Sprintf("%scomentario%d", Base, id) }
func HistorialIRI(id int64) string   { return fmt.Sprintf("%shistorial%d", Base, id) }
func LikeIRI(id int64) string        { return fmt.Sprintf("%slike%d", Base, id) }
func HistorialComentarioIRI(id int64) string {
	return fmt.Sprintf("%shistorialcomentario%d", Base, id)
}
