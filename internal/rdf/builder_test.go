package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semnoticias/backend/internal/model"
)

func fixtureUsuario() *model.Usuario {
	return &model.Usuario{
		ID:         42,
		UserName:   "Ana",
		Correo:     "ana@example.com",
		Contrasena: "$2a$10$hash",
		Dia:        5,
		Mes:        3,
		Anio:       1990,
	}
}

func TestBuildUserGraphFullActivity(t *testing.T) {
	comentarios := []model.Comentario{{
		IDComentarios: 7,
		Contenido:     `Hola "mundo"`,
		FechaComent:   "2024-03-05 10:30:00",
		IDUsuario:     42,
		IDNoticias:    100,
	}}
	likes := []model.LikeNoticia{{ID: 1, IDUsuario: 42, IDNoticia: 100, FechaLike: "2024-03-05 11:00:00"}}
	historial := []model.HistorialNoticia{{ID: 1, FechaVista: "2024-03-05 09:00:00", IDNoticia: 100, IDUsuario: 42}}

	g, err := BuildUserGraph(fixtureUsuario(), comentarios, likes, historial)
	require.NoError(t, err)

	want := "@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .\n" +
		"@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .\n" +
		"@prefix ont: <http://www.semanticweb.org/noticias/ontologia#> .\n" +
		"\n" +
		"ont:usuario42 rdf:type ont:Usuario ;\n" +
		"\tont:nombre \"Ana\" ;\n" +
		"\tont:dia \"5\"^^xsd:integer ;\n" +
		"\tont:mes \"3\"^^xsd:integer ;\n" +
		"\tont:anio \"1990\"^^xsd:integer ;\n" +
		"\tont:realizoComentario ont:comentario7 ;\n" +
		"\tont:leGusta ont:publicacion100 ;\n" +
		"\tont:visualizo ont:publicacion100 .\n" +
		"\n" +
		"ont:comentario7 rdf:type ont:Comentario ;\n" +
		"\tont:contenido \"Hola \\\"mundo\\\"\" ;\n" +
		"\tont:fecha \"2024-03-05T10:30:00\"^^xsd:dateTime ;\n" +
		"\tont:comentaSobre ont:publicacion100 .\n"
	assert.Equal(t, want, ToTurtle(g))
}

func TestBuildUserGraphNoActivity(t *testing.T) {
	g, err := BuildUserGraph(fixtureUsuario(), nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{UsuarioIRI(42)}, g.Subjects())
	assert.Equal(t, 5, g.Len())
}

func TestBuildUserGraphOmitsCredentials(t *testing.T) {
	g, err := BuildUserGraph(fixtureUsuario(), nil, nil, nil)
	require.NoError(t, err)

	turtle := ToTurtle(g)
	assert.NotContains(t, turtle, "correo")
	assert.NotContains(t, turtle, "contrasena")
	assert.NotContains(t, turtle, "$2a$10$hash")
}

func TestBuildUserGraphSkipsZeroBirthFields(t *testing.T) {
	u := &model.Usuario{ID: 9, UserName: "Eva"}
	g, err := BuildUserGraph(u, nil, nil, nil)
	require.NoError(t, err)

	turtle := ToTurtle(g)
	assert.NotContains(t, turtle, "ont:dia")
	assert.NotContains(t, turtle, "ont:mes")
	assert.NotContains(t, turtle, "ont:anio")
}

func TestBuildUserGraphRejectsEmptyContenido(t *testing.T) {
	comentarios := []model.Comentario{{IDComentarios: 3, IDUsuario: 42, IDNoticias: 100}}

	_, err := BuildUserGraph(fixtureUsuario(), comentarios, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestBuildUserGraphRejectsBadFecha(t *testing.T) {
	comentarios := []model.Comentario{{
		IDComentarios: 3,
		Contenido:     "bien",
		FechaComent:   "05/03/2024",
		IDUsuario:     42,
		IDNoticias:    100,
	}}

	_, err := BuildUserGraph(fixtureUsuario(), comentarios, nil, nil)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestBuildUsuariosGraphIncludesCredentials(t *testing.T) {
	g, err := BuildUsuariosGraph([]model.Usuario{*fixtureUsuario()})
	require.NoError(t, err)

	turtle := ToTurtle(g)
	assert.Contains(t, turtle, `ont:correo "ana@example.com"`)
	assert.Contains(t, turtle, `ont:contrasena "$2a$10$hash"`)
}

func TestBuildPublicacionesGraph(t *testing.T) {
	noticias := []model.Noticia{
		{IDNoticias: 100, Titulo: "Eclipse total", Contenido: "Se vio en el norte", Categoria: "ciencia", Autor: "Luis", FechaPublicacion: "2024-04-08 13:00:00", Likes: 12},
		{IDNoticias: 101, Titulo: "Sin likes"},
	}

	g, err := BuildPublicacionesGraph(noticias)
	require.NoError(t, err)

	turtle := ToTurtle(g)
	assert.Contains(t, turtle, `ont:fechaPublicacion "2024-04-08"^^xsd:date`)
	assert.Contains(t, turtle, `ont:likes "12"^^xsd:integer`)
	// The likes counter is emitted even at zero.
	assert.Contains(t, turtle, `ont:likes "0"^^xsd:integer`)
}

func TestBuildComentariosGraphIncludesAutor(t *testing.T) {
	comentarios := []model.Comentario{{
		IDComentarios: 7,
		Contenido:     "Muy bueno",
		FechaComent:   "2024-03-05T10:30:00",
		IDUsuario:     42,
		IDNoticias:    100,
	}}

	g, err := BuildComentariosGraph(comentarios)
	require.NoError(t, err)

	assert.Contains(t, ToTurtle(g), "ont:realizadoPor ont:usuario42")
}

func TestBuildHistorialNoticiasGraph(t *testing.T) {
	historial := []model.HistorialNoticia{{ID: 5, FechaVista: "2024-03-05 09:00:00", IDNoticia: 100, IDUsuario: 42}}

	g, err := BuildHistorialNoticiasGraph(historial)
	require.NoError(t, err)

	turtle := ToTurtle(g)
	assert.Contains(t, turtle, "ont:historial5 rdf:type ont:HistorialNoticia")
	assert.Contains(t, turtle, `ont:fechaVista "2024-03-05T09:00:00"^^xsd:dateTime`)
	assert.Contains(t, turtle, "ont:realizadoPor ont:usuario42")
	assert.Contains(t, turtle, "ont:sobreNoticia ont:publicacion100")
}

func TestBuildLikesGraph(t *testing.T) {
	likes := []model.LikeNoticia{{ID: 2, IDUsuario: 42, IDNoticia: 100, FechaLike: "2024-03-05 11:00:00"}}

	g, err := BuildLikesGraph(likes)
	require.NoError(t, err)

	turtle := ToTurtle(g)
	assert.Contains(t, turtle, "ont:like2 rdf:type ont:LikeNoticia")
	assert.Contains(t, turtle, `ont:fechaLike "2024-03-05T11:00:00"^^xsd:dateTime`)
}

func TestBuildHistorialComentariosGraphOmitsMissingTargets(t *testing.T) {
	historial := []model.HistorialComentario{{ID: 3, FechaVista: "2024-03-06", IDUsuario: 42}}

	g, err := BuildHistorialComentariosGraph(historial)
	require.NoError(t, err)

	turtle := ToTurtle(g)
	assert.Contains(t, turtle, "ont:historialcomentario3 rdf:type ont:HistorialComentario")
	assert.NotContains(t, turtle, "ont:sobreNoticia")
	assert.NotContains(t, turtle, "ont:sobreComentario")
}

func TestNormalizeDateTimeLayouts(t *testing.T) {
	cases := map[string]string{
		"2024-03-05T10:30:00Z": "2024-03-05T10:30:00",
		"2024-03-05T10:30:00":  "2024-03-05T10:30:00",
		"2024-03-05 10:30:00":  "2024-03-05T10:30:00",
		"2024-03-05":           "2024-03-05T00:00:00",
	}
	for in, want := range cases {
		got, err := normalizeDateTime(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := normalizeDateTime("ayer")
	assert.ErrorIs(t, err, ErrMalformedInput)
}
