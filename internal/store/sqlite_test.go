package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semnoticias/backend/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedUsuario(t *testing.T, s *SQLiteStore) int64 {
	t.Helper()
	id, err := s.CreateUsuario(context.Background(), &model.Usuario{
		UserName:   "Ana",
		Correo:     "ana@example.com",
		Contrasena: "$2a$10$hash",
		Dia:        5,
		Mes:        3,
		Anio:       1990,
	})
	require.NoError(t, err)
	return id
}

func seedNoticia(t *testing.T, s *SQLiteStore) int64 {
	t.Helper()
	id, err := s.CreateNoticia(context.Background(), &model.Noticia{
		Titulo:           "Eclipse total",
		Contenido:        "Se vio en el norte",
		Categoria:        "ciencia",
		Autor:            "Luis",
		FechaPublicacion: "2024-04-08 13:00:00",
		Tags:             "astronomia,eclipse",
	})
	require.NoError(t, err)
	return id
}

func TestCreateAndGetUsuario(t *testing.T) {
	s := newTestStore(t)
	id := seedUsuario(t, s)

	u, err := s.GetUsuarioByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Ana", u.UserName)
	assert.Equal(t, int64(1990), u.Anio)

	byCorreo, err := s.GetUsuarioByCorreo(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, byCorreo)
	assert.Equal(t, id, byCorreo.ID)
}

func TestGetUsuarioNotFound(t *testing.T) {
	s := newTestStore(t)

	u, err := s.GetUsuarioByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, u)

	byCorreo, err := s.GetUsuarioByCorreo(context.Background(), "nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, byCorreo)
}

func TestCreateUsuarioDuplicateCorreo(t *testing.T) {
	s := newTestStore(t)
	seedUsuario(t, s)

	_, err := s.CreateUsuario(context.Background(), &model.Usuario{
		UserName:   "Otra",
		Correo:     "ana@example.com",
		Contrasena: "x",
	})
	assert.Error(t, err)
}

func TestUsuarioNullBirthFields(t *testing.T) {
	s := newTestStore(t)
	id, err := s.CreateUsuario(context.Background(), &model.Usuario{
		UserName:   "Eva",
		Correo:     "eva@example.com",
		Contrasena: "x",
	})
	require.NoError(t, err)

	u, err := s.GetUsuarioByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Zero(t, u.Dia)
	assert.Zero(t, u.Mes)
	assert.Zero(t, u.Anio)
}

func TestNoticiaCRUDAndSearch(t *testing.T) {
	s := newTestStore(t)
	id := seedNoticia(t, s)

	n, err := s.GetNoticia(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "Eclipse total", n.Titulo)
	assert.Zero(t, n.Likes)

	all, err := s.ListNoticias(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)

	found, err := s.SearchNoticiasByTag(context.Background(), "eclipse")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	none, err := s.SearchNoticiasByTag(context.Background(), "deportes")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestComentarios(t *testing.T) {
	s := newTestStore(t)
	idUsuario := seedUsuario(t, s)
	idNoticia := seedNoticia(t, s)

	idComentario, err := s.CreateComentario(context.Background(), &model.Comentario{
		Contenido:   "Muy bueno",
		FechaComent: "2024-04-08 14:00:00",
		IDUsuario:   idUsuario,
		IDNoticias:  idNoticia,
	})
	require.NoError(t, err)

	porUsuario, err := s.GetComentariosByUsuario(context.Background(), idUsuario)
	require.NoError(t, err)
	require.Len(t, porUsuario, 1)
	assert.Equal(t, idComentario, porUsuario[0].IDComentarios)
	assert.Equal(t, "Muy bueno", porUsuario[0].Contenido)

	porNoticia, err := s.GetComentariosByNoticia(context.Background(), idNoticia)
	require.NoError(t, err)
	require.Len(t, porNoticia, 1)
	assert.Equal(t, "Ana", porNoticia[0].UserName)
}

func TestHistorialNoticiaDedupPerDay(t *testing.T) {
	s := newTestStore(t)
	idUsuario := seedUsuario(t, s)
	idNoticia := seedNoticia(t, s)

	exists, err := s.HasHistorialNoticiaOnDate(context.Background(), idUsuario, idNoticia, "2024-04-08 09:00:00")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.CreateHistorialNoticia(context.Background(), &model.HistorialNoticia{
		FechaVista: "2024-04-08 09:00:00",
		IDNoticia:  idNoticia,
		IDUsuario:  idUsuario,
	})
	require.NoError(t, err)

	// Same calendar day at a different hour still counts as seen.
	exists, err = s.HasHistorialNoticiaOnDate(context.Background(), idUsuario, idNoticia, "2024-04-08 23:30:00")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.HasHistorialNoticiaOnDate(context.Background(), idUsuario, idNoticia, "2024-04-09 09:00:00")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestHistorialNoticiasDetalle(t *testing.T) {
	s := newTestStore(t)
	idUsuario := seedUsuario(t, s)
	idNoticia := seedNoticia(t, s)

	_, err := s.CreateHistorialNoticia(context.Background(), &model.HistorialNoticia{
		FechaVista: "2024-04-08 09:00:00",
		IDNoticia:  idNoticia,
		IDUsuario:  idUsuario,
	})
	require.NoError(t, err)

	detalle, err := s.GetHistorialNoticiasDetalle(context.Background(), idUsuario)
	require.NoError(t, err)
	require.Len(t, detalle, 1)
	assert.Equal(t, "Eclipse total", detalle[0].Titulo)
	assert.Equal(t, idNoticia, detalle[0].IDNoticias)
}

func TestLikeLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	idUsuario := seedUsuario(t, s)
	idNoticia := seedNoticia(t, s)

	exists, err := s.HasLike(ctx, idUsuario, idNoticia)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.CreateLike(ctx, idUsuario, idNoticia, "2024-04-08 10:00:00"))

	exists, err = s.HasLike(ctx, idUsuario, idNoticia)
	require.NoError(t, err)
	assert.True(t, exists)

	// The denormalized counter on the noticia moves with the like.
	n, err := s.GetNoticia(ctx, idNoticia)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n.Likes)

	deleted, err := s.DeleteLike(ctx, idUsuario, idNoticia)
	require.NoError(t, err)
	assert.True(t, deleted)

	n, err = s.GetNoticia(ctx, idNoticia)
	require.NoError(t, err)
	assert.Zero(t, n.Likes)

	deleted, err = s.DeleteLike(ctx, idUsuario, idNoticia)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDuplicateLikeRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	idUsuario := seedUsuario(t, s)
	idNoticia := seedNoticia(t, s)

	require.NoError(t, s.CreateLike(ctx, idUsuario, idNoticia, "2024-04-08 10:00:00"))
	err := s.CreateLike(ctx, idUsuario, idNoticia, "2024-04-08 11:00:00")
	assert.Error(t, err)

	// The failed insert must not bump the counter.
	n, err := s.GetNoticia(ctx, idNoticia)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n.Likes)
}

func TestHistorialComentarios(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	idUsuario := seedUsuario(t, s)
	idNoticia := seedNoticia(t, s)

	idComentario, err := s.CreateComentario(ctx, &model.Comentario{
		Contenido:  "Muy bueno",
		IDUsuario:  idUsuario,
		IDNoticias: idNoticia,
	})
	require.NoError(t, err)

	_, err = s.CreateHistorialComentario(ctx, &model.HistorialComentario{
		FechaVista:   "2024-04-08 12:00:00",
		IDNoticia:    idNoticia,
		IDUsuario:    idUsuario,
		IDComentario: idComentario,
	})
	require.NoError(t, err)

	detalle, err := s.GetHistorialComentariosDetalle(ctx, idUsuario)
	require.NoError(t, err)
	require.Len(t, detalle, 1)
	assert.Equal(t, "Muy bueno", detalle[0].Contenido)
	assert.Equal(t, "Eclipse total", detalle[0].Titulo)

	all, err := s.ListHistorialComentarios(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestHistorialComentarioNullTargets(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	idUsuario := seedUsuario(t, s)

	_, err := s.CreateHistorialComentario(ctx, &model.HistorialComentario{
		FechaVista: "2024-04-08 12:00:00",
		IDUsuario:  idUsuario,
	})
	require.NoError(t, err)

	all, err := s.ListHistorialComentarios(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Zero(t, all[0].IDNoticia)
	assert.Zero(t, all[0].IDComentario)

	detalle, err := s.GetHistorialComentariosDetalle(ctx, idUsuario)
	require.NoError(t, err)
	require.Len(t, detalle, 1)
	assert.Empty(t, detalle[0].Contenido)
	assert.Empty(t, detalle[0].Titulo)
}
