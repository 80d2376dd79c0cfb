package rdf

import (
	"context"

	"github.com/semnoticias/backend/internal/model"
)

type fakeGateway struct {
	Usuario              *model.Usuario
	Comentarios          []model.Comentario
	Likes                []model.LikeNoticia
	Historial            []model.HistorialNoticia
	Usuarios             []model.Usuario
	Noticias             []model.Noticia
	HistorialComentarios []model.HistorialComentario
	Err                  error
}

func (f *fakeGateway) GetUsuarioByID(ctx context.Context, id int64) (*model.Usuario, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Usuario == nil || f.Usuario.ID != id {
		return nil, nil
	}
	return f.Usuario, nil
}

func (f *fakeGateway) GetComentariosByUsuario(ctx context.Context, id int64) ([]model.Comentario, error) {
	return f.Comentarios, f.Err
}

func (f *fakeGateway) GetLikesByUsuario(ctx context.Context, id int64) ([]model.LikeNoticia, error) {
	return f.Likes, f.Err
}

func (f *fakeGateway) GetHistorialNoticiasByUsuario(ctx context.Context, id int64) ([]model.HistorialNoticia, error) {
	return f.Historial, f.Err
}

func (f *fakeGateway) ListUsuarios(ctx context.Context) ([]model.Usuario, error) {
	return f.Usuarios, f.Err
}

func (f *fakeGateway) ListNoticias(ctx context.Context) ([]model.Noticia, error) {
	return f.Noticias, f.Err
}

func (f *fakeGateway) ListComentarios(ctx context.Context) ([]model.Comentario, error) {
	return f.Comentarios, f.Err
}

func (f *fakeGateway) ListHistorialNoticias(ctx context.Context) ([]model.HistorialNoticia, error) {
	return f.Historial, f.Err
}

func (f *fakeGateway) ListLikes(ctx context.Context) ([]model.LikeNoticia, error) {
	return f.Likes, f.Err
}

func (f *fakeGateway) ListHistorialComentarios(ctx context.Context) ([]model.HistorialComentario, error) {
	return f.HistorialComentarios, f.Err
}
