package store

import (
	"context"

	"github.com/semnoticias/backend/internal/model"
)

// Store is the data-access gateway over the relational schema. The rdf
// generator consumes the read side of it (rdf.Gateway); the HTTP handlers
// use the rest.
type Store interface {
	CreateUsuario(ctx context.Context, u *model.Usuario) (int64, error)
	GetUsuarioByID(ctx context.Context, id int64) (*model.Usuario, error)
	GetUsuarioByCorreo(ctx context.Context, correo string) (*model.Usuario, error)
	ListUsuarios(ctx context.Context) ([]model.Usuario, error)

	CreateNoticia(ctx context.Context, n *model.Noticia) (int64, error)
	GetNoticia(ctx context.Context, id int64) (*model.Noticia, error)
	ListNoticias(ctx context.Context) ([]model.Noticia, error)
	SearchNoticiasByTag(ctx context.Context, keyword string) ([]model.Noticia, error)

	CreateComentario(ctx context.Context, c *model.Comentario) (int64, error)
	GetComentariosByUsuario(ctx context.Context, idUsuario int64) ([]model.Comentario, error)
	GetComentariosByNoticia(ctx context.Context, idNoticia int64) ([]model.ComentarioConUsuario, error)
	ListComentarios(ctx context.Context) ([]model.Comentario, error)

	HasHistorialNoticiaOnDate(ctx context.Context, idUsuario, idNoticia int64, fecha string) (bool, error)
	CreateHistorialNoticia(ctx context.Context, h *model.HistorialNoticia) (int64, error)
	GetHistorialNoticiasByUsuario(ctx context.Context, idUsuario int64) ([]model.HistorialNoticia, error)
	GetHistorialNoticiasDetalle(ctx context.Context, idUsuario int64) ([]model.HistorialNoticiaDetalle, error)
	ListHistorialNoticias(ctx context.Context) ([]model.HistorialNoticia, error)

	HasLike(ctx context.Context, idUsuario, idNoticia int64) (bool, error)
	CreateLike(ctx context.Context, idUsuario, idNoticia int64, fecha string) error
	DeleteLike(ctx context.Context, idUsuario, idNoticia int64) (bool, error)
	GetLikesByUsuario(ctx context.Context, idUsuario int64) ([]model.LikeNoticia, error)
	ListLikes(ctx context.Context) ([]model.LikeNoticia, error)

	CreateHistorialComentario(ctx context.Context, h *model.HistorialComentario) (int64, error)
	GetHistorialComentariosDetalle(ctx context.Context, idUsuario int64) ([]model.HistorialComentarioDetalle, error)
	ListHistorialComentarios(ctx context.Context) ([]model.HistorialComentario, error)

	Close() error
}
