package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/semnoticias/backend/internal/model"
	"github.com/semnoticias/backend/internal/store/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements Store over a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database at path (":memory:" works for tests),
// enables foreign keys and runs pending migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps :memory: databases coherent across the pool
	// and sidesteps SQLITE_BUSY on concurrent writes.
	db.SetMaxOpenConns(1)

	// Foreign keys are OFF by default in SQLite.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := migrations.MigrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Usuario operations

func (s *SQLiteStore) CreateUsuario(ctx context.Context, u *model.Usuario) (int64, error) {
	res, err := s.db.ExecContext(ctx, insertUsuarioQuery,
		u.UserName, u.Correo, u.Contrasena, u.Dia, u.Mes, u.Anio)
	if err != nil {
		return 0, fmt.Errorf("creating usuario: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("creating usuario: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) scanUsuario(row *sql.Row) (*model.Usuario, error) {
	var u model.Usuario
	err := row.Scan(&u.ID, &u.UserName, &u.Correo, &u.Contrasena, &u.Dia, &u.Mes, &u.Anio)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("scanning usuario: %w", err)
	}
	return &u, nil
}

func (s *SQLiteStore) GetUsuarioByID(ctx context.Context, id int64) (*model.Usuario, error) {
	return s.scanUsuario(s.db.QueryRowContext(ctx, getUsuarioByIDQuery, id))
}

func (s *SQLiteStore) GetUsuarioByCorreo(ctx context.Context, correo string) (*model.Usuario, error) {
	return s.scanUsuario(s.db.QueryRowContext(ctx, getUsuarioByCorreoQuery, correo))
}

func (s *SQLiteStore) ListUsuarios(ctx context.Context) ([]model.Usuario, error) {
	rows, err := s.db.QueryContext(ctx, listUsuariosQuery)
	if err != nil {
		return nil, fmt.Errorf("listing usuarios: %w", err)
	}
	defer rows.Close()

	var usuarios []model.Usuario
	for rows.Next() {
		var u model.Usuario
		if err := rows.Scan(&u.ID, &u.UserName, &u.Correo, &u.Contrasena, &u.Dia, &u.Mes, &u.Anio); err != nil {
			return nil, fmt.Errorf("scanning usuario: %w", err)
		}
		usuarios = append(usuarios, u)
	}
	return usuarios, rows.Err()
}

// Noticia operations

func (s *SQLiteStore) CreateNoticia(ctx context.Context, n *model.Noticia) (int64, error) {
	res, err := s.db.ExecContext(ctx, insertNoticiaQuery,
		n.Titulo, n.Contenido, n.Categoria, n.Autor, n.FechaPublicacion, n.Tags, n.Likes)
	if err != nil {
		return 0, fmt.Errorf("creating noticia: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("creating noticia: %w", err)
	}
	return id, nil
}

func scanNoticia(rows interface{ Scan(...any) error }, n *model.Noticia) error {
	return rows.Scan(&n.IDNoticias, &n.Titulo, &n.Contenido, &n.Categoria,
		&n.Autor, &n.FechaPublicacion, &n.Tags, &n.Likes)
}

func (s *SQLiteStore) GetNoticia(ctx context.Context, id int64) (*model.Noticia, error) {
	var n model.Noticia
	err := scanNoticia(s.db.QueryRowContext(ctx, getNoticiaQuery, id), &n)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("getting noticia: %w", err)
	}
	return &n, nil
}

func (s *SQLiteStore) queryNoticias(ctx context.Context, query string, args ...any) ([]model.Noticia, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying noticias: %w", err)
	}
	defer rows.Close()

	var noticias []model.Noticia
	for rows.Next() {
		var n model.Noticia
		if err := scanNoticia(rows, &n); err != nil {
			return nil, fmt.Errorf("scanning noticia: %w", err)
		}
		noticias = append(noticias, n)
	}
	return noticias, rows.Err()
}

func (s *SQLiteStore) ListNoticias(ctx context.Context) ([]model.Noticia, error) {
	return s.queryNoticias(ctx, listNoticiasQuery)
}

func (s *SQLiteStore) SearchNoticiasByTag(ctx context.Context, keyword string) ([]model.Noticia, error) {
	return s.queryNoticias(ctx, searchNoticiasQuery, "%"+keyword+"%")
}

// Comentario operations

func (s *SQLiteStore) CreateComentario(ctx context.Context, c *model.Comentario) (int64, error) {
	res, err := s.db.ExecContext(ctx, insertComentarioQuery,
		c.Contenido, c.FechaComent, c.IDUsuario, c.IDNoticias)
	if err != nil {
		return 0, fmt.Errorf("creating comentario: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("creating comentario: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) queryComentarios(ctx context.Context, query string, args ...any) ([]model.Comentario, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying comentarios: %w", err)
	}
	defer rows.Close()

	var comentarios []model.Comentario
	for rows.Next() {
		var c model.Comentario
		if err := rows.Scan(&c.IDComentarios, &c.Contenido, &c.FechaComent, &c.IDUsuario, &c.IDNoticias); err != nil {
			return nil, fmt.Errorf("scanning comentario: %w", err)
		}
		comentarios = append(comentarios, c)
	}
	return comentarios, rows.Err()
}

func (s *SQLiteStore) GetComentariosByUsuario(ctx context.Context, idUsuario int64) ([]model.Comentario, error) {
	return s.queryComentarios(ctx, getComentariosByUsuarioQuery, idUsuario)
}

func (s *SQLiteStore) ListComentarios(ctx context.Context) ([]model.Comentario, error) {
	return s.queryComentarios(ctx, listComentariosQuery)
}

func (s *SQLiteStore) GetComentariosByNoticia(ctx context.Context, idNoticia int64) ([]model.ComentarioConUsuario, error) {
	rows, err := s.db.QueryContext(ctx, getComentariosByNoticiaQuery, idNoticia)
	if err != nil {
		return nil, fmt.Errorf("querying comentarios de noticia: %w", err)
	}
	defer rows.Close()

	var comentarios []model.ComentarioConUsuario
	for rows.Next() {
		var c model.ComentarioConUsuario
		if err := rows.Scan(&c.IDComentarios, &c.IDNoticias, &c.IDUsuario, &c.UserName,
			&c.FechaComent, &c.Contenido); err != nil {
			return nil, fmt.Errorf("scanning comentario con usuario: %w", err)
		}
		comentarios = append(comentarios, c)
	}
	return comentarios, rows.Err()
}

// Historial de noticias operations

func (s *SQLiteStore) HasHistorialNoticiaOnDate(ctx context.Context, idUsuario, idNoticia int64, fecha string) (bool, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, countHistorialNoticiaOnDateQuery, idUsuario, idNoticia, fecha).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking historial existente: %w", err)
	}
	return count > 0, nil
}

func (s *SQLiteStore) CreateHistorialNoticia(ctx context.Context, h *model.HistorialNoticia) (int64, error) {
	res, err := s.db.ExecContext(ctx, insertHistorialNoticiaQuery, h.FechaVista, h.IDNoticia, h.IDUsuario)
	if err != nil {
		return 0, fmt.Errorf("creating historial de noticia: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("creating historial de noticia: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) queryHistorialNoticias(ctx context.Context, query string, args ...any) ([]model.HistorialNoticia, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying historial de noticias: %w", err)
	}
	defer rows.Close()

	var historial []model.HistorialNoticia
	for rows.Next() {
		var h model.HistorialNoticia
		if err := rows.Scan(&h.ID, &h.FechaVista, &h.IDNoticia, &h.IDUsuario); err != nil {
			return nil, fmt.Errorf("scanning historial de noticia: %w", err)
		}
		historial = append(historial, h)
	}
	return historial, rows.Err()
}

func (s *SQLiteStore) GetHistorialNoticiasByUsuario(ctx context.Context, idUsuario int64) ([]model.HistorialNoticia, error) {
	return s.queryHistorialNoticias(ctx, getHistorialNoticiasByUsuarioQuery, idUsuario)
}

func (s *SQLiteStore) ListHistorialNoticias(ctx context.Context) ([]model.HistorialNoticia, error) {
	return s.queryHistorialNoticias(ctx, listHistorialNoticiasQuery)
}

func (s *SQLiteStore) GetHistorialNoticiasDetalle(ctx context.Context, idUsuario int64) ([]model.HistorialNoticiaDetalle, error) {
	rows, err := s.db.QueryContext(ctx, getHistorialNoticiasDetalleQuery, idUsuario)
	if err != nil {
		return nil, fmt.Errorf("querying historial detalle: %w", err)
	}
	defer rows.Close()

	var historial []model.HistorialNoticiaDetalle
	for rows.Next() {
		var h model.HistorialNoticiaDetalle
		if err := rows.Scan(&h.ID, &h.FechaVista, &h.IDNoticia, &h.IDUsuario,
			&h.IDNoticias, &h.Titulo, &h.Categoria, &h.Autor); err != nil {
			return nil, fmt.Errorf("scanning historial detalle: %w", err)
		}
		historial = append(historial, h)
	}
	return historial, rows.Err()
}

// Like operations

func (s *SQLiteStore) HasLike(ctx context.Context, idUsuario, idNoticia int64) (bool, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, countLikeQuery, idUsuario, idNoticia).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking like existente: %w", err)
	}
	return count > 0, nil
}

// CreateLike inserts the like row and bumps the denormalized counter on the
// noticia in one transaction.
func (s *SQLiteStore) CreateLike(ctx context.Context, idUsuario, idNoticia int64, fecha string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, insertLikeQuery, idUsuario, idNoticia, fecha); err != nil {
		return fmt.Errorf("creating like: %w", err)
	}
	if _, err := tx.ExecContext(ctx, incrementNoticiaLikesQuery, 1, idNoticia); err != nil {
		return fmt.Errorf("incrementing likes counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// DeleteLike removes the like row and decrements the counter. Returns false
// when no like existed.
func (s *SQLiteStore) DeleteLike(ctx context.Context, idUsuario, idNoticia int64) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, deleteLikeQuery, idUsuario, idNoticia)
	if err != nil {
		return false, fmt.Errorf("deleting like: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting like: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, incrementNoticiaLikesQuery, -1, idNoticia); err != nil {
		return false, fmt.Errorf("decrementing likes counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing transaction: %w", err)
	}
	return true, nil
}

func (s *SQLiteStore) queryLikes(ctx context.Context, query string, args ...any) ([]model.LikeNoticia, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying likes: %w", err)
	}
	defer rows.Close()

	var likes []model.LikeNoticia
	for rows.Next() {
		var l model.LikeNoticia
		if err := rows.Scan(&l.ID, &l.IDUsuario, &l.IDNoticia, &l.FechaLike); err != nil {
			return nil, fmt.Errorf("scanning like: %w", err)
		}
		likes = append(likes, l)
	}
	return likes, rows.Err()
}

func (s *SQLiteStore) GetLikesByUsuario(ctx context.Context, idUsuario int64) ([]model.LikeNoticia, error) {
	return s.queryLikes(ctx, getLikesByUsuarioQuery, idUsuario)
}

func (s *SQLiteStore) ListLikes(ctx context.Context) ([]model.LikeNoticia, error) {
	return s.queryLikes(ctx, listLikesQuery)
}

// Historial de comentarios operations

func (s *SQLiteStore) CreateHistorialComentario(ctx context.Context, h *model.HistorialComentario) (int64, error) {
	res, err := s.db.ExecContext(ctx, insertHistorialComentarioQuery,
		h.FechaVista, nullableID(h.IDNoticia), h.IDUsuario, nullableID(h.IDComentario))
	if err != nil {
		return 0, fmt.Errorf("creating historial de comentario: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("creating historial de comentario: %w", err)
	}
	return id, nil
}

func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func (s *SQLiteStore) ListHistorialComentarios(ctx context.Context) ([]model.HistorialComentario, error) {
	rows, err := s.db.QueryContext(ctx, listHistorialComentariosQuery)
	if err != nil {
		return nil, fmt.Errorf("querying historial de comentarios: %w", err)
	}
	defer rows.Close()

	var historial []model.HistorialComentario
	for rows.Next() {
		var h model.HistorialComentario
		if err := rows.Scan(&h.ID, &h.FechaVista, &h.IDNoticia, &h.IDUsuario, &h.IDComentario); err != nil {
			return nil, fmt.Errorf("scanning historial de comentario: %w", err)
		}
		historial = append(historial, h)
	}
	return historial, rows.Err()
}

func (s *SQLiteStore) GetHistorialComentariosDetalle(ctx context.Context, idUsuario int64) ([]model.HistorialComentarioDetalle, error) {
	rows, err := s.db.QueryContext(ctx, getHistorialComentariosDetalleQuery, idUsuario)
	if err != nil {
		return nil, fmt.Errorf("querying historial de comentarios detalle: %w", err)
	}
	defer rows.Close()

	var historial []model.HistorialComentarioDetalle
	for rows.Next() {
		var h model.HistorialComentarioDetalle
		if err := rows.Scan(&h.ID, &h.FechaVista, &h.IDNoticia, &h.IDUsuario, &h.IDComentario,
			&h.Contenido, &h.Titulo); err != nil {
			return nil, fmt.Errorf("scanning historial de comentario detalle: %w", err)
		}
		historial = append(historial, h)
	}
	return historial, rows.Err()
}

// Compile-time check that SQLiteStore implements the Store interface
var _ Store = (*SQLiteStore)(nil)
