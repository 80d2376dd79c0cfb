package rdf

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/semnoticias/backend/internal/model"
)

// Gateway is the data-access surface the generator consumes. It is injected
// so generation can run against a test double as easily as the SQLite store.
type Gateway interface {
	GetUsuarioByID(ctx context.Context, id int64) (*model.Usuario, error)
	GetComentariosByUsuario(ctx context.Context, id int64) ([]model.Comentario, error)
	GetLikesByUsuario(ctx context.Context, id int64) ([]model.LikeNoticia, error)
	GetHistorialNoticiasByUsuario(ctx context.Context, id int64) ([]model.HistorialNoticia, error)

	ListUsuarios(ctx context.Context) ([]model.Usuario, error)
	ListNoticias(ctx context.Context) ([]model.Noticia, error)
	ListComentarios(ctx context.Context) ([]model.Comentario, error)
	ListHistorialNoticias(ctx context.Context) ([]model.HistorialNoticia, error)
	ListLikes(ctx context.Context) ([]model.LikeNoticia, error)
	ListHistorialComentarios(ctx context.Context) ([]model.HistorialComentario, error)
}

// Generator sequences a generation run: fetch, build, serialize, persist.
// Each run works on its own Graph, so concurrent runs never share state.
type Generator struct {
	gateway Gateway
	writer  *Writer
}

func NewGenerator(gateway Gateway, writer *Writer) *Generator {
	return &Generator{gateway: gateway, writer: writer}
}

// GenerateUserDocument rebuilds the per-user activity graph from scratch,
// persists the .ttl/.rdf pair and returns the Turtle text. The user fetch is
// a hard gate; the three activity reads have no ordering dependency and run
// concurrently.
func (g *Generator) GenerateUserDocument(ctx context.Context, userID int64) (string, error) {
	u, err := g.gateway.GetUsuarioByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("fetching usuario %d: %w", userID, err)
	}
	if u == nil {
		return "", fmt.Errorf("%w: usuario %d", ErrNotFound, userID)
	}

	var (
		comentarios []model.Comentario
		likes       []model.LikeNoticia
		historial   []model.HistorialNoticia
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		comentarios, err = g.gateway.GetComentariosByUsuario(egCtx, userID)
		return err
	})
	eg.Go(func() error {
		var err error
		likes, err = g.gateway.GetLikesByUsuario(egCtx, userID)
		return err
	})
	eg.Go(func() error {
		var err error
		historial, err = g.gateway.GetHistorialNoticiasByUsuario(egCtx, userID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return "", fmt.Errorf("fetching activity of usuario %d: %w", userID, err)
	}

	graph, err := BuildUserGraph(u, comentarios, likes, historial)
	if err != nil {
		return "", err
	}

	turtle, rdfxml, err := serialize(graph)
	if err != nil {
		return "", err
	}
	if err := g.writer.WriteUserDocument(userID, turtle, rdfxml); err != nil {
		return "", err
	}
	return turtle, nil
}

// Regenerate is the post-login/post-comment trigger: same pipeline, text
// discarded. The caller awaits the returned error as the completion signal
// but must not fail the primary operation on it.
func (g *Generator) Regenerate(ctx context.Context, userID int64) error {
	_, err := g.GenerateUserDocument(ctx, userID)
	return err
}

// tableExports maps each bulk export name to its row fetch + builder. The
// export name doubles as the persisted base filename.
var tableExports = map[string]func(context.Context, Gateway) (*Graph, error){
	"usuarios": func(ctx context.Context, gw Gateway) (*Graph, error) {
		rows, err := gw.ListUsuarios(ctx)
		if err != nil {
			return nil, err
		}
		return BuildUsuariosGraph(rows)
	},
	"publicaciones": func(ctx context.Context, gw Gateway) (*Graph, error) {
		rows, err := gw.ListNoticias(ctx)
		if err != nil {
			return nil, err
		}
		return BuildPublicacionesGraph(rows)
	},
	"comentarios": func(ctx context.Context, gw Gateway) (*Graph, error) {
		rows, err := gw.ListComentarios(ctx)
		if err != nil {
			return nil, err
		}
		return BuildComentariosGraph(rows)
	},
	"historialnoticias": func(ctx context.Context, gw Gateway) (*Graph, error) {
		rows, err := gw.ListHistorialNoticias(ctx)
		if err != nil {
			return nil, err
		}
		return BuildHistorialNoticiasGraph(rows)
	},
	"likesnoticias": func(ctx context.Context, gw Gateway) (*Graph, error) {
		rows, err := gw.ListLikes(ctx)
		if err != nil {
			return nil, err
		}
		return BuildLikesGraph(rows)
	},
	"historialcomentarios": func(ctx context.Context, gw Gateway) (*Graph, error) {
		rows, err := gw.ListHistorialComentarios(ctx)
		if err != nil {
			return nil, err
		}
		return BuildHistorialComentariosGraph(rows)
	},
}

// GenerateTableDocument rebuilds the bulk document for one table, persists
// the fixed-name .ttl/.rdf pair under the instancias directory and returns
// the Turtle text.
func (g *Generator) GenerateTableDocument(ctx context.Context, table string) (string, error) {
	build, ok := tableExports[table]
	if !ok {
		return "", fmt.Errorf("unknown table export %q", table)
	}
	graph, err := build(ctx, g.gateway)
	if err != nil {
		return "", fmt.Errorf("fetching rows for %s: %w", table, err)
	}

	turtle, rdfxml, err := serialize(graph)
	if err != nil {
		return "", err
	}
	if err := g.writer.WriteTableDocument(table, turtle, rdfxml); err != nil {
		return "", err
	}
	return turtle, nil
}

// serialize emits Turtle, gates on it re-parsing cleanly, then emits RDF/XML
// from the same graph. A document that does not re-parse is never persisted.
func serialize(graph *Graph) (turtle, rdfxml string, err error) {
	turtle = ToTurtle(graph)
	reparsed, err := ParseTurtle(turtle)
	if err != nil {
		return "", "", fmt.Errorf("%w: generated turtle does not re-parse: %v", ErrSerialization, err)
	}
	if len(reparsed) != graph.Len() {
		return "", "", fmt.Errorf("%w: re-parse yielded %d triples, graph has %d",
			ErrSerialization, len(reparsed), graph.Len())
	}
	rdfxml, err = ToRDFXML(graph)
	if err != nil {
		return "", "", err
	}
	return turtle, rdfxml, nil
}
