package server

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/semnoticias/backend/internal/config"
	"github.com/semnoticias/backend/internal/rdf"
	"github.com/semnoticias/backend/internal/store"
)

type Server struct {
	Store     store.Store
	Generator *rdf.Generator
	cfg       *config.Config
}

// New wires a server from an already-open store, mainly for tests.
func New(cfg *config.Config, st store.Store) *Server {
	writer := rdf.NewWriter(cfg.RDF.OutputDir)
	return &Server{
		Store:     st,
		Generator: rdf.NewGenerator(st, writer),
		cfg:       cfg,
	}
}

// NewServer bootstraps from the config file plus environment overrides.
func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}

	if envPort := os.Getenv("PORT"); envPort != "" {
		cfg.Server.Port = envPort
	}
	if envPath := os.Getenv("DB_PATH"); envPath != "" {
		cfg.Database.Path = envPath
	}
	if envDir := os.Getenv("RDF_OUTPUT_DIR"); envDir != "" {
		cfg.RDF.OutputDir = envDir
	}

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	log.Printf("Conectado a la base de datos %s", cfg.Database.Path)

	return New(cfg, st)
}

func (s *Server) Port() string { return s.cfg.Server.Port }

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend funcionando")
	})

	r.POST("/signup", s.Signup)
	r.POST("/login", s.Login)
	r.GET("/usuario", s.GetUsuario)

	r.POST("/noticias", s.CreateNoticia)
	r.GET("/noticias", s.ListNoticias)
	r.GET("/noticias/:id", s.GetNoticia)
	r.GET("/api/noticias", s.SearchNoticias)
	r.GET("/api/noticias/:id/LIKES", s.GetNoticiaLikes)

	r.POST("/comentarios", s.CreateComentario)
	r.GET("/comentarios/:idnoticia", s.GetComentariosNoticia)

	r.POST("/historialnoticias", s.CreateHistorialNoticia)
	r.GET("/historialnoticias/:idusuario", s.GetHistorialNoticias)
	r.GET("/historialnoticias/usuario/:idusuario", s.GetHistorialNoticiasUsuario)

	r.POST("/historialcomentarios", s.CreateHistorialComentario)
	r.GET("/historialcomentarios/:id", s.GetHistorialComentarios)

	r.POST("/likes", s.CreateLike)
	r.DELETE("/likes", s.DeleteLike)
	r.GET("/likes/:idusuario", s.GetLikes)
	r.GET("/likes/usuario/:idusuario", s.GetLikesUsuario)

	r.GET("/ontologia/dinamico/:idusuario", s.OntologiaDinamica)
	r.GET("/rdf/usuarios", s.tableRDF("usuarios"))
	r.GET("/rdf/publicaciones", s.tableRDF("publicaciones"))
	r.GET("/rdf/comentarios", s.tableRDF("comentarios"))
	r.GET("/rdf/historialnoticias", s.tableRDF("historialnoticias"))
	r.GET("/rdf/likesnoticias", s.tableRDF("likesnoticias"))
	r.GET("/rdf/historialcomentarios", s.tableRDF("historialcomentarios"))

	return r
}
