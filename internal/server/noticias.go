package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/semnoticias/backend/internal/model"
)

type NoticiaRequest struct {
	Titulo           string `json:"titulo"`
	Contenido        string `json:"contenido"`
	Categoria        string `json:"categoria"`
	Autor            string `json:"autor"`
	FechaPublicacion string `json:"fecha_publicacion"`
	Tags             string `json:"tags"`
	Likes            int64  `json:"LIKES"`
}

func (s *Server) CreateNoticia(c *gin.Context) {
	var req NoticiaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	_, err := s.Store.CreateNoticia(c.Request.Context(), &model.Noticia{
		Titulo:           req.Titulo,
		Contenido:        req.Contenido,
		Categoria:        req.Categoria,
		Autor:            req.Autor,
		FechaPublicacion: req.FechaPublicacion,
		Tags:             req.Tags,
		Likes:            req.Likes,
	})
	if err != nil {
		log.Printf("Error al insertar noticia: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al insertar la noticia"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "NOTICIA registrado exitosamente"})
}

func (s *Server) ListNoticias(c *gin.Context) {
	noticias, err := s.Store.ListNoticias(c.Request.Context())
	if err != nil {
		log.Printf("Error al obtener noticias: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener noticias"})
		return
	}
	c.JSON(http.StatusOK, noticias)
}

func (s *Server) GetNoticia(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	noticia, err := s.Store.GetNoticia(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error en la consulta: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en la consulta"})
		return
	}
	if noticia == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Noticia no encontrada"})
		return
	}
	c.JSON(http.StatusOK, noticia)
}

func (s *Server) SearchNoticias(c *gin.Context) {
	keyword := c.Query("keyword")

	noticias, err := s.Store.SearchNoticiasByTag(c.Request.Context(), keyword)
	if err != nil {
		log.Printf("Error al obtener noticias: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar noticias"})
		return
	}
	c.JSON(http.StatusOK, noticias)
}

func (s *Server) GetNoticiaLikes(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	noticia, err := s.Store.GetNoticia(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	if noticia == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Noticia no encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": noticia.Likes})
}
