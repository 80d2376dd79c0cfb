package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/semnoticias/backend/internal/model"
)

type ComentarioRequest struct {
	Contenido   string `json:"contenido"`
	FechaComent string `json:"fechacoment"`
	IDUsuario   int64  `json:"idusuario"`
	IDNoticias  int64  `json:"idnoticias"`
}

func (s *Server) CreateComentario(c *gin.Context) {
	var req ComentarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	id, err := s.Store.CreateComentario(c.Request.Context(), &model.Comentario{
		Contenido:   req.Contenido,
		FechaComent: req.FechaComent,
		IDUsuario:   req.IDUsuario,
		IDNoticias:  req.IDNoticias,
	})
	if err != nil {
		log.Printf("Error al insertar comentario: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al insertar comentario"})
		return
	}

	// Regenerate the author's activity graph; the comment is already saved,
	// so a failure here only degrades the response.
	if err := s.Generator.Regenerate(c.Request.Context(), req.IDUsuario); err != nil {
		log.Printf("Error generando tripletas RDF: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"idcomentarios": id,
			"message":       "Comentario guardado, pero error generando RDF",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"idcomentarios": id,
		"message":       "Comentario guardado y RDF actualizado",
	})
}

func (s *Server) GetComentariosNoticia(c *gin.Context) {
	idNoticia, err := strconv.ParseInt(c.Param("idnoticia"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	comentarios, err := s.Store.GetComentariosByNoticia(c.Request.Context(), idNoticia)
	if err != nil {
		log.Printf("Error al obtener comentarios con usuario: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, comentarios)
}
