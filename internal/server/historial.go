package server

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/semnoticias/backend/internal/model"
)

type HistorialNoticiaRequest struct {
	FechaVista string `json:"fecha_vistah"`
	IDNoticia  int64  `json:"idnoticiaHN"`
	IDUsuario  int64  `json:"idusuarioHN"`
}

func (s *Server) CreateHistorialNoticia(c *gin.Context) {
	var req HistorialNoticiaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.FechaVista == "" {
		req.FechaVista = time.Now().Format("2006-01-02 15:04:05")
	}

	// Only one view per user, news item and calendar day.
	exists, err := s.Store.HasHistorialNoticiaOnDate(c.Request.Context(), req.IDUsuario, req.IDNoticia, req.FechaVista)
	if err != nil {
		log.Printf("Error al verificar historial existente: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al verificar historial existente"})
		return
	}
	if exists {
		c.JSON(http.StatusOK, gin.H{"message": "Registro duplicado, no insertado"})
		return
	}

	_, err = s.Store.CreateHistorialNoticia(c.Request.Context(), &model.HistorialNoticia{
		FechaVista: req.FechaVista,
		IDNoticia:  req.IDNoticia,
		IDUsuario:  req.IDUsuario,
	})
	if err != nil {
		log.Printf("Error al insertar historial: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al insertar historial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Historial de noticias registrado exitosamente"})
}

func (s *Server) GetHistorialNoticias(c *gin.Context) {
	idUsuario, err := strconv.ParseInt(c.Param("idusuario"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	historial, err := s.Store.GetHistorialNoticiasDetalle(c.Request.Context(), idUsuario)
	if err != nil {
		log.Printf("Error al obtener historial de noticias: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener historial"})
		return
	}
	c.JSON(http.StatusOK, historial)
}

func (s *Server) GetHistorialNoticiasUsuario(c *gin.Context) {
	idUsuario, err := strconv.ParseInt(c.Param("idusuario"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	historial, err := s.Store.GetHistorialNoticiasDetalle(c.Request.Context(), idUsuario)
	if err != nil {
		log.Printf("Error al obtener historial de noticias: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener historial de noticias"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"historial": historial})
}

type HistorialComentarioRequest struct {
	FechaVista   string `json:"fecha_vista"`
	IDNoticia    int64  `json:"idnoticiaHC"`
	IDUsuario    int64  `json:"idusuarioHC"`
	IDComentario int64  `json:"idcomentariosHC"`
}

func (s *Server) CreateHistorialComentario(c *gin.Context) {
	var req HistorialComentarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.FechaVista == "" {
		req.FechaVista = time.Now().Format("2006-01-02 15:04:05")
	}

	_, err := s.Store.CreateHistorialComentario(c.Request.Context(), &model.HistorialComentario{
		FechaVista:   req.FechaVista,
		IDNoticia:    req.IDNoticia,
		IDUsuario:    req.IDUsuario,
		IDComentario: req.IDComentario,
	})
	if err != nil {
		log.Printf("Error al insertar historial de comentarios: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al insertar el historial de comentarios"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Historial de comentarios registrado exitosamente"})
}

func (s *Server) GetHistorialComentarios(c *gin.Context) {
	idUsuario, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	historial, err := s.Store.GetHistorialComentariosDetalle(c.Request.Context(), idUsuario)
	if err != nil {
		log.Printf("Error al obtener historial: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}
	c.JSON(http.StatusOK, historial)
}
