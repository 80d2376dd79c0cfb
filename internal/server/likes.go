package server

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type LikeRequest struct {
	IDUsuario int64 `json:"idusuarioLI"`
	IDNoticia int64 `json:"idnoticiaLI"`
}

func (s *Server) CreateLike(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	exists, err := s.Store.HasLike(c.Request.Context(), req.IDUsuario, req.IDNoticia)
	if err != nil {
		log.Printf("Error al verificar like: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Ya diste like a esta noticia"})
		return
	}

	fecha := time.Now().Format("2006-01-02 15:04:05")
	if err := s.Store.CreateLike(c.Request.Context(), req.IDUsuario, req.IDNoticia, fecha); err != nil {
		log.Printf("Error al insertar like: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Like agregado con éxito"})
}

func (s *Server) DeleteLike(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	deleted, err := s.Store.DeleteLike(c.Request.Context(), req.IDUsuario, req.IDNoticia)
	if err != nil {
		log.Printf("Error al eliminar like: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Like no encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Like eliminado con éxito"})
}

func (s *Server) GetLikes(c *gin.Context) {
	idUsuario, err := strconv.ParseInt(c.Param("idusuario"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	likes, err := s.Store.GetLikesByUsuario(c.Request.Context(), idUsuario)
	if err != nil {
		log.Printf("Error al obtener likes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, likes)
}

func (s *Server) GetLikesUsuario(c *gin.Context) {
	s.GetLikes(c)
}
