package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/semnoticias/backend/internal/rdf"
)

const turtleContentType = "text/turtle; charset=utf-8"

// OntologiaDinamica serves the per-user activity document, regenerating and
// persisting it on every request.
func (s *Server) OntologiaDinamica(c *gin.Context) {
	idUsuario, err := strconv.ParseInt(c.Param("idusuario"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	turtle, err := s.Generator.GenerateUserDocument(c.Request.Context(), idUsuario)
	if err != nil {
		log.Printf("Error generando RDF del usuario %d: %v", idUsuario, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generando RDF"})
		return
	}

	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s", rdf.UserFilename(idUsuario)))
	c.Data(http.StatusOK, turtleContentType, []byte(turtle))
}

// tableRDF returns the handler for one bulk table export. Generation also
// persists the .ttl/.rdf pair under the instancias directory.
func (s *Server) tableRDF(table string) gin.HandlerFunc {
	return func(c *gin.Context) {
		turtle, err := s.Generator.GenerateTableDocument(c.Request.Context(), table)
		if err != nil {
			log.Printf("Error generando RDF de %s: %v", table, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generando RDF"})
			return
		}
		c.Data(http.StatusOK, turtleContentType, []byte(turtle))
	}
}
