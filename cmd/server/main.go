package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/semnoticias/backend/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	srv := server.NewServer()
	defer srv.Store.Close()

	r := srv.SetupRouter()

	log.Printf("Servidor corriendo en http://localhost:%s", srv.Port())
	if err := r.Run(":" + srv.Port()); err != nil {
		log.Fatal(err)
	}
}
