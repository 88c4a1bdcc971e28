package main

import (
	"bufio"
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/sabeennayazu/Movie-Mind/internal/config"
	"github.com/sabeennayazu/Movie-Mind/internal/db"
	"github.com/sabeennayazu/Movie-Mind/internal/models"
	"github.com/sabeennayazu/Movie-Mind/internal/repository"
)

// Carga el catálogo de películas desde un archivo NDJSON (un documento
// por línea) a la colección movies. Se puede correr varias veces: los
// documentos se upsertean por movieId.
func main() {
	cfg := config.Load()

	path := cfg.SeedFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		log.Fatal("[seed] falta el archivo de catálogo (SEED_FILE o argumento)")
	}

	db.InitMongo(cfg)
	movieRepo := repository.NewMovieRepository()

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("[seed] no se pudo abrir %s: %v", path, err)
	}
	defer f.Close()

	ctx := context.Background()
	now := time.Now().UTC().Format(time.RFC3339)

	scanner := bufio.NewScanner(f)
	// hay overviews largos, el buffer default de 64K puede quedar corto
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	var total, failed int
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var m models.MovieDoc
		if err := json.Unmarshal(line, &m); err != nil {
			log.Printf("[seed] línea %d inválida: %v", total+failed+1, err)
			failed++
			continue
		}
		if m.MovieID == 0 || m.Title == "" {
			log.Printf("[seed] línea %d sin movieId o title, se omite", total+failed+1)
			failed++
			continue
		}

		if m.CreatedAt == "" {
			m.CreatedAt = now
		}
		m.UpdatedAt = now

		if err := movieRepo.Upsert(ctx, &m); err != nil {
			log.Printf("[seed] no se pudo guardar %d (%s): %v", m.MovieID, m.Title, err)
			failed++
			continue
		}
		total++
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("[seed] error leyendo %s: %v", path, err)
	}

	log.Printf("[seed] listo: %d películas cargadas, %d con error", total, failed)
}
