package main

import (
	"log"
	"os"
	"strings"

	"go-xscraper/internal/devbackend"
	"go-xscraper/internal/models"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	store := devbackend.NewStore()
	//seed handles for local runs, e.g. SEED_USERNAMES=alice
	if seed := os.Getenv("SEED_USERNAMES"); seed != "" {
		for _, username := range strings.Split(seed, ",") {
			username = strings.TrimSpace(username)
			if username == "" {
				continue
			}
			p := store.AddPerson(models.Profile{Username: username})
			log.Printf("👤 Seeded '%s' as person %d", p.Username, *p.ID)
		}
	}

	r := devbackend.NewRouter(store)

	log.Printf("Dev backend listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
