package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"locator-go/api"
	"locator-go/config"
	"locator-go/locate"
	"locator-go/store"
	"locator-go/web"
)

func main() {
	cfg := config.FromEnv()

	catalog, err := config.LoadFloorplan(cfg.Floorplan)
	if err != nil {
		log.Fatalf("load floorplan: %v", err)
	}
	log.Printf("floorplan %s: %d levels, %d access points, %d rooms",
		cfg.Floorplan, len(catalog.Levels), len(catalog.AccessPoints), len(catalog.Rooms))

	hub := web.NewHub()
	go hub.Run()

	srv := &api.Server{
		Catalog:  catalog,
		Readings: store.NewStore(),
		Pipeline: locate.NewPipeline(locate.NewSignalModel()),
		Hub:      hub,
	}

	router := srv.Router()
	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		web.ServeWs(hub, w, r)
	})
	if cfg.StaticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.AllowOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT"},
		AllowedHeaders: []string{"Content-Type"},
	})
	handler := c.Handler(router)

	log.Printf("HTTP server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
