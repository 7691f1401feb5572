package main

import (
	"fmt"
	"log"

	"github.com/Ah-ugo/Amber-Foods-backend/configs"
	"github.com/Ah-ugo/Amber-Foods-backend/routes"
	"github.com/Ah-ugo/Amber-Foods-backend/ws"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Live notification stream
	hub := ws.NewNotificationHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
