package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/ZebLawrence/monopoly-web-game-sub000/app/controllers"
	"github.com/ZebLawrence/monopoly-web-game-sub000/pkg/routes"
	"github.com/ZebLawrence/monopoly-web-game-sub000/platform/logging"
	socket "github.com/ZebLawrence/monopoly-web-game-sub000/platform/sockets"
)

func main() {
	logging.Init()

	app := fiber.New()

	app.Use(cors.New())
	routes.AuthRoutes(app)
	routes.GameRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: controllers.JWTSecret(),
	}))

	app.Get("/user/cur", controllers.Cur)
	go socket.CreateSocketIOServer()

	port := os.Getenv("PORT")
	if port == "" {
		port = "4101"
	}
	app.Listen(":" + port)
}
