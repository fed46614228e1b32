package http

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func SetupHttpEngine() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	app.Use(fiberrecover.New())
	app.Use(requestid.New())

	return app
}

// StartHttpServer blocks until the server stops or the process receives SIGINT/SIGTERM.
func StartHttpServer(app *fiber.App, port string) {
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		if err := app.Shutdown(); err != nil {
			log.Printf("error shutdown http server: %v", err)
		}
	}()

	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("error start http server: %v", err)
	}
}
