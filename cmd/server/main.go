// Command server runs the filekeeper metadata service: gRPC for the upload,
// commit and delete workflows, HTTP for previews, health and metrics.
package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/filekeeper/internal/server"
	"github.com/dmitrijs2005/filekeeper/internal/server/config"
)

func main() {
	log.SetPrefix("filekeeper-server: ")

	ctx := context.Background()

	app, err := server.NewApp(ctx, config.LoadConfig())
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	app.Run(ctx)
}
