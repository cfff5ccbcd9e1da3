// Command proximacms runs the conference-site CMS API server.
package main

import (
	"context"
	"log"

	"github.com/dalemusser/waffle/app"

	"github.com/proximaconf/proximacms/internal/app/bootstrap"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatalf("proximacms: %v", err)
	}
}
