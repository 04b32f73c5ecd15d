package main

import (
	"log"

	"github.com/ytget/countdown/internal/app"
)

var version = "dev"

func main() {
	if err := app.Run(version); err != nil {
		log.Fatal(err)
	}
}
