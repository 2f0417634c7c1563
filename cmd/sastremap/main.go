package main

import (
	"os"

	"github.com/jaiswalaj/sast-exporter-data-update/internal/app"
)

func main() {
	if err := app.BuildRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
