package main

import (
	"os"

	"hero-streets/backend/internal/app"
)

func main() {
	os.Exit(app.Run())
}
