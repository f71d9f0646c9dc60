package main

import "fixmate_backend/internal/app"

func main() {
	app.Run()
}
