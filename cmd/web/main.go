package main

import "brandlink_backend/internal/app"

func main() {
	app.Run()
}
