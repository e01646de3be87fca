package main

import "github.com/DRSN-tech/storefront/internal/app"

func main() {
	app.Run()
}
