package main

import "github.com/focuskit/go-focus-app/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustOpenStorage()
	defer app.CloseStorage()

	app.MustSeedData()

	app.MustListenAndServeHTTP()
}
