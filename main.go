package main

import "github.com/andhikaputrab/vgsales-dashboard/cmd/app"

func main() {
	app.Run()
}
