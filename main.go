package main

import "github.com/dotenv-shield/dotenv-shield/cmd/shield"

func main() {
	shield.Execute()
}
