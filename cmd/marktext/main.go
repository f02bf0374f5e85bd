package main

import (
	"log"

	"github.com/Nenotriple/marktext/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
