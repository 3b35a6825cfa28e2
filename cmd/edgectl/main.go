package main

import "github.com/cookstemma/edge/internal/cli"

func main() {
	cli.Execute()
}
