package main

import "github.com/katalvlaran/geopt/internal/cli"

func main() {
	cli.Execute()
}
