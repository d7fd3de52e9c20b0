package main

import "github.com/pfrederiksen/hindsight/internal/cli"

func main() {
	cli.Execute()
}
