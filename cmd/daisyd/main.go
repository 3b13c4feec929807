package main

import "github.com/daisy-days/daisyd/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
