package main

import "github.com/CanGulmez/transistor-analyzes/cmd/amp/cmd"

func main() {
	cmd.Execute()
}
