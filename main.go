package main

import "github.com/agentic-research/lingo/cmd"

func main() {
	cmd.Execute()
}
