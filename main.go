package main

import (
	"github.com/Schaudge/vsearch/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
