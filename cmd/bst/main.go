package main

import (
	"github.com/oahshtsua/lab/bst/internal/cmd"
)

func main() {
	cmd.Execute()
}
