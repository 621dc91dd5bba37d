package main

import "github.com/crayonbox/colorpick/internal/cli"

func main() {
	cli.Execute()
}
