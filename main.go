package main

import "github.com/hoppxi/shades/internal/cmd"

func main() {
	cmd.Execute()
}
