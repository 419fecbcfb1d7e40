package main

import "github.com/hoppxi/bright/internal/cmd"

func main() {
	cmd.Execute()
}
