package main

import "github.com/hoppxi/hyprwall/internal/cmd"

func main() {
	cmd.Execute()
}
