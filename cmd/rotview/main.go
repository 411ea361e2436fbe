package main

import "github.com/OpenTraceLab/rotview/cmd/rotview/cmd"

func main() {
	cmd.Execute()
}
