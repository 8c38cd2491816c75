package main

import "allstars/internal/cmd"

func main() {
	cmd.Run()
}
