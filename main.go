package main

import "github.com/mouse-blink/flacscan/cmd"

func main() {
	cmd.Execute()
}
