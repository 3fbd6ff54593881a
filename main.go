package main

import "github.com/mouse-blink/testbook/cmd"

func main() {
	cmd.Execute()
}
