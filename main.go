package main

import "github.com/mouse-blink/knightpath/cmd"

func main() {
	cmd.Execute()
}
