package main

import "github.com/iksnae/cursor-chat-viewer/cmd"

func main() {
	cmd.Execute()
}
