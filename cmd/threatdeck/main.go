package main

import "github.com/threatdeck/threatdeck/cmd/threatdeck/commands"

func main() {
	commands.Execute()
}
