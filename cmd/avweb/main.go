package main

import "github.com/aerovista/avweb/cmd/avweb/command"

func main() {
	command.Execute()
}
