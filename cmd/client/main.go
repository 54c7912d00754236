package main

import (
	"docui/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
