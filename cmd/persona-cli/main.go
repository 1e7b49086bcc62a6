package main

import "github.com/openpersona/console/cmd/persona-cli/cmd"

func main() {
	cmd.Execute()
}
