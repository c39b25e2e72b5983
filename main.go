package main

import "github.com/schemakit/gqlusage/cmd"

func main() {
	cmd.Execute()
}
