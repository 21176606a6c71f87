package main

import "github.com/Digital-Shane/cinerec/internal/cmd"

func main() {
	cmd.Execute()
}
