package main

import "github.com/nethrys/gofolio/cmd/gofolio/cmd"

func main() {
	cmd.Execute()
}
