package main

import "github.com/notargets/gocem/cmd"

func main() {
	cmd.Execute()
}
