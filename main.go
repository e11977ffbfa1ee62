package main

import "github.com/gaurav-prasanna/rosterpipe/cmd"

func main() {
	cmd.Execute()
}
