package main

import "github.com/gaurav-prasanna/textclean/cmd"

func main() {
	cmd.Execute()
}
