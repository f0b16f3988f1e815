package main

import "github.com/Milover/isbnref/cmd"

func main() {
	cmd.Execute()
}
