package main

import "github.com/alexiusacademia/gosect/cmd"

func main() {
	cmd.Execute()
}
