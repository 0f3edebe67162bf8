package main

import "github.com/alexiusacademia/gosieve/cmd"

func main() {
	cmd.Execute()
}
