package main

import "github.com/inovacc/activeforks/cmd"

func main() {
	cmd.Execute()
}
