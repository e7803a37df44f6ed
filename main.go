package main

import "github.com/liamg/sweep/cmd"

func main() {
	cmd.Execute()
}
