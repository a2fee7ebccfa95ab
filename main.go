package main

import "classctl/cmd"

func main() {
	cmd.Execute()
}
