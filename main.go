package main

import "splitsnap/cmd"

func main() {
	cmd.Execute()
}
