package main

import "pantry-manager/cmd"

func main() {
	cmd.Execute()
}
