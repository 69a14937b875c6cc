package main

import "maulepro-server/cmd"

func main() {
	cmd.Execute()
}
