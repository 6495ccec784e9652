package main

import "algoway/cmd"

func main() {
	cmd.Execute()
}
