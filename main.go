package main

import "devstats/cmd"

func main() {
	cmd.Execute()
}
