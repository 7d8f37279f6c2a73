package main

import "pipeline-hud/cmd"

func main() {
	cmd.Execute()
}
