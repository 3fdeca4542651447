package main

import "github.com/khanhnv2901/sectxt-cli/cmd"

// execCmd is indirected so tests can intercept the entrypoint.
var execCmd = cmd.Execute

func main() {
	execCmd()
}
