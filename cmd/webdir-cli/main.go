package main

import "webdir/cmd/webdir-cli/cmd"

func main() {
	cmd.Execute()
}
