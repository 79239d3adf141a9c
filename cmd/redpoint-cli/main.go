package main

import "redpoint/cmd/redpoint-cli/cmd"

func main() {
	cmd.Execute()
}
