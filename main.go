package main

import "github.com/johnny-y-wang/fireroad-server/cmd"

func main() {
	cmd.Execute()
}
