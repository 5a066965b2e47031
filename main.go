package main

import "github.com/radux/radux-launch/cmd"

func main() {
	cmd.Execute()
}
