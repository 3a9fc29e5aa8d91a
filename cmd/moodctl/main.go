package main

import "github.com/moodify/moodctl/cmd/moodctl/cmd"

func main() {
	cmd.Execute()
}
