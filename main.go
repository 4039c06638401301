package main

import "github.com/KaramelBytes/urbanpulse-cli/cmd"

func main() {
	cmd.Execute()
}
