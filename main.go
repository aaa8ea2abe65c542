package main

import "github.com/KaramelBytes/tabled/cmd"

func main() {
	cmd.Execute()
}
