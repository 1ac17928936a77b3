package main

import "github.com/Leg3ndary/githubExtract/cmd"

func main() {
	cmd.Execute()
}
