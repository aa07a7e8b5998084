package main

import "github.com/alcatrazescapee/epsilon-publish/cmd/epsilon-publish/cmd"

func main() {
	cmd.Execute()
}
