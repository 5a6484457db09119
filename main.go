package main

import "github.com/a11ytools/a11y-cli/cmd"

func main() {
	cmd.Execute()
}
