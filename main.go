package main

import "github.com/quarryhq/quarry-courier/cmd"

func main() {
	cmd.Execute()
}
