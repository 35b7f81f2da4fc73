package main

import "github.com/northloop/trendlens-cli/cmd"

func main() {
	cmd.Execute()
}
