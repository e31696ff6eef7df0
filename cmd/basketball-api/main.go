package main

import "github.com/hoopsdata/basketball-analytics/internal/adapters/cli"

func main() {
	cli.Execute()
}
