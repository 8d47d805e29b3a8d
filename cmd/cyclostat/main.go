package main

import "github.com/cyclostat/cyclostat/cli"

func main() {
	cli.Main()
}
