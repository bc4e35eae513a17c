package main

import (
	"os"

	"pdmove/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
