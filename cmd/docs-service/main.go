package main

import (
	"os"

	"github.com/cspzone/docs-service/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
