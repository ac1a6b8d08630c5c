package main

import (
	"os"

	"github.com/ryanmaguire/libtmpl-sub005/cmd/tmplinfo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
