package main

import (
	"os"

	"github.com/kc3lf/hamdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
