package main

import (
	"os"

	"parcel-tracker/cmd/trackctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
