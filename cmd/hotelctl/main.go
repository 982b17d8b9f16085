package main

import (
	"os"

	"BE-HOTEL-ADMIN/app/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
