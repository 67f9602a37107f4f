package main

import (
	"os"

	"github.com/yezholov/prattql/cmd/prattql/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
