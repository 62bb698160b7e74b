package main

import (
	"os"

	"github.com/adaptive-learning/studybuddy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
