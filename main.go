package main

import (
	"os"

	"github.com/arjun/quizgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
