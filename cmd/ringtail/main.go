package main

import (
	"os"

	"github.com/jonoton/go-circbuf/internal/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		os.Exit(1)
	}
}
