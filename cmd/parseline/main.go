package main

import (
	"os"

	"github.com/parseline/parseline-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
