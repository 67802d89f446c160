package main

import (
	"os"

	"github.com/vfsemu/vfsemu/ctl/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
