package main

import (
	"github.com/mmcdole/embygo/internal/cli"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	cli.Execute(Version)
}
