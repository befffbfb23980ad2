package main

import (
	"fmt"
	"os"

	"github.com/Jaddevvv/PortKiller-App/internal/proc"
)

// To embed version, commit, and build date, use:
// go build -ldflags "-X main.version=v0.1.0 -X main.commit=$(git rev-parse --short HEAD) -X 'main.buildDate=$(date +%Y-%m-%d)'" -o portkiller ./cmd/portkiller
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	a := newApp(proc.System())
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
