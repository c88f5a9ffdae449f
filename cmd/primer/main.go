// Command primer runs the input-driven demonstrations of the chapter
// programs. See internal/cli for the commands.
package main

import "github.com/marcodamonte/primer/internal/cli"

// version is set at build time:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/primer
var version = "dev"

func main() {
	cli.Version = version
	cli.Execute(cli.NewRootCommand())
}
