// Command gesture-replay runs JSON gesture scripts against the recognition
// engine and reports what it classified after every step.
package main

import (
	"os"

	"github.com/phanxgames/gesture/cmd/gesture-replay/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
