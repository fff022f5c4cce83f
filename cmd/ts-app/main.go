// Command ts-app manages users and cars through an in-memory entity gateway.
package main

import (
	"os"

	"github.com/Itterum/ts-app/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
