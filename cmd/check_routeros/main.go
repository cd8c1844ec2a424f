package main

import (
	"os"

	"github.com/consol-monitoring/check_routeros/pkg/checkrouteros/commands"
)

func main() {
	os.Exit(commands.Execute())
}
