package main

import (
	"github.com/statewatch/statewatch/cmd/statewatch/cmd"
)

func main() {
	cmd.Execute()
}
