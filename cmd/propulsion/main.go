// cmd/propulsion/main.go
package main

import (
	"github.com/LanceryH/Space-propulsion/internal/appshell"
	"github.com/LanceryH/Space-propulsion/internal/cli"
)

func main() { appshell.Main(cli.Run) }
