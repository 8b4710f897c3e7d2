// cubemoves - CLI for generating, inverting and recording cube scrambles.
package main

import (
	"github.com/SeamusWaldron/cubemoves/internal/cli"
)

func main() {
	cli.Execute()
}
