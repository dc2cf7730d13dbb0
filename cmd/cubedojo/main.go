// cubedojo - recognition drills for Rubik's cube solvers.
package main

import (
	"github.com/SeamusWaldron/cubedojo/internal/cli"
)

func main() {
	cli.Execute()
}
