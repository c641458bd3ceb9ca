package main

import (
	_ "embed"

	"github.com/tams-cso/tams-club-cal-sub000/cmd"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(c)
}
