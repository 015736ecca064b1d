package main

import (
	"os"

	"github.com/lwm-galactic/tidy/pkg/cmd"
)

func main() {
	cmd.NewApp(os.Args[0]).Run()
}
