package main

import (
	"log"

	"github.com/photoapp/photoapp/cmd"
	"github.com/photoapp/photoapp/config"
)

func main() {
	log.Printf("photoapp %s (%s)", config.Version, config.CommitHash)
	cmd.Execute()
}
