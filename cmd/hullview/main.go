package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.NewWithOptions(os.Stderr, log.Options{Prefix: "hullview"}).Error(err)
		os.Exit(1)
	}
}
