package main

import (
	"github.com/clambin/brightctl/internal/cmd"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := cmd.Main(); err != nil {
		log.WithError(err).Fatal("brightctl failed")
	}
}
