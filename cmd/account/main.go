package main

import (
	"os"

	"github.com/caarlos0/env/v6"
	log "github.com/sirupsen/logrus"

	"github.com/quintans/bank-account/internal/infrastructure"
)

func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{
		DisableQuote: true,
	})
}

func main() {
	cfg := &infrastructure.Config{}
	err := env.Parse(cfg)
	if err != nil {
		log.Fatal(err)
	}

	infrastructure.Setup(cfg, log.StandardLogger())
}
