package main

import (
	"flag"

	"vitalsync/cmd/bootstrap"
	"vitalsync/config"

	"github.com/sirupsen/logrus"
)

func main() {
	envFile := flag.String("env", config.DefaultEnvFile, "path to the dotenv file")
	flag.Parse()

	app, err := bootstrap.New(*envFile)
	if err != nil {
		logrus.WithError(err).WithField("env_file", *envFile).Fatal("vitalsync failed to start")
	}

	app.Run()
}
