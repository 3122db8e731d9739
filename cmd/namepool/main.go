package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("namepool failed")
	}
}
