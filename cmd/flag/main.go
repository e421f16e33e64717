// Command flag asks for a width and a height and prints an ASCII flag.
package main

import (
	"bufio"
	"os"

	"snake-arcade/flagpattern"
	"snake-arcade/logger"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	logger.Log.SetOutput(os.Stderr)

	in := bufio.NewReader(os.Stdin)

	width, err := flagpattern.ReadPositiveInt(in, os.Stdout, "Flag width:")
	if err != nil {
		logger.Log.WithError(err).Error("reading width")
		os.Exit(1)
	}
	height, err := flagpattern.ReadPositiveInt(in, os.Stdout, "Flag height:")
	if err != nil {
		logger.Log.WithError(err).Error("reading height")
		os.Exit(1)
	}

	logger.Log.WithField("width", width).WithField("height", height).Debug("printing flag")
	if err := flagpattern.Write(os.Stdout, width, height); err != nil {
		logger.Log.WithError(err).Error("writing flag")
		os.Exit(1)
	}
}
