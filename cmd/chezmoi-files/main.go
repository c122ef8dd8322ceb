package main

import (
	"context"
	"fmt"

	"github.com/temirov/chezmoi-files/internal/cli"
	"github.com/temirov/chezmoi-files/internal/utils"
)

// main is the entry point for the chezmoi-files command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(false)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(context.Background(), loggerInstance); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
