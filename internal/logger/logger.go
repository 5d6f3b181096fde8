package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init replaces zap's global logger. Anything but "production" gets the
// development logger.
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	if environment == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}
