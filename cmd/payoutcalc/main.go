package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		zap.L().Error("payoutcalc failed", zap.Error(err))
		os.Exit(1)
	}
}
