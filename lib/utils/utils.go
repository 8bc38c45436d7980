package utils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
)

func WaitForShutdown(closers ...interface{ Close() error }) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	for _, closer := range closers {
		if err := closer.Close(); err != nil {
			log.Printf("Error closing: %v", err)
		}
	}
}
