package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"volscan/config"
	"volscan/core"
	"volscan/pkg/types"

	log "github.com/sirupsen/logrus"
)

func main() {
	configureLog(config.Env.EnvName, config.Env.Debug)

	// init context for graceful shutdown
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load config
	config, err := config.LoadConfig(config.Env.EnvName)
	if err != nil {
		log.Fatalf("fail to load config: %v", err)
	}

	// trap signal for graceful shutdown
	setupSignalHandler(cancel)

	// 📊 core: one scan, always exits 0
	core.Run(rootCtx, *config, os.Stdout)
	log.Info("🏁 done")
}

func configureLog(envName types.EnvName, debug bool) {
	log.SetLevel(log.InfoLevel)
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if envName == types.EnvLocal || envName == types.EnvDev {
		log.SetLevel(log.DebugLevel)
	}
	// trace also dumps every http exchange
	if debug {
		log.SetLevel(log.TraceLevel)
	}
}

func setupSignalHandler(cancel context.CancelFunc) {
	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigC
		log.Info("🚩 received shutdown signal")
		cancel()
	}()
}
