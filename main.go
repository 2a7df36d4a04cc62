package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rakhulsr/go-marketplace/app/cmd"
	"github.com/Rakhulsr/go-marketplace/app/configs"
	"go.uber.org/zap"
)

func main() {
	env := configs.LoadEnv()

	logger, err := configs.NewLogger(env)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.RunCli(ctx, env, logger, os.Args); err != nil {
		logger.Fatal("Command failed", zap.Error(err))
	}
}
