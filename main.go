package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/dan13ram/teleport-relayer/app"
	"github.com/dan13ram/teleport-relayer/batch"
	"github.com/dan13ram/teleport-relayer/metrics"
	"github.com/dan13ram/teleport-relayer/proof"
)

var Version string

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	relayer := cli.NewApp()
	relayer.Version = Version
	relayer.Name = "teleport-relayer"
	relayer.Usage = "relays NFT teleports from source chains to the destination registry"
	relayer.Flags = []cli.Flag{configFlag, envFlag}
	relayer.Commands = append(
		relayer.Commands,
		&startCommand,
		&retryBatchCommand,
		&rebatchCommand,
		&proofCommand,
	)
	relayer.Action = start

	if err := relayer.Run(os.Args); err != nil {
		log.Fatal("[MAIN] ", err)
	}
}

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Usage:   "path to the yaml config file",
		EnvVars: []string{"CONFIG_FILE"},
	}
	envFlag = &cli.StringFlag{
		Name:    "env",
		Usage:   "path to a .env file",
		EnvVars: []string{"ENV_FILE"},
	}
	batchIDFlag = &cli.StringFlag{
		Name:     "batch-id",
		Usage:    "id of the commitment batch",
		Required: true,
	}
	tokenIDFlag = &cli.StringFlag{
		Name:     "token-id",
		Usage:    "decimal id of the teleported token",
		Required: true,
	}
	sourceChainIDFlag = &cli.StringFlag{
		Name:  "source-chain-id",
		Usage: "source chain of the token, required when several chains are configured",
	}
)

var (
	startCommand = cli.Command{
		Name:   "start",
		Usage:  "Run the relayer services",
		Action: start,
	}
	retryBatchCommand = cli.Command{
		Name:   "retry-batch",
		Usage:  "Queue a submission_failed batch for resubmission",
		Flags:  []cli.Flag{batchIDFlag},
		Action: retryBatch,
	}
	rebatchCommand = cli.Command{
		Name:   "rebatch",
		Usage:  "Return the events of a submission_failed batch to the pending queue",
		Flags:  []cli.Flag{batchIDFlag},
		Action: rebatch,
	}
	proofCommand = cli.Command{
		Name:   "proof",
		Usage:  "Print the inclusion proof of a token",
		Flags:  []cli.Flag{tokenIDFlag, sourceChainIDFlag},
		Action: printProof,
	}
)

func absPath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		log.Fatal("[MAIN] Error resolving path ", path, ": ", err)
	}
	return abs
}

func initApp(ctx *cli.Context) {
	app.InitConfig(absPath(ctx.String(configFlag.Name)), absPath(ctx.String(envFlag.Name)))
	app.InitLogger()
	app.InitDB()
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(app.Config.MongoDB.TimeoutMillis)*time.Millisecond)
}

func start(ctx *cli.Context) error {
	initApp(ctx)
	metrics.Register()

	relayer := NewRelayer()
	relayer.Start()

	gracefulStop := make(chan os.Signal, 1)
	done := make(chan bool, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	go waitForExitSignals(gracefulStop, done)
	<-done

	log.Debug("[MAIN] Gracefully shutting down relayer...")
	relayer.Stop()
	if err := app.DB.Disconnect(); err != nil {
		log.Error("[MAIN] Error disconnecting database: ", err)
	}
	log.Info("[MAIN] Relayer gracefully stopped")
	return nil
}

func waitForExitSignals(gracefulStop chan os.Signal, done chan bool) {
	sig := <-gracefulStop
	log.Debug("[MAIN] Got signal: ", sig)
	done <- true
}

func retryBatch(ctx *cli.Context) error {
	initApp(ctx)
	defer app.DB.Disconnect()

	cmdCtx, cancel := commandContext()
	defer cancel()

	return batch.RetryBatch(cmdCtx, ctx.String(batchIDFlag.Name))
}

func rebatch(ctx *cli.Context) error {
	initApp(ctx)
	defer app.DB.Disconnect()

	cmdCtx, cancel := commandContext()
	defer cancel()

	released, err := batch.Rebatch(cmdCtx, ctx.String(batchIDFlag.Name))
	if err != nil {
		return err
	}
	fmt.Printf("returned %d events to the pending queue\n", released)
	return nil
}

func printProof(ctx *cli.Context) error {
	initApp(ctx)
	defer app.DB.Disconnect()

	cmdCtx, cancel := commandContext()
	defer cancel()

	proofs, err := proof.NewService(1)
	if err != nil {
		return err
	}
	p, err := proofs.GetProof(cmdCtx, ctx.String(sourceChainIDFlag.Name), ctx.String(tokenIDFlag.Name))
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
