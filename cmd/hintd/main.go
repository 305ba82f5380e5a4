package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"hintkit/internal/di"
	"hintkit/internal/domain/entity"
	"hintkit/internal/infrastructure/config"
	"hintkit/internal/infrastructure/env"
	"hintkit/internal/infrastructure/userinteraction"
)

func main() {
	htmlFile := flag.String("html", "", "serve a static HTML file instead of launching a browser")
	url := flag.String("url", "", "page to open in the browser")
	flag.Parse()

	envService, err := env.NewEnvService()
	if err != nil {
		log.Fatalf("env: %v", err)
	}
	settings, err := config.Load(envService)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := *htmlFile
	if session == "" {
		session = *url
	}
	container, err := di.NewContainer(ctx, di.Config{
		Settings: settings,
		HTMLFile: *htmlFile,
		URL:      *url,
		Session:  session,
	})
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer container.Close()

	container.Logger.Info("Host started", "env", envService.AppEnv(), "env_files", envService.Loaded())
	console := userinteraction.NewConsole()
	console.ShowInfo(ctx, "hintkit ready, type help for commands")

	for {
		line, err := console.ReadCommand(ctx)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
				container.Logger.Error("Reading input failed", "error", err)
				fmt.Fprintln(os.Stderr, err)
			}
			return
		}
		if line == "quit" || line == "exit" {
			return
		}

		name, _, _ := strings.Cut(line, " ")
		result, err := container.Dispatcher.Dispatch(ctx, line)
		if err != nil {
			console.ShowResult(ctx, name, err.Error(), true)
		}
		if result != "" {
			console.ShowResult(ctx, name, result, false)
		}
		if container.Engine.Active() {
			console.ShowHints(ctx, container.Engine.Records())
		} else if status, err := entity.ParseStatus(result); err == nil && status.Terminal() {
			console.ShowInfo(ctx, "hint mode left")
		}
	}
}
