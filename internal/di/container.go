package di

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"hintkit/internal/adapter/host"
	"hintkit/internal/application/port/input"
	"hintkit/internal/application/port/output"
	"hintkit/internal/application/service"
	"hintkit/internal/infrastructure/browser/htmldom"
	"hintkit/internal/infrastructure/browser/rod"
	"hintkit/internal/infrastructure/config"
	"hintkit/internal/infrastructure/logger"
	"hintkit/internal/usecase/hints"
	"hintkit/internal/usecase/pageops"
)

type Container struct {
	DOM        output.DOMPort
	Browser    output.BrowserPort
	Logger     output.LoggerPort
	Engine     input.HintEngine
	PageOps    input.PageOps
	Commands   output.CommandRegistry
	Dispatcher *host.Dispatcher
}

type Config struct {
	Settings config.Config
	// HTMLFile selects the static backend. Without it a browser is launched.
	HTMLFile string
	URL      string
	Session  string
}

func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(cfg.Session, cfg.Settings.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return newContainer(ctx, cfg, log)
}

func newContainer(ctx context.Context, cfg Config, log output.LoggerPort) (*Container, error) {
	c := &Container{Logger: log}

	if cfg.HTMLFile != "" {
		page, err := openStatic(cfg.HTMLFile)
		if err != nil {
			log.Close()
			return nil, err
		}
		c.DOM = page
		log.Info("Static page loaded", "file", cfg.HTMLFile)
	} else {
		browser, err := rod.NewBrowserAdapter(ctx, cfg.Settings.Browser)
		if err != nil {
			log.Close()
			return nil, fmt.Errorf("failed to create browser: %w", err)
		}
		c.DOM, c.Browser = browser, browser
		if cfg.URL != "" {
			if err := browser.Navigate(ctx, cfg.URL); err != nil {
				c.Close()
				return nil, fmt.Errorf("failed to open %s: %w", cfg.URL, err)
			}
			log.Info("Page opened", "url", browser.CurrentURL())
		}
	}

	engine := hints.New(c.DOM, log)
	ops := pageops.New(c.DOM, log)
	commands := service.NewCommandRegistry()
	host.RegisterCommands(commands, host.Deps{
		Engine:     engine,
		Ops:        ops,
		DOM:        c.DOM,
		Defaults:   cfg.Settings.Hints,
		ScrollStep: float64(cfg.Settings.ScrollStep),
		Logger:     log,
	})

	c.Engine = engine
	c.PageOps = ops
	c.Commands = commands
	c.Dispatcher = host.NewDispatcher(commands, log)
	return c, nil
}

func openStatic(path string) (*htmldom.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	doc, err := htmldom.Parse(f, htmldom.WithBaseURL("file://"+filepath.ToSlash(abs)))
	if err != nil {
		return nil, err
	}
	return htmldom.NewPage(doc), nil
}

func (c *Container) Close() {
	if c.Browser != nil {
		c.Browser.Close()
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}
