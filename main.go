package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vigenere-translator/config"
	"vigenere-translator/crypto"
	"vigenere-translator/handlers"
	"vigenere-translator/logging"
	"vigenere-translator/shell"
)

func main() {
	cmd := "shell"
	args := os.Args[1:]
	if len(args) > 0 && (args[0] == "shell" || args[0] == "serve" || args[0] == "translate") {
		cmd, args = args[0], args[1:]
	}

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML configuration file")
	envFile := fs.String("env", ".env", "path to .env file (ignored if missing)")
	key := fs.String("key", "", "cipher key, digits or letters (overrides config)")
	alphabet := fs.String("alphabet", "", "cipher alphabet (overrides config)")
	mode := fs.String("mode", "", "encrypt or decrypt (overrides config)")
	input := fs.String("in", "", "translate: input file (default stdin)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vigenere [shell|serve|translate] [flags]\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  shell      Interactive menu (default)\n  serve      HTTP API\n  translate  Translate a file or stdin once\n")
	}
	_ = fs.Parse(args)

	if err := config.LoadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *key != "" {
		cfg.Key = *key
	}
	if *alphabet != "" {
		cfg.Alphabet = *alphabet
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	switch cmd {
	case "serve":
		err = runServer(cfg)
	case "translate":
		err = runTranslate(cfg, *input)
	default:
		err = runShell(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runShell(cfg config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	mode, _ := crypto.ParseMode(cfg.Mode)
	s := shell.New(os.Stdin, os.Stdout).WithMode(mode)
	if cfg.Key != "" {
		t, err := crypto.NewTranslatorWithAlphabet(cfg.Key, cfg.Alphabet)
		if err != nil {
			return err
		}
		s.WithTranslator(t)
	}

	err := s.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runTranslate(cfg config.Config, path string) error {
	if cfg.Key == "" {
		return fmt.Errorf("translate: a key is required (-key, config or ${VIGENERE_KEY} in the config file)")
	}
	t, err := crypto.NewTranslatorWithAlphabet(cfg.Key, cfg.Alphabet)
	if err != nil {
		return err
	}
	mode, err := crypto.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	in := os.Stdin
	if path != "" {
		f, err := os.Open(path) //nolint:gosec // path is a caller-provided input file
		if err != nil {
			return fmt.Errorf("translate: %w", err)
		}
		defer f.Close()
		in = f
	}

	return shell.Batch(in, os.Stdout, t, mode)
}

func runServer(cfg config.Config) error {
	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Key == "" {
		return fmt.Errorf("serve: a key is required (-key or config)")
	}
	translator, err := crypto.NewTranslatorWithAlphabet(cfg.Key, cfg.Alphabet)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(logging.RequestLogger(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.AllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	translatorHandler := handlers.NewTranslatorHandler(translator, logger)

	// API Routes
	translatorHandler.Register(router.Group("/api/v1"))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.Int("port", cfg.Server.Port),
			zap.Int("alphabet_length", len([]rune(cfg.Alphabet))),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}
