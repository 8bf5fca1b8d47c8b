// Package main provides the agentcore smoke CLI for exercising remote
// sandbox sessions. It drives a full browser or code interpreter session
// lifecycle through the ToolSpec adapter and prints each operation's result.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/entrhq/agentcore/pkg/config"
	"github.com/entrhq/agentcore/pkg/logging"
	"github.com/entrhq/agentcore/pkg/sandbox"
	"github.com/entrhq/agentcore/pkg/tools/agentcore"
)

const version = "0.1.0"

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigFile  string
	Region      string
	Endpoint    string
	Browser     bool
	Interpreter bool
	Code        string
	Attach      bool
	ViewExpires int
	Timeout     time.Duration
	ShowVersion bool
}

func main() {
	// Parse command line flags
	cliConfig := parseFlags()

	// Show version if requested
	if cliConfig.ShowVersion {
		fmt.Printf("agentcore v%s\n", version)
		return
	}

	// Create context with signal handling
	ctx, cancel := context.WithCancel(context.Background())

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nShutting down gracefully...")
		cancel()
	}()

	if err := run(ctx, cliConfig); err != nil {
		cancel() // Cancel context before exiting
		log.Printf("Execution failed: %v", err)
		os.Exit(1)
	}
	cancel() // Clean up context on success
}

// parseFlags parses command line flags
func parseFlags() *CLIConfig {
	cliConfig := &CLIConfig{}

	flag.StringVar(&cliConfig.ConfigFile, "config", "", "Path to configuration file (YAML)")
	flag.StringVar(&cliConfig.Region, "region", "", "AWS region (overrides config and environment)")
	flag.StringVar(&cliConfig.Endpoint, "endpoint", "", "Service endpoint (overrides config and environment)")
	flag.BoolVar(&cliConfig.Browser, "browser", false, "Run the browser session lifecycle")
	flag.BoolVar(&cliConfig.Interpreter, "interpreter", false, "Run the code interpreter session lifecycle")
	flag.StringVar(&cliConfig.Code, "code", `print("hello from the sandbox")`, "Code to execute in the interpreter session")
	flag.BoolVar(&cliConfig.Attach, "attach", false, "Attach Playwright over CDP to the browser session")
	flag.IntVar(&cliConfig.ViewExpires, "view-expires", 0, "Live view URL expiry in seconds (0 uses the configured default)")
	flag.DurationVar(&cliConfig.Timeout, "timeout", 2*time.Minute, "Overall execution timeout")
	flag.BoolVar(&cliConfig.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "agentcore - Remote Sandbox Session Smoke CLI\n\n")
		fmt.Fprintf(os.Stderr, "Usage: agentcore [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Browser session lifecycle\n")
		fmt.Fprintf(os.Stderr, "  agentcore -browser\n\n")
		fmt.Fprintf(os.Stderr, "  # Browser session with a live CDP attach\n")
		fmt.Fprintf(os.Stderr, "  agentcore -browser -attach\n\n")
		fmt.Fprintf(os.Stderr, "  # Execute code in an interpreter session\n")
		fmt.Fprintf(os.Stderr, "  agentcore -interpreter -code \"print(40 + 2)\"\n\n")
		fmt.Fprintf(os.Stderr, "  # Both lifecycles with a config file\n")
		fmt.Fprintf(os.Stderr, "  agentcore -config agentcore.yaml -browser -interpreter\n\n")
	}

	flag.Parse()
	return cliConfig
}

// run drives the requested session lifecycles
func run(ctx context.Context, cliConfig *CLIConfig) error {
	if !cliConfig.Browser && !cliConfig.Interpreter {
		flag.Usage()
		return fmt.Errorf("at least one of -browser or -interpreter is required")
	}

	cfg, err := loadConfig(cliConfig)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, logErr := logging.NewLogger("cli")
	if logErr != nil {
		log.Printf("File logging unavailable: %v", logErr)
	}
	defer func() {
		_ = logger.Close()
	}()

	// Build the session clients once; the CLI keeps direct references so
	// the CDP attach can reuse the raw WebSocket endpoint and headers.
	clientOpts := []sandbox.Option{
		sandbox.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		}),
	}
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, sandbox.WithEndpoint(cfg.Endpoint))
	}

	browserClient := sandbox.NewBrowserClient(cfg.Region, clientOpts...)
	interpreterClient := sandbox.NewCodeInterpreter(cfg.Region, clientOpts...)

	spec := agentcore.New(agentcore.Config{
		Region:      cfg.Region,
		Browser:     browserClient,
		Interpreter: interpreterClient,
	})

	// Apply timeout if specified
	if cliConfig.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cliConfig.Timeout)
		defer cancel()
	}

	logger.Infof("session %s starting, region %s", logger.SessionID(), spec.Region())
	fmt.Printf("Region: %s\n", spec.Region())

	if cliConfig.Browser {
		if err := runBrowser(ctx, spec, browserClient, cfg, cliConfig, logger); err != nil {
			return err
		}
	}

	if cliConfig.Interpreter {
		if err := runInterpreter(ctx, spec, cfg, cliConfig, logger); err != nil {
			return err
		}
	}

	logger.Infof("all requested lifecycles completed")
	return nil
}

// loadConfig loads configuration from file or environment, then applies
// CLI overrides
func loadConfig(cliConfig *CLIConfig) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if cliConfig.ConfigFile != "" {
		cfg, err = config.Load(cliConfig.ConfigFile)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		return nil, err
	}

	if cliConfig.Region != "" {
		cfg.Region = cliConfig.Region
	}
	if cliConfig.Endpoint != "" {
		cfg.Endpoint = cliConfig.Endpoint
	}

	return cfg, nil
}

// runBrowser exercises the full browser session lifecycle: start, ws-headers,
// live view, control hand-off, optional CDP attach, stop.
func runBrowser(ctx context.Context, spec *agentcore.ToolSpec, client *sandbox.BrowserClient, cfg *config.Config, cliConfig *CLIConfig, logger *logging.Logger) error {
	msg, err := spec.StartBrowser(ctx, cfg.Browser.Identifier, "", cfg.Browser.SessionTimeoutSeconds)
	if err != nil {
		return fmt.Errorf("browser start failed: %w", err)
	}
	fmt.Println(msg)
	logger.Infof("browser session %s started", client.SessionID())

	// Stop the session on the way out, even when a later step fails
	defer func() {
		stopMsg, stopErr := spec.StopBrowser(context.Background())
		if stopErr != nil {
			logger.Errorf("browser stop failed: %v", stopErr)
			fmt.Fprintf(os.Stderr, "browser stop failed: %v\n", stopErr)
			return
		}
		fmt.Println(stopMsg)
	}()

	headersMsg, err := spec.GenerateWSHeaders(ctx)
	if err != nil {
		return fmt.Errorf("ws headers failed: %w", err)
	}
	fmt.Println(headersMsg)

	expires := cliConfig.ViewExpires
	if expires == 0 {
		expires = cfg.Browser.ViewExpirySeconds
	}
	viewMsg, err := spec.GenerateLiveViewURL(ctx, expires)
	if err != nil {
		return fmt.Errorf("live view failed: %w", err)
	}
	fmt.Println(viewMsg)

	controlMsg, err := spec.TakeControl(ctx)
	if err != nil {
		return fmt.Errorf("take control failed: %w", err)
	}
	fmt.Println(controlMsg)

	releaseMsg, err := spec.ReleaseControl(ctx)
	if err != nil {
		return fmt.Errorf("release control failed: %w", err)
	}
	fmt.Println(releaseMsg)

	if cliConfig.Attach {
		if err := attachBrowser(ctx, client, logger); err != nil {
			return err
		}
	}

	return nil
}

// attachBrowser connects Playwright to the running browser session over CDP
// and reports what it finds.
func attachBrowser(ctx context.Context, client *sandbox.BrowserClient, logger *logging.Logger) error {
	wsURL, headers, err := client.GenerateWSHeaders(ctx)
	if err != nil {
		return fmt.Errorf("ws headers failed: %w", err)
	}

	browser, err := sandbox.Attach(ctx, wsURL, headers)
	if err != nil {
		return fmt.Errorf("CDP attach failed: %w", err)
	}
	defer func() {
		if closeErr := browser.Close(); closeErr != nil {
			logger.Warnf("browser close failed: %v", closeErr)
		}
		if stopErr := sandbox.StopDriver(); stopErr != nil {
			logger.Warnf("driver stop failed: %v", stopErr)
		}
	}()

	fmt.Printf("Attached over CDP: browser version %s, %d context(s)\n",
		browser.Version(), len(browser.Contexts()))
	logger.Infof("attached over CDP, browser version %s", browser.Version())

	return nil
}

// runInterpreter exercises the code interpreter lifecycle: start, execute,
// stop.
func runInterpreter(ctx context.Context, spec *agentcore.ToolSpec, cfg *config.Config, cliConfig *CLIConfig, logger *logging.Logger) error {
	msg, err := spec.StartCodeInterpreter(ctx, cfg.Interpreter.Identifier, "", cfg.Interpreter.SessionTimeoutSeconds)
	if err != nil {
		return fmt.Errorf("interpreter start failed: %w", err)
	}
	fmt.Println(msg)

	defer func() {
		stopMsg, stopErr := spec.StopCodeInterpreter(context.Background())
		if stopErr != nil {
			logger.Errorf("interpreter stop failed: %v", stopErr)
			fmt.Fprintf(os.Stderr, "interpreter stop failed: %v\n", stopErr)
			return
		}
		fmt.Println(stopMsg)
	}()

	result, err := spec.ExecuteCode(ctx, "", map[string]any{
		"code":     cliConfig.Code,
		"language": "python",
	})
	if err != nil {
		return fmt.Errorf("code execution failed: %w", err)
	}
	fmt.Println(result)

	return nil
}
