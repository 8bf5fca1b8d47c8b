package sandbox

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
)

var (
	pwOnce     sync.Once
	pwInstance *playwright.Playwright
	pwErr      error
)

// runDriver installs and starts the shared Playwright driver on first use.
// Browser downloads are skipped: sessions run remotely, only the driver
// binary is needed to speak CDP.
func runDriver() (*playwright.Playwright, error) {
	pwOnce.Do(func() {
		opts := &playwright.RunOptions{
			SkipInstallBrowsers: true,
			Verbose:             false,
			Stdout:              io.Discard,
			Stderr:              io.Discard,
		}

		if err := playwright.Install(opts); err != nil {
			pwErr = fmt.Errorf("failed to install playwright: %w", err)
			return
		}

		pw, err := playwright.Run(opts)
		if err != nil {
			pwErr = fmt.Errorf("failed to start playwright: %w", err)
			return
		}

		pwInstance = pw
	})
	return pwInstance, pwErr
}

// Attach connects a Playwright Chromium driver to a running browser session
// over CDP, using the WebSocket URL and signed header set from
// BrowserClient.GenerateWSHeaders. Playwright owns the protocol from here;
// callers drive the session through the returned browser and Close it when
// done. Closing the browser detaches from the session without stopping it.
//
// The signed headers expire shortly after generation, so attach promptly
// after fetching them.
func Attach(ctx context.Context, wsURL string, headers map[string]string) (playwright.Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pw, err := runDriver()
	if err != nil {
		return nil, err
	}

	opts := playwright.BrowserTypeConnectOverCDPOptions{
		Headers: headers,
	}
	if deadline, ok := ctx.Deadline(); ok {
		timeout := float64(time.Until(deadline).Milliseconds())
		opts.Timeout = &timeout
	}

	browser, err := pw.Chromium.ConnectOverCDP(wsURL, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect over CDP: %w", err)
	}

	return browser, nil
}

// StopDriver stops the shared Playwright driver if Attach ever started it.
// Safe to call when Attach was never used. Attached browsers must be closed
// first.
func StopDriver() error {
	if pwInstance == nil {
		return nil
	}
	if err := pwInstance.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright: %w", err)
	}
	return nil
}
