// Command clockdemo wires a Clock end to end, demonstrating either the live
// or the test variant; CLOCK_TEST_CLOCK=1 selects the test variant.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/makeroftools/nautilus-trader/clock"
	"github.com/makeroftools/nautilus-trader/component"
	"github.com/makeroftools/nautilus-trader/config"
	"github.com/makeroftools/nautilus-trader/label"
	"github.com/makeroftools/nautilus-trader/tradelog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := tradelog.New(cfg.DefaultLogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.UseTestClock {
		runTestClockDemo(cfg, logger)
		return
	}
	runLiveClockDemo(logger)
}

func runLiveClockDemo(logger *tradelog.Logger) {
	c := clock.NewLiveClock()
	c.RegisterLogger(logger)

	trader := component.NewTrader(c)
	trader.AddDataClient(component.NewDataClient("primary"))

	ctx := context.Background()
	if err := trader.Start(ctx); err != nil {
		logger.Warning("failed to start trader: " + err.Error())
		os.Exit(1)
	}
	defer trader.Stop(ctx)

	done := make(chan struct{})
	err := c.SetTimer(label.MustNew("heartbeat"), 200*time.Millisecond, nil, nil, func(e clock.TimeEvent) {
		logger.Info("heartbeat at " + e.Timestamp.Format(time.RFC3339Nano))
	})
	if err != nil {
		logger.Warning(err.Error())
		os.Exit(1)
	}

	alertTime := time.Now().UTC().Add(1100 * time.Millisecond)
	err = c.SetTimeAlert(label.MustNew("shutdown"), alertTime, func(clock.TimeEvent) {
		close(done)
	})
	if err != nil {
		logger.Warning(err.Error())
		os.Exit(1)
	}

	<-done
}

func runTestClockDemo(cfg config.ClockConfig, logger *tradelog.Logger) {
	epoch := cfg.TestClockEpoch
	if epoch.IsZero() {
		epoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	tc := clock.NewTestClockAt(epoch)
	tc.RegisterLogger(logger)

	if err := tc.SetTimeAlert(label.MustNew("a"), epoch.Add(2*time.Second), func(e clock.TimeEvent) {
		logger.Info("fired a at " + e.Timestamp.String())
	}); err != nil {
		logger.Warning(err.Error())
		os.Exit(1)
	}

	stop := epoch.Add(9 * time.Second)
	err := tc.SetTimer(label.MustNew("b"), 3*time.Second, &epoch, &stop, func(e clock.TimeEvent) {
		logger.Info("fired b at " + e.Timestamp.String())
	})
	if err != nil {
		logger.Warning(err.Error())
		os.Exit(1)
	}

	tc.AdvanceTime(epoch.Add(7 * time.Second))
}
