// Command led-hearth drives an LED campfire: a PCA9685-driven ember and
// flame strip, a single button for adjusting remaining burn time, MQTT
// event publishing, and an HTTP status page.
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

	"github.com/kvkontin/led-hearth/internal/gpio"
	"github.com/kvkontin/led-hearth/internal/hearth"
	"github.com/kvkontin/led-hearth/internal/led"
	"github.com/kvkontin/led-hearth/internal/mqtt"
	"github.com/kvkontin/led-hearth/internal/status"
	"github.com/kvkontin/led-hearth/internal/web"
)

// options collects everything main resolves from flags. Press thresholds,
// wave shapes and the extinguish rate are compile-time constants in the
// hearth package, not flags.
type options struct {
	poll       time.Duration
	idlePoll   time.Duration
	hours      float64
	flames     int
	pinButton  int
	broker     string
	heartbeat  time.Duration
	i2cBus     string
	i2cAddr    uint16
	httpAddr   string
	printState bool
}

func main() {
	poll := flag.Duration("poll", 20*time.Millisecond, "Button/render polling interval")
	idlePoll := flag.Duration("idle-poll", 500*time.Millisecond, "Polling interval once burned out")
	hours := flag.Float64("hours", 4, "Total burn time in hours")
	flames := flag.Int("flames", 6, "Number of flame outputs (excluding the ember)")
	pinButton := flag.Int("pin-button", gpio.DefaultPinButton, "BCM pin number for the button")
	broker := flag.String("broker", "tcp://192.168.1.200:1883", `MQTT broker address ("off" disables publishing)`)
	heartbeat := flag.Duration("heartbeat", 15*time.Minute, "Heartbeat interval (0 to disable)")
	i2cBus := flag.String("i2c", "", "I2C bus name (empty picks the first available)")
	i2cAddr := flag.Uint("i2c-addr", 0x40, "PCA9685 I2C address")
	httpAddr := flag.String("http", ":8080", "HTTP status address (empty to disable)")
	printState := flag.Bool("print-state", false, "Print current button state and exit")

	flag.Parse()

	opts := options{
		poll:       *poll,
		idlePoll:   *idlePoll,
		hours:      *hours,
		flames:     *flames,
		pinButton:  *pinButton,
		broker:     *broker,
		heartbeat:  *heartbeat,
		i2cBus:     *i2cBus,
		i2cAddr:    uint16(*i2cAddr),
		httpAddr:   *httpAddr,
		printState: *printState,
	}
	if err := run(opts); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(opts options) error {
	// Initialize GPIO
	button, err := gpio.NewRealReader(opts.pinButton)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer button.Close()

	// Print state mode
	if opts.printState {
		pressed, err := button.Read()
		if err != nil {
			return fmt.Errorf("read gpio: %w", err)
		}
		if pressed {
			fmt.Println("button: PRESSED")
		} else {
			fmt.Println("button: RELEASED")
		}
		return nil
	}

	// Initialize the LED strip
	strip, err := led.NewPCA9685Strip(opts.i2cBus, opts.i2cAddr, opts.flames)
	if err != nil {
		return fmt.Errorf("init led strip: %w", err)
	}
	defer strip.Close()

	// Initialize MQTT
	var publisher mqtt.Publisher
	var mqttStatus mqtt.ConnectionStatus
	if opts.broker != "" && opts.broker != "off" {
		real := mqtt.NewRealPublisher(opts.broker)
		defer real.Close()
		publisher = real
		mqttStatus = real
	}

	// Initialize status tracker (before STARTUP so snapshot is available)
	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:      opts.poll.Milliseconds(),
		IdlePollMs:  opts.idlePoll.Milliseconds(),
		HeartbeatMs: opts.heartbeat.Milliseconds(),
		LifeHours:   opts.hours,
		FlameCount:  opts.flames,
		Broker:      opts.broker,
		HTTPAddr:    opts.httpAddr,
	})
	if net := readNetworkInfo(); net != nil {
		tracker.SetNetwork(net)
	}

	// Publish startup event with full status snapshot
	if publisher != nil {
		snap := tracker.Snapshot()
		startupEvent := mqtt.SystemEvent{
			Timestamp:  snap.Now,
			Event:      "STARTUP",
			Retained:   true,
			RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
		}
		if err := publisher.PublishSystem(startupEvent); err != nil {
			log.Printf("failed to publish startup event: %v", err)
		} else {
			log.Printf("published startup event")
		}
	}

	// Start HTTP status server
	if opts.httpAddr != "" {
		srv := web.New(opts.httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", opts.httpAddr)
	}

	log.Printf("started: poll=%v hours=%.1f flames=%d broker=%s heartbeat=%v",
		opts.poll, opts.hours, opts.flames, opts.broker, opts.heartbeat)

	ticker := time.NewTicker(opts.poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	engine := hearth.NewEngine(
		hearth.DefaultConfig(time.Duration(opts.hours*float64(time.Hour)), opts.flames),
		time.Now(),
	)

	lc := loopConfig{
		poll:      opts.poll,
		idlePoll:  opts.idlePoll,
		heartbeat: opts.heartbeat,
	}
	return runLoop(button, strip, publisher, mqttStatus, tracker, engine, lc,
		time.Now, ticker.C, sigCh, ticker.Reset)
}

// loopConfig carries the timing knobs runLoop needs.
type loopConfig struct {
	poll      time.Duration
	idlePoll  time.Duration
	heartbeat time.Duration
}

func runLoop(button gpio.Reader, strip led.Strip, publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, engine *hearth.Engine, cfg loopConfig, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal, setPoll func(time.Duration)) error {
	idle := false

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}
			event := mqtt.SystemEvent{
				Timestamp: now(),
				Event:     "SHUTDOWN",
				Reason:    signalName,
				Retained:  true,
			}
			if tracker != nil {
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
				snap := tracker.Snapshot()
				event.RawPayload = status.FormatStatusEvent(snap, "SHUTDOWN", signalName)
			}
			if publisher != nil {
				if err := publisher.PublishSystem(event); err != nil {
					log.Printf("failed to publish shutdown event: %v", err)
				} else {
					log.Printf("published shutdown event")
				}
			}
			return nil

		case <-tick:
			t := now()
			pressed, err := button.Read()
			if err != nil {
				log.Printf("gpio read error: %v", err)
				continue
			}

			frame, events := engine.Tick(hearth.Input{Pressed: pressed, Time: t})

			for _, event := range events {
				log.Printf("event: %s (mode=%s progress=%.3f)", event.Type, event.Mode, event.Progress)
				if publisher != nil {
					if err := publisher.Publish(event); err != nil {
						log.Printf("publish error: %v", err)
						// Don't crash on publish failure
					}
				}
			}

			if err := strip.Render(frame); err != nil {
				log.Printf("strip render error: %v", err)
			}

			// Slow the poll once the fire has burned out. Power saving only:
			// all timing is measured against the clock, so a longer delay
			// never skews the simulation.
			if wantIdle := engine.Done(); wantIdle != idle {
				idle = wantIdle
				if idle {
					setPoll(cfg.idlePoll)
				} else {
					setPoll(cfg.poll)
				}
			}

			// Check for heartbeat
			if hb := engine.CheckHeartbeat(t, cfg.heartbeat); hb != nil {
				log.Printf("heartbeat: uptime=%v mode=%s progress=%.3f short=%d long=%d rewinds=%d",
					hb.Uptime, hb.Mode, hb.Progress, hb.Counts.ShortPresses, hb.Counts.LongHolds, hb.Counts.Rewinds)

				hbEvent := mqtt.SystemEvent{
					Timestamp: hb.Timestamp,
					Event:     "HEARTBEAT",
				}
				if tracker != nil {
					if mqttStatus != nil {
						tracker.SetMQTTConnected(mqttStatus.IsConnected())
					}
					// Refresh network info for heartbeat
					if net := readNetworkInfo(); net != nil {
						tracker.SetNetwork(net)
					}
					tracker.Update(engine.Mode(), engine.Progress(), engine.Done(), engine.CountsSnapshot())
					snap := tracker.Snapshot()
					hbEvent.RawPayload = status.FormatStatusEvent(snap, "HEARTBEAT", "")
				}
				if publisher != nil {
					if err := publisher.PublishSystem(hbEvent); err != nil {
						log.Printf("heartbeat publish error: %v", err)
					}
				}
			}

			// Update status tracker for HTTP consumers
			if tracker != nil {
				tracker.Update(engine.Mode(), engine.Progress(), engine.Done(), engine.CountsSnapshot())
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
			}
		}
	}
}

// pi-helper env var names (written to /run/pi-helper.env).
const (
	envNetworkType       = "NETWORK_TYPE"
	envNetworkIP         = "NETWORK_IP"
	envNetworkStatus     = "NETWORK_STATUS"
	envNetworkGateway    = "NETWORK_GATEWAY"
	envNetworkWifiStatus = "NETWORK_WIFI_STATUS"
	envNetworkWifiSSID   = "NETWORK_WIFI_SSID"
)

func readNetworkInfo() *status.NetworkInfo {
	s := os.Getenv(envNetworkStatus)
	if s == "" {
		return nil
	}
	return &status.NetworkInfo{
		Type:       os.Getenv(envNetworkType),
		IP:         os.Getenv(envNetworkIP),
		Status:     s,
		Gateway:    os.Getenv(envNetworkGateway),
		WifiStatus: os.Getenv(envNetworkWifiStatus),
		SSID:       os.Getenv(envNetworkWifiSSID),
	}
}
