// Command ant-colony runs the colony simulation in a terminal viewer or headless
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/ant-colony/audio"
	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/sim"
	"github.com/lixenwraith/ant-colony/system"
)

type options struct {
	configPath string
	logPath    string
	seed       int64
	speed      int
	colonies   int
	ticks      int
	headless   bool
	debug      bool
	mute       bool
	dumpConfig bool
}

func parseFlags(args []string) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("ant-colony", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "TOML settings file")
	fs.StringVar(&o.logPath, "log", filepath.Join(logDir, logFileName), `log file, "-" for stderr, "" to disable`)
	fs.Int64Var(&o.seed, "seed", -1, "random seed override")
	fs.IntVar(&o.speed, "speed", -1, "initial speed multiplier: 0, 1, 2 or 4")
	fs.IntVar(&o.colonies, "colonies", 0, "colony count override")
	fs.IntVar(&o.ticks, "ticks", 1200, "ticks to run in headless mode")
	fs.BoolVar(&o.headless, "headless", false, "run without the terminal viewer")
	fs.BoolVar(&o.debug, "debug", false, "enable the debug overlay and debug logging")
	fs.BoolVar(&o.mute, "mute", false, "disable sound")
	fs.BoolVar(&o.dumpConfig, "dump-config", false, "print effective settings as TOML and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

// settings loads the config file and applies flag overrides
func (o *options) settings() (*config.Settings, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if o.seed >= 0 {
		cfg.Sim.Seed = uint64(o.seed)
	}
	if o.speed >= 0 {
		cfg.Sim.Speed = o.speed
	}
	if o.colonies > 0 {
		cfg.Sim.Colonies = o.colonies
	}
	if o.mute || o.headless {
		cfg.Sim.Sound = false
	}
	return cfg, cfg.Validate()
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ant-colony: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := o.settings()
	if err != nil {
		return err
	}
	if o.dumpConfig {
		return cfg.Encode(os.Stdout)
	}

	logDest := o.logPath
	if o.headless && logDest == filepath.Join(logDir, logFileName) {
		logDest = "-"
	}
	logger, closer, err := setupLogging(logDest, o.debug)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sm *audio.SoundManager
	opts := sim.Options{Logger: logger}
	if cfg.Sim.Sound {
		sm = audio.NewSoundManager(parameter.AudioVolume)
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			defer sm.Cleanup()
		}
		opts.Player = sm
	}

	s, err := sim.New(cfg, opts)
	if err != nil {
		return err
	}
	if o.debug {
		s.Emit(event.EventSystemToggle, &event.SystemTogglePayload{SystemName: system.DebugSystemName, Enabled: true})
	}

	if o.headless {
		return runHeadless(ctx, s, o.ticks, logger)
	}
	return runViewer(ctx, s, sm, o.debug, logger)
}

// runHeadless steps the configured number of ticks and prints the final metrics
func runHeadless(ctx context.Context, s *sim.Sim, ticks int, logger *log.Logger) error {
	const chunk = 100
	for done := 0; done < ticks; {
		if err := ctx.Err(); err != nil {
			logger.Info("interrupted", "ticks", done)
			break
		}
		n := min(chunk, ticks-done)
		s.StepN(n)
		done += n
	}
	for _, m := range s.World.Resources.Status.Snapshot() {
		fmt.Printf("%s=%s\n", m.Key, m.Value)
	}
	return nil
}
