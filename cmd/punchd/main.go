// Punchd — the punch-strength arcade controller.
//
// On a development machine the sensor is simulated: press enter to throw a
// 10g punch, or type a g-force value (e.g. "15.5") and press enter. Scores
// are announced through the host speakers when an audio device is available.
//
// Usage:
//
//	punchd [-verbose] [-quiet] [-mute] [-clips DIR]
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/AmaljithCf/punch-strength-arcade/internal/arcade"
	"github.com/AmaljithCf/punch-strength-arcade/internal/audio"
	"github.com/AmaljithCf/punch-strength-arcade/internal/clips"
	"github.com/AmaljithCf/punch-strength-arcade/internal/config"
	"github.com/AmaljithCf/punch-strength-arcade/internal/detect"
	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
	"github.com/AmaljithCf/punch-strength-arcade/internal/logger"
	"github.com/AmaljithCf/punch-strength-arcade/internal/output"
	"github.com/AmaljithCf/punch-strength-arcade/internal/sensor"
	"github.com/AmaljithCf/punch-strength-arcade/internal/speech"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	mute := flag.Bool("mute", false, "discard audio output instead of playing it")
	clipDir := flag.String("clips", "", "clip directory (overrides "+config.EnvClipDir+")")
	flag.Parse()

	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}
	log := logger.New(logLevel, os.Stderr)

	cfg := config.FromEnv()
	if *clipDir != "" {
		cfg.ClipDir = *clipDir
	}

	// Clip library: recorded assets when present, synthesized tones
	// otherwise so the machine is always audible.
	var library domain.ClipLibrary
	lib, err := clips.LoadDir(cfg.ClipDir, log)
	if err != nil {
		log.Warn("clip dir %s unusable (%v), falling back to tones", cfg.ClipDir, err)
		library = clips.SynthesizedLibrary(log)
	} else {
		library = lib
	}

	// Pulse output: host speakers via oto, or a discard sink.
	var pulse domain.PulseWriter = output.Discard{}
	if !*mute {
		speaker, err := output.NewSpeaker(log)
		if err != nil {
			log.Warn("no audio device (%v), output muted", err)
		} else {
			defer speaker.Close()
			pulse = speaker
		}
	}

	clock := domain.SystemClock{}
	engine := audio.New(pulse, clock, log)
	announcer := speech.New(library, engine, output.NewLogAmp(log), clock, log)
	detector := detect.New(log,
		detect.WithThreshold(cfg.Threshold),
		detect.WithSampleWindow(cfg.SampleWindow),
		detect.WithCooldown(cfg.Cooldown),
	)

	sim := sensor.NewSim(log)
	controller := arcade.New(sim, detector, announcer, clock, log,
		arcade.WithPollInterval(cfg.PollInterval),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go readPunches(ctx, sim, log)

	fmt.Println("punchd ready — press enter to punch, or type a g-force value")
	if err := controller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("controller: %v", err)
		os.Exit(1)
	}
}

// readPunches feeds stdin into the simulated sensor: an empty line throws a
// standard 10g punch, a number throws that g-force.
func readPunches(ctx context.Context, sim *sensor.Sim, log *logger.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		g := 10.0
		if line != "" {
			parsed, err := strconv.ParseFloat(line, 64)
			if err != nil {
				log.Warn("not a g-force value: %q", line)
				continue
			}
			g = parsed
		}
		sim.Trigger(g)
	}
}
