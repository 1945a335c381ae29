package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"maixlcd/pkg/demo"
	"maixlcd/pkg/device"
	"maixlcd/pkg/idle"
	"maixlcd/pkg/lcd"
	"maixlcd/pkg/picture"
)

var dev = flag.String("device", device.Virtual, "virtual, serial name or remote addr")
var asset = flag.String("asset", demo.DefaultAsset, "image path or url")
var width = flag.Int("width", 552, "virtual panel width")
var height = flag.Int("height", 368, "virtual panel height")
var interval = flag.Duration("interval", idle.DefaultInterval, "idle sleep per iteration")
var mirror = flag.Bool("mirror", false, "mirror the panel before drawing")
var clearAfter = flag.Bool("clear", false, "clear the panel after drawing")
var once = flag.Bool("once", false, "exit after printing the size")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment(zap.IncreaseLevel(levelFor(*debug)))
	defer func() { _ = logger.Sync() }()

	ctl, err := device.Open(*dev, *width, *height, logger)
	if err != nil {
		log.Fatal(err)
	}

	screen := lcd.New(ctl, logger)
	loader := picture.NewLoader(afero.NewOsFs(), logger).WithProgress(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = demo.Info(ctx, screen, loader, os.Stdout, demo.Options{
		Asset:    *asset,
		Interval: *interval,
		Logger:   logger,
		Mirror:   *mirror,
		Clear:    *clearAfter,
		Once:     *once,
	})

	if cerr := screen.Close(); cerr != nil {
		logger.With(zap.Error(cerr)).Info("shutdown failed")
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.With(zap.Error(err)).Fatal("info demo failed")
	}
}
