package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dialogs/gcm-message/pkg/info"
	"github.com/dialogs/gcm-message/pkg/logger"
	"github.com/dialogs/gcm-message/renderer"
	"github.com/jessevdk/go-flags"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var opts struct {
	ConfigLocation string `short:"c" long:"config" description:"Config file location"`
	Input          string `short:"i" long:"input" description:"File with json messages (default: stdin)"`
	Format         string `short:"f" long:"format" description:"Output format: wire or fcm"`
	Debug          bool   `long:"debug" description:"Debug logging"`
	Version        bool   `long:"version" description:"Print version and exit"`
}

func main() {

	if _, err := flags.ParseArgs(&opts, os.Args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		log.Fatal("failed to parse arguments:", err)
	}

	if opts.Version {
		fmt.Println(info.New("gcm-message"))
		return
	}

	l, err := logger.New(opts.Debug)
	if err != nil {
		log.Fatal("failed to create logger:", err)
	}
	defer func() { _ = l.Sync() }()

	v := viper.New()
	if opts.ConfigLocation != "" {
		v.SetConfigFile(opts.ConfigLocation)
		if err := v.ReadInConfig(); err != nil {
			l.Fatal("failed to read config", zap.Error(err))
		}
	}

	if opts.Format != "" {
		v.Set("format", opts.Format)
	}

	cfg, err := renderer.NewConfig(v)
	if err != nil {
		l.Fatal("failed to parse config", zap.Error(err))
	}

	var in io.Reader = os.Stdin
	if opts.Input != "" {
		f, err := os.Open(opts.Input)
		if err != nil {
			l.Fatal("failed to open input", zap.Error(err))
		}
		defer f.Close()

		in = f
	}

	count, err := renderer.New(cfg, l).Render(in, os.Stdout)
	if err != nil {
		l.Fatal("failed to render", zap.Int("rendered", count), zap.Error(err))
	}

	l.Debug("done", zap.Int("rendered", count))
}
