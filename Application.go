package main

import (
	"Dodgeball/core"
	"Dodgeball/logger"
	"Dodgeball/terminal"
	"Dodgeball/window"
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	pflag.String("config", "properties/game.properties", "game settings file")
	pflag.String("logger", "logger.properties", "logger settings file")
	pflag.String("renderer", "window", "frontend to run: window or terminal")
	pflag.String("record", "", "write one state payload per tick to this file")
	pflag.Bool("debug", false, "show FPS/TPS overlay (window only)")
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)

	if err := logger.Log.Init(viper.GetString("logger")); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	settings, err := core.ReadSettings(viper.GetString("config"))
	if err != nil {
		logger.Log.Error(err.Error())
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := start(settings); err != nil {
		logger.Log.Error(err.Error())
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func start(settings core.Settings) error {
	game := core.NewGame(settings)

	afterTick, closeRecorder, err := openRecorder(viper.GetString("record"))
	if err != nil {
		return err
	}
	defer closeRecorder()

	switch renderer := viper.GetString("renderer"); renderer {
	case "terminal":
		screen, err := terminal.NewScreen()
		if err != nil {
			return err
		}
		defer screen.Fini()

		t := terminal.New(screen, game)
		t.AfterTick = afterTick
		return t.Run()

	case "window":
		w := window.New(game, viper.GetBool("debug"))
		w.AfterTick = afterTick
		return window.Run(w)

	default:
		return fmt.Errorf("unknown renderer %q (want window or terminal)", renderer)
	}
}

// openRecorder 沒有指定檔案時不記錄
func openRecorder(path string) (func(g *core.Game) error, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open record file: %w", err)
	}
	buf := bufio.NewWriter(f)
	recorder := core.NewRecorder(buf)

	closeRecorder := func() {
		buf.Flush()
		f.Close()
	}
	return recorder.Record, closeRecorder, nil
}
