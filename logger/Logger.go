package logger

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

type Logger struct {
	console bool
}

type loggerProperties struct {
	logFilename string
	maxSize     int
	maxBackups  int
	maxAge      int
	compress    bool
	level       string
	console     bool
}

func readLoggerProperties(path string) (loggerProperties, error) {
	v := viper.New()
	v.SetConfigType("properties")
	v.SetDefault("logFilename", "dodgeball.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Debug")
	v.SetDefault("console", false)

	if path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return loggerProperties{}, fmt.Errorf("read logger config %s: %w", path, err)
		}
	}

	return loggerProperties{
		logFilename: cast.ToString(v.Get("logFilename")),
		maxSize:     cast.ToInt(v.Get("maxSize")),
		maxBackups:  cast.ToInt(v.Get("maxBackups")),
		maxAge:      cast.ToInt(v.Get("maxAge")),
		compress:    cast.ToBool(v.Get("compress")),
		level:       cast.ToString(v.Get("level")),
		console:     cast.ToBool(v.Get("console")),
	}, nil
}

// Init 設定 logrus 輸出到 lumberjack 的滾動檔案
func (l *Logger) Init(path string) error {
	props, err := readLoggerProperties(path)
	if err != nil {
		return err
	}

	loggerConfig := &lumberjack.Logger{
		Filename:   props.logFilename,
		MaxSize:    props.maxSize,
		MaxBackups: props.maxBackups,
		MaxAge:     props.maxAge,
		Compress:   props.compress,
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(loggerConfig)
	logrus.SetLevel(parseLevel(props.level))
	l.console = props.console

	return nil
}

// SetOutput 測試用，直接指定輸出位置
func (l *Logger) SetOutput(w io.Writer) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(w)
}

func parseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) WithRound(roundId string) *logrus.Entry {
	return logrus.WithField("roundId", roundId)
}

func (l *Logger) echo(level, message string) {
	if l.console {
		fmt.Fprintln(os.Stdout, level+":", message)
	}
}

func (l *Logger) Info(message string) {
	logrus.Info(message)
	l.echo("Info", message)
}

func (l *Logger) Error(message string) {
	logrus.Error(message)
	l.echo("Error", message)
}

func (l *Logger) Debug(message string) {
	logrus.Debug(message)
	l.echo("Debug", message)
}

func (l *Logger) Warn(message string) {
	logrus.Warn(message)
	l.echo("Warn", message)
}

func (l *Logger) Fatal(message string) {
	l.echo("Fatal", message)
	logrus.Fatal(message)
}
