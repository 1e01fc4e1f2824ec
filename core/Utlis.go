package core

import (
	"Pong/logger"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const DefaultTitle = "Pong Game"
const DefaultFrameDelayMs = 16
const DefaultKeyHoldMs = 150

type Config struct {
	Title      string
	FrameDelay time.Duration
	KeyHold    time.Duration
	Log        logger.Config
}

// ReadProperties loads pong.properties from dir. The file is optional;
// PONG_* environment variables override it.
func ReadProperties(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("pong")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("PONG")
	v.AutomaticEnv()

	v.SetDefault("title", DefaultTitle)
	v.SetDefault("frameDelayMs", DefaultFrameDelayMs)
	v.SetDefault("keyHoldMs", DefaultKeyHoldMs)
	v.SetDefault("logFilename", "")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")
	v.SetDefault("console", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "read pong.properties")
		}
	}

	frameDelay := cast.ToInt(v.Get("frameDelayMs"))
	if frameDelay < 0 {
		return Config{}, errors.Errorf("frameDelayMs must not be negative, got %d", frameDelay)
	}
	keyHold := cast.ToInt(v.Get("keyHoldMs"))
	if keyHold <= 0 {
		return Config{}, errors.Errorf("keyHoldMs must be positive, got %d", keyHold)
	}

	return Config{
		Title:      cast.ToString(v.Get("title")),
		FrameDelay: time.Duration(frameDelay) * time.Millisecond,
		KeyHold:    time.Duration(keyHold) * time.Millisecond,
		Log: logger.Config{
			Filename:   cast.ToString(v.Get("logFilename")),
			MaxSize:    cast.ToString(v.Get("maxSize")),
			MaxBackups: cast.ToString(v.Get("maxBackups")),
			MaxAge:     cast.ToString(v.Get("maxAge")),
			Compress:   cast.ToString(v.Get("compress")),
			Level:      cast.ToString(v.Get("level")),
			Console:    cast.ToBool(v.Get("console")),
		},
	}, nil
}
