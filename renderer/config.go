package renderer

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	FormatWire Format = "wire" // default
	FormatFCM  Format = "fcm"
)

// Format of rendered messages:
//  wire - snake_case GCM json (https://firebase.google.com/docs/cloud-messaging/http-server-ref)
//  fcm  - github.com/edganiukov/fcm message
type Format string

func FormatByString(src string) (Format, error) {
	switch f := Format(src); f {
	case "":
		return FormatWire, nil
	case FormatWire, FormatFCM:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: '%s'", src)
	}
}

type Config struct {
	// forces dry_run for every message
	Sandbox bool `mapstructure:"sandbox"`
	// defaults for messages without collapse key or time to live
	CollapseKey string `mapstructure:"collapse-key"`
	TimeToLive  int    `mapstructure:"time-to-live"`
	// log payloads with masked string values
	MaskLog bool   `mapstructure:"mask-log"`
	Format  Format `mapstructure:"-"`
}

func NewConfig(src *viper.Viper) (*Config, error) {

	c := &Config{}
	err := src.Unmarshal(c)
	if err != nil {
		return nil, err
	}

	c.Format, err = FormatByString(src.GetString("format"))
	if err != nil {
		return nil, err
	}

	if c.TimeToLive < 0 {
		return nil, errors.New("invalid `time-to-live`")
	}

	return c, nil
}
