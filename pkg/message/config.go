package message

import (
	"github.com/mitchellh/mapstructure"
)

// Recognized keys of a message mapping. Matching is exact.
var Keys = []string{
	"collapseKey",
	"delayWhileIdle",
	"timeToLive",
	"dryRun",
	"data",
	"notification",
}

// Config lists the recognized message fields. Nil fields are absent.
type Config struct {
	CollapseKey    *string                `mapstructure:"collapseKey"`
	DelayWhileIdle *bool                  `mapstructure:"delayWhileIdle"`
	TimeToLive     *int                   `mapstructure:"timeToLive"`
	DryRun         *bool                  `mapstructure:"dryRun"`
	Data           map[string]interface{} `mapstructure:"data"`
	Notification   map[string]interface{} `mapstructure:"notification"`
}

// NewConfig decodes the recognized keys of src. Unknown keys are ignored,
// recognized keys holding a value of the wrong type are dropped and
// returned in the second value.
func NewConfig(src map[string]interface{}) (*Config, []string) {

	c := &Config{}

	var dropped []string
	for _, key := range Keys {
		value, ok := src[key]
		if !ok {
			continue
		}

		if err := c.decodeField(key, value); err != nil {
			dropped = append(dropped, key)
		}
	}

	return c, dropped
}

func (c *Config) decodeField(key string, value interface{}) error {

	// mapstructure matches keys case-insensitively, so only one exact key
	// is passed at a time
	field := &Config{}
	if err := mapstructure.Decode(map[string]interface{}{key: value}, field); err != nil {
		return err
	}

	if field.CollapseKey != nil {
		c.CollapseKey = field.CollapseKey
	}

	if field.DelayWhileIdle != nil {
		c.DelayWhileIdle = field.DelayWhileIdle
	}

	if field.TimeToLive != nil {
		c.TimeToLive = field.TimeToLive
	}

	if field.DryRun != nil {
		c.DryRun = field.DryRun
	}

	if field.Data != nil {
		c.Data = field.Data
	}

	if field.Notification != nil {
		c.Notification = field.Notification
	}

	return nil
}
