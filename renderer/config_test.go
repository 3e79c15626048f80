package renderer

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {

	dir, err := ioutil.TempDir("", "gcm-message")
	require.NoError(t, err)
	defer func() { require.NoError(t, os.RemoveAll(dir)) }()

	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, ioutil.WriteFile(file, []byte(`
sandbox: true
collapse-key: updates
time-to-live: 3600
mask-log: true
format: fcm
`), os.ModePerm))

	v := viper.New()
	v.SetConfigFile(file)
	require.NoError(t, v.ReadInConfig())

	cfg, err := NewConfig(v)
	require.NoError(t, err)
	require.Equal(t,
		&Config{
			Sandbox:     true,
			CollapseKey: "updates",
			TimeToLive:  3600,
			MaskLog:     true,
			Format:      FormatFCM,
		},
		cfg)
}

func TestConfigDefault(t *testing.T) {

	cfg, err := NewConfig(viper.New())
	require.NoError(t, err)
	require.Equal(t, &Config{Format: FormatWire}, cfg)
}

func TestConfigInvalid(t *testing.T) {

	for _, testInfo := range []struct {
		Src    map[string]interface{}
		Expect string
	}{
		{
			Src:    map[string]interface{}{"format": "apple"},
			Expect: "invalid format: 'apple'",
		},
		{
			Src:    map[string]interface{}{"time-to-live": "-1"},
			Expect: "invalid `time-to-live`",
		},
	} {
		src := viper.New()
		for k, v := range testInfo.Src {
			src.Set(k, v)
		}

		cfg, err := NewConfig(src)
		require.EqualError(t, err, testInfo.Expect)
		require.Nil(t, cfg)
	}
}

func TestFormatByString(t *testing.T) {

	for src, expect := range map[string]Format{
		"":     FormatWire,
		"wire": FormatWire,
		"fcm":  FormatFCM,
	} {
		f, err := FormatByString(src)
		require.NoError(t, err)
		require.Equal(t, expect, f)
	}
}
