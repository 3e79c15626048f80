package renderer

import (
	"encoding/json"
	"io"

	"github.com/dialogs/gcm-message/pkg/message"
	"github.com/dialogs/gcm-message/pkg/wire"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Renderer converts json message definitions (camelCase keys) to the
// output format, one json object per line.
type Renderer struct {
	sandbox     bool
	collapseKey string
	timeToLive  int
	maskLog     bool
	format      Format
	logger      *zap.Logger
}

func New(cfg *Config, logger *zap.Logger) *Renderer {

	format := cfg.Format
	if format == "" {
		format = FormatWire
	}

	return &Renderer{
		sandbox:     cfg.Sandbox,
		collapseKey: cfg.CollapseKey,
		timeToLive:  cfg.TimeToLive,
		maskLog:     cfg.MaskLog,
		format:      format,
		logger:      logger.With(zap.String("format", string(format))),
	}
}

// Render returns the count of written messages
func (r *Renderer) Render(in io.Reader, out io.Writer) (int, error) {

	decoder := wire.NewDecoder(in)
	encoder := json.NewEncoder(out)

	var count int
	for ; decoder.More(); count++ {
		l := r.logger.With(zap.Int("index", count))

		src := make(map[string]interface{})
		if err := decoder.Decode(&src); err != nil {
			l.Error("failed to decode", zap.Error(err))
			return count, errors.Wrapf(err, "message #%d", count)
		}

		msg := r.build(l, src)

		res, err := r.convert(msg)
		if err != nil {
			l.Error("failed to convert", zap.Error(err))
			return count, errors.Wrapf(err, "message #%d", count)
		}

		if err := encoder.Encode(res); err != nil {
			l.Error("failed to write", zap.Error(err))
			return count, errors.Wrapf(err, "message #%d", count)
		}

		l.Info("rendered", zap.ByteString("payload", r.logPayload(msg)))
	}

	if err := decoder.Finish(); err != nil {
		r.logger.Error("failed to decode", zap.Int("index", count), zap.Error(err))
		return count, errors.Wrapf(err, "message #%d", count)
	}

	return count, nil
}

func (r *Renderer) build(l *zap.Logger, src map[string]interface{}) *message.Message {

	cfg, dropped := message.NewConfig(src)
	if len(dropped) > 0 {
		l.Warn("dropped invalid fields", zap.Strings("fields", dropped))
	}

	return r.Build(cfg)
}

// Build creates a message and applies the configured defaults
func (r *Renderer) Build(cfg *message.Config) *message.Message {

	msg := message.New(cfg)

	if _, ok := msg.CollapseKey(); !ok && r.collapseKey != "" {
		msg.SetCollapseKey(r.collapseKey)
	}

	if _, ok := msg.TimeToLive(); !ok && r.timeToLive > 0 {
		msg.SetTimeToLive(r.timeToLive)
	}

	if r.sandbox {
		msg.SetDryRun(true)
	}

	return msg
}

func (r *Renderer) convert(msg *message.Message) (interface{}, error) {

	if r.format == FormatFCM {
		return msg.ToFCM()
	}

	return msg, nil
}

func (r *Renderer) logPayload(msg *message.Message) []byte {

	var (
		payload []byte
		err     error
	)

	if r.maskLog {
		payload, err = wire.JSONWithoutSecrets(msg)
	} else {
		payload, err = json.Marshal(msg)
	}

	if err != nil {
		return []byte(err.Error())
	}

	return payload
}
