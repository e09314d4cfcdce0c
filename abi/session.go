package abi

import (
	"go.uber.org/zap"

	"github.com/objwire/objwire/codec"
	"github.com/objwire/objwire/schema"
	"github.com/objwire/objwire/wire"
)

// Session bundles the schema cache, encoder, decoder and logger behind the
// entry-point surface. Construct one per protocol domain and share it;
// construction is cheap and there is no teardown to perform.
type Session struct {
	enc *codec.Encoder
	dec *codec.Decoder
	log *zap.Logger
}

type Option func(*Session)

// WithLogger attaches a logger for per-call debug records. The default is
// a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func NewSession(opts ...Option) *Session {
	compiler := schema.NewCompiler()
	s := &Session{
		enc: codec.NewEncoderWithCompiler(compiler),
		dec: codec.NewDecoderWithCompiler(compiler),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Serialize encodes value into out and returns the number of bytes
// written, or a negative Code. On failure the prefix of out is undefined
// and must not be reused as a payload.
func (s *Session) Serialize(value any, out []byte) int {
	w := wire.NewBufferWriter(out)
	if err := s.enc.Encode(value, w); err != nil {
		code := CodeOf(err)
		s.log.Debug("serialize failed",
			zap.Stringer("code", code),
			zap.Error(err))
		return int(code)
	}

	s.log.Debug("serialize",
		zap.Int("bytes", w.Size()),
		zap.Int("capacity", w.Capacity()))
	return w.Size()
}

// Deserialize decodes in into dst and returns the number of bytes
// consumed, or a negative Code. dst must be a non-nil pointer whose slice
// fields already hold enough capacity for the incoming counts. On failure
// the destination's contents are unspecified.
func (s *Session) Deserialize(dst any, in []byte) int {
	r := wire.NewBufferReader(in)
	if err := s.dec.Decode(dst, r); err != nil {
		code := CodeOf(err)
		s.log.Debug("deserialize failed",
			zap.Stringer("code", code),
			zap.Error(err))
		return int(code)
	}

	s.log.Debug("deserialize",
		zap.Int("bytes", r.Size()),
		zap.Int("remaining", r.Remaining()))
	return r.Size()
}
