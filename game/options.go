package game

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/spacegame/component"
	"github.com/lixenwraith/spacegame/core"
	"github.com/lixenwraith/spacegame/parameter"
	"github.com/lixenwraith/spacegame/system"
)

type options struct {
	seed       uint64
	logger     *zap.Logger
	input      system.Input
	appearance [core.KindCount]component.AppearanceComponent
}

// Option configures a Session
type Option func(*options)

// WithSeed seeds the spawner RNG; the same seed and input replay the same run
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithLogger sets the logger, nil keeps the no-op logger
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithInput sets the control source polled every frame
func WithInput(in system.Input) Option {
	return func(o *options) { o.input = in }
}

// WithAppearance assigns the asset handles entities of kind receive at spawn
func WithAppearance(kind core.Kind, app component.AppearanceComponent) Option {
	return func(o *options) {
		if kind.Valid() {
			o.appearance[kind] = app
		}
	}
}

func defaultOptions() options {
	return options{
		seed:   parameter.DefaultSeed,
		logger: zap.NewNop(),
		input:  system.NoInput{},
	}
}
