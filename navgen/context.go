// Package navgen implements the offline tile generator: the nine-stage
// pipeline that turns an external voxelizer's span grid into a
// navtile.Tile, plus the CompactSpanGrid view the stages share.
package navgen

import (
	"time"

	"go.uber.org/zap"
)

// BuildContext is the logging/timing sink a Generator reports through,
// shaped after the teacher's recast.BuildContext (Progress/Warning/Error
// plus named timers) but backed by a structured logger instead of an
// in-memory message buffer, so a long-running build tool can stream
// progress to a rotating file.
type BuildContext interface {
	Progressf(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	StartTimer(label string)
	StopTimer(label string)
	ElapsedTime(label string) time.Duration
}

// ZapBuildContext adapts a zap.SugaredLogger to BuildContext, as the CLI
// wires it; library callers that don't care about generation progress
// can pass NopBuildContext instead.
type ZapBuildContext struct {
	log   *zap.SugaredLogger
	start map[string]time.Time
	acc   map[string]time.Duration
}

// NewZapBuildContext wraps log for use as a Generator's BuildContext.
func NewZapBuildContext(log *zap.SugaredLogger) *ZapBuildContext {
	return &ZapBuildContext{log: log, start: map[string]time.Time{}, acc: map[string]time.Duration{}}
}

func (c *ZapBuildContext) Progressf(format string, args ...interface{}) {
	c.log.Infof(format, args...)
}

func (c *ZapBuildContext) Warningf(format string, args ...interface{}) {
	c.log.Warnf(format, args...)
}

func (c *ZapBuildContext) Errorf(format string, args ...interface{}) {
	c.log.Errorf(format, args...)
}

func (c *ZapBuildContext) StartTimer(label string) {
	c.start[label] = time.Now()
}

func (c *ZapBuildContext) StopTimer(label string) {
	c.acc[label] += time.Since(c.start[label])
}

func (c *ZapBuildContext) ElapsedTime(label string) time.Duration {
	return c.acc[label]
}

// NopBuildContext discards everything; the zero value is ready to use.
type NopBuildContext struct{}

func (NopBuildContext) Progressf(string, ...interface{}) {}
func (NopBuildContext) Warningf(string, ...interface{})  {}
func (NopBuildContext) Errorf(string, ...interface{})    {}
func (NopBuildContext) StartTimer(string)                {}
func (NopBuildContext) StopTimer(string)                 {}
func (NopBuildContext) ElapsedTime(string) time.Duration { return 0 }

var _ BuildContext = NopBuildContext{}
var _ BuildContext = (*ZapBuildContext)(nil)
