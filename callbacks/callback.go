// Package callbacks provides tool lifecycle callbacks: a no-op, a plain
// printer, an xlog-backed logger, and a fanout combining several callbacks.
package callbacks

import (
	"context"
	"fmt"
	"io"

	"github.com/effective-security/xlog"

	"github.com/Javier162380/abn-amro-mcp/tools"
)

// ensure that the callbacks implement the correct interfaces
var (
	_ tools.Callback = (*Noop)(nil)
	_ tools.Callback = (*Printer)(nil)
	_ tools.Callback = (*PackageLogger)(nil)
	_ tools.Callback = (*Fanout)(nil)
)

// Noop ignores all events.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) OnToolStart(context.Context, tools.ITool, string)        {}
func (*Noop) OnToolEnd(context.Context, tools.ITool, string, string)  {}
func (*Noop) OnToolError(context.Context, tools.ITool, string, error) {}

// Printer writes events to the given writer.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) OnToolStart(_ context.Context, tool tools.ITool, input string) {
	fmt.Fprintf(p.out, "Tool: %s\nInput: %s\n", tool.Name(), input)
}

func (p *Printer) OnToolEnd(_ context.Context, tool tools.ITool, _ string, output string) {
	fmt.Fprintf(p.out, "Tool: %s\nOutput: %s\n", tool.Name(), output)
}

func (p *Printer) OnToolError(_ context.Context, tool tools.ITool, input string, err error) {
	fmt.Fprintf(p.out, "Tool: %s\nInput: %s\nError: %s\n", tool.Name(), input, err.Error())
}

// PackageLogger logs events with the given xlog logger.
type PackageLogger struct {
	logger *xlog.PackageLogger
}

func NewPackageLogger(logger *xlog.PackageLogger) *PackageLogger {
	return &PackageLogger{logger: logger}
}

func (l *PackageLogger) OnToolStart(ctx context.Context, tool tools.ITool, input string) {
	l.logger.ContextKV(ctx, xlog.DEBUG,
		"tool", tool.Name(),
		"input", input,
	)
}

func (l *PackageLogger) OnToolEnd(ctx context.Context, tool tools.ITool, _ string, output string) {
	l.logger.ContextKV(ctx, xlog.DEBUG,
		"tool", tool.Name(),
		"output", output,
	)
}

func (l *PackageLogger) OnToolError(ctx context.Context, tool tools.ITool, input string, err error) {
	l.logger.ContextKV(ctx, xlog.ERROR,
		"tool", tool.Name(),
		"input", input,
		"err", err.Error(),
	)
}

// Fanout forwards events to multiple callbacks.
type Fanout struct {
	callbacks []tools.Callback
}

func NewFanout(callbacks ...tools.Callback) *Fanout {
	return &Fanout{callbacks: callbacks}
}

func (l *Fanout) Add(callback tools.Callback) {
	l.callbacks = append(l.callbacks, callback)
}

func (l *Fanout) OnToolStart(ctx context.Context, tool tools.ITool, input string) {
	for _, callback := range l.callbacks {
		callback.OnToolStart(ctx, tool, input)
	}
}

func (l *Fanout) OnToolEnd(ctx context.Context, tool tools.ITool, input string, output string) {
	for _, callback := range l.callbacks {
		callback.OnToolEnd(ctx, tool, input, output)
	}
}

func (l *Fanout) OnToolError(ctx context.Context, tool tools.ITool, input string, err error) {
	for _, callback := range l.callbacks {
		callback.OnToolError(ctx, tool, input, err)
	}
}
