package env

import (
	"io"
	"os"

	"github.com/viant/dangit/whatis"
)

// ConsoleKey is the global property holding the console.
const ConsoleKey = "console"

// Context is an explicit execution context.
type Context struct {
	Global *Global
	// Console is usually a *Console but may hold whatever a caller assigned to it.
	Console any
	// Output receives console output, os.Stderr when nil.
	Output io.Writer
}

func (c *Context) writer() io.Writer {
	if c.Output == nil {
		return os.Stderr
	}
	return c.Output
}

// GlobalObject returns the global object of ctx, or nil when ctx has none.
func (c *Context) GlobalObject() *Global {
	if c == nil || !IsTheGlobalObject(c.Global) {
		return nil
	}
	return c.Global
}

// New creates a context with an empty global object and a console writing to w.
func New(w io.Writer) *Context {
	ctx := &Context{Global: NewGlobal(), Output: w}
	console := NewConsole(ctx.writer())
	ctx.Console = console
	ctx.Global.Set(ConsoleKey, console)
	return ctx
}

// IsTheGlobalObject reports whether value is a global object; hosts name it
// either "global" or "window".
func IsTheGlobalObject(value any) bool {
	switch whatis.Tag(value) {
	case "global", "window":
		return true
	}
	return false
}
