package env

import (
	"io"
	"log"

	"github.com/viant/dangit/whatis"
)

// Console groups the logging methods of an execution context. Any method may be
// replaced, ResetConsole brings the originals back.
type Console struct {
	Log   func(args ...any)
	Info  func(args ...any)
	Warn  func(args ...any)
	Error func(args ...any)
	Debug func(args ...any)
}

func (c *Console) TypeTag() string { return "Console" }

// NewConsole creates a console writing to w with one standard logger per level.
func NewConsole(w io.Writer) *Console {
	return &Console{
		Log:   log.New(w, "", 0).Println,
		Info:  log.New(w, "INFO ", 0).Println,
		Warn:  log.New(w, "WARN ", 0).Println,
		Error: log.New(w, "ERROR ", 0).Println,
		Debug: log.New(w, "DEBUG ", 0).Println,
	}
}

// ResetConsole restores the console of ctx: a value that is not a console at all is
// replaced by a new one, then every missing or non native method is restored. A nil
// ctx has no console to restore and yields nil.
func ResetConsole(ctx *Context) *Console {
	if ctx == nil {
		return nil
	}
	console, ok := ctx.Console.(*Console)
	if !ok || console == nil || !whatis.IsConsole(console) {
		console = NewConsole(ctx.writer())
	}
	defaults := NewConsole(ctx.writer())
	for _, method := range []struct {
		current  *func(args ...any)
		fallback func(args ...any)
	}{
		{&console.Log, defaults.Log},
		{&console.Info, defaults.Info},
		{&console.Warn, defaults.Warn},
		{&console.Error, defaults.Error},
		{&console.Debug, defaults.Debug},
	} {
		if whatis.IsNative(*method.current) {
			continue
		}
		*method.current = method.fallback
	}
	ctx.Console = console
	if ctx.Global != nil {
		ctx.Global.Set(ConsoleKey, console)
	}
	return console
}
