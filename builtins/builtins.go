/*
File: lumen/builtins/builtins.go

Built-ins are dispatched by a name → handler table, consulted only when
the call's callee name is not bound in any scope. Grounded on
akashmaji946/go-mix's std/builtins.go CallbackFunc/Builtin/table shape,
re-typed against this language's value.Value and narrowed to a fixed
reserved-name table.
*/
package builtins

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/lumen/value"
)

// Runtime is the slice of interpreter state a built-in needs: somewhere
// to write output and somewhere to read a line from, mirroring the
// teacher's std.Runtime interface narrowed to what §6's table actually
// uses (no CallFunction — none of these built-ins call back into user
// code).
type Runtime interface {
	Output() io.Writer
	Input() *bufio.Reader
}

// Func is a built-in's implementation.
type Func func(rt Runtime, args []value.Value) (value.Value, error)

// Table maps every reserved built-in name to its handler.
var Table = map[string]Func{
	"print":       print_,
	"println":     println_,
	"head":        head,
	"tail":        tail,
	"len":         length,
	"type":        typeOf,
	"is_bool":     isBool,
	"is_number":   isNumber,
	"is_string":   isString,
	"is_list":     isList,
	"is_function": isFunction,
	"input":       input,
}

func arity(name string, args []value.Value, want int) error {
	if len(args) != want {
		return fmt.Errorf("%s expects %d argument(s), got %d", name, want, len(args))
	}
	return nil
}

func print_(rt Runtime, args []value.Value) (value.Value, error) {
	if err := arity("print", args, 1); err != nil {
		return nil, err
	}
	fmt.Fprint(rt.Output(), args[0].Render())
	return args[0], nil
}

func println_(rt Runtime, args []value.Value) (value.Value, error) {
	if err := arity("println", args, 1); err != nil {
		return nil, err
	}
	fmt.Fprintln(rt.Output(), args[0].Render())
	return args[0], nil
}

func head(_ Runtime, args []value.Value) (value.Value, error) {
	if err := arity("head", args, 1); err != nil {
		return nil, err
	}
	l, ok := args[0].(value.List)
	if !ok {
		return nil, fmt.Errorf("head expects a list, got %s", args[0].Kind())
	}
	if len(l) == 0 {
		return nil, fmt.Errorf("head of empty list")
	}
	return l[0], nil
}

func tail(_ Runtime, args []value.Value) (value.Value, error) {
	if err := arity("tail", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case value.List:
		if len(v) == 0 {
			return nil, fmt.Errorf("tail of empty list")
		}
		rest := make(value.List, len(v)-1)
		copy(rest, v[1:])
		return rest, nil
	case value.String:
		s := string(v)
		if len(s) == 0 {
			return nil, fmt.Errorf("tail of empty string")
		}
		return value.String(s[1:]), nil
	default:
		return nil, fmt.Errorf("tail expects a list or string, got %s", args[0].Kind())
	}
}

func length(_ Runtime, args []value.Value) (value.Value, error) {
	if err := arity("len", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case value.List:
		return value.Number(len(v)), nil
	case value.String:
		return value.Number(len(string(v))), nil
	default:
		return nil, fmt.Errorf("len expects a list or string, got %s", args[0].Kind())
	}
}

func typeOf(_ Runtime, args []value.Value) (value.Value, error) {
	if err := arity("type", args, 1); err != nil {
		return nil, err
	}
	return value.String(args[0].Kind()), nil
}

func isBool(_ Runtime, args []value.Value) (value.Value, error) {
	if err := arity("is_bool", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(value.Boolean)
	return value.Boolean(ok), nil
}

func isNumber(_ Runtime, args []value.Value) (value.Value, error) {
	if err := arity("is_number", args, 1); err != nil {
		return nil, err
	}
	switch args[0].(type) {
	case value.Number, value.Float:
		return value.Boolean(true), nil
	default:
		return value.Boolean(false), nil
	}
}

func isString(_ Runtime, args []value.Value) (value.Value, error) {
	if err := arity("is_string", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(value.String)
	return value.Boolean(ok), nil
}

func isList(_ Runtime, args []value.Value) (value.Value, error) {
	if err := arity("is_list", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(value.List)
	return value.Boolean(ok), nil
}

// isFunction checks the runtime tag of the evaluated argument: evaluate
// it, then report whether the resulting value is a function.
func isFunction(_ Runtime, args []value.Value) (value.Value, error) {
	if err := arity("is_function", args, 1); err != nil {
		return nil, err
	}
	return value.Boolean(args[0].Kind() == value.KindFunction), nil
}

func input(rt Runtime, args []value.Value) (value.Value, error) {
	if err := arity("input", args, 0); err != nil {
		return nil, err
	}
	line, err := rt.Input().ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("input: %w", err)
	}
	return value.String(strings.TrimRight(line, "\r\n")), nil
}
