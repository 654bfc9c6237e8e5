package interp

import (
	"fmt"

	"github.com/akashmaji946/lumen/builtins"
	"github.com/akashmaji946/lumen/function"
	"github.com/akashmaji946/lumen/parser"
	"github.com/akashmaji946/lumen/scope"
	"github.com/akashmaji946/lumen/value"
)

// eval walks a single AST node. The bool result is an early-return flag
// threaded through Block/If: when true, the caller must stop iterating
// its own siblings and propagate both the flag and the value upward
// unchanged (except at a function-call boundary, which absorbs it).
func (it *Interpreter) eval(n *parser.Node) (value.Value, bool, error) {
	switch n.Kind {
	case parser.KindExpression, parser.KindTerm, parser.KindFactor:
		return it.eval(n.Children[0])

	case parser.KindLiteral:
		v, err := parseLiteral(n.Value)
		if err != nil {
			return nil, false, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, false, nil

	case parser.KindIdentifier:
		v, ok := it.scopes.Lookup(n.Value)
		if !ok {
			return nil, false, fmt.Errorf("line %d: identifier not found: %s", n.Line, n.Value)
		}
		return v, false, nil

	case parser.KindAssignment:
		v, isReturn, err := it.eval(n.Children[1])
		if err != nil || isReturn {
			return v, isReturn, err
		}
		v = value.Copy(v)
		it.scopes.Bind(n.Children[0].Value, v)
		return v, false, nil

	case parser.KindReassignment:
		v, isReturn, err := it.eval(n.Children[1])
		if err != nil || isReturn {
			return v, isReturn, err
		}
		v = value.Copy(v)
		if err := it.scopes.Reassign(n.Children[0].Value, v); err != nil {
			return nil, false, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, false, nil

	case parser.KindDeclaration:
		name := n.Children[0].Value
		fn := function.Function{Name: name, Node: n.Children[1]}
		it.scopes.Bind(name, fn)
		return fn, false, nil

	case parser.KindBlock:
		var result value.Value = value.NullValue
		for _, child := range n.Children {
			v, isReturn, err := it.eval(child)
			if err != nil {
				return nil, false, err
			}
			result = v
			if isReturn {
				return result, true, nil
			}
		}
		return result, false, nil

	case parser.KindList:
		elems := make(value.List, 0, len(n.Children))
		for _, child := range n.Children {
			v, isReturn, err := it.eval(child)
			if err != nil {
				return nil, false, err
			}
			if isReturn {
				return v, true, nil
			}
			elems = append(elems, v)
		}
		return elems, false, nil

	case parser.KindIf:
		condVal, isReturn, err := it.eval(n.Children[0])
		if err != nil || isReturn {
			return condVal, isReturn, err
		}
		cond, ok := condVal.(value.Boolean)
		if !ok {
			return nil, false, fmt.Errorf("line %d: if condition must be boolean, got %s", n.Line, condVal.Kind())
		}
		if cond {
			return it.eval(n.Children[1])
		}
		if len(n.Children) == 3 {
			return it.eval(n.Children[2])
		}
		return value.NullValue, false, nil

	case parser.KindIndex:
		return it.evalIndex(n)

	case parser.KindReturn:
		v, isReturn, err := it.eval(n.Children[0])
		if err != nil {
			return nil, false, err
		}
		_ = isReturn // a Return's child cannot itself contain a return
		return v, true, nil

	case parser.KindOperation:
		return it.evalOperation(n)

	case parser.KindFunctionCall:
		return it.evalCall(n)

	default:
		return nil, false, fmt.Errorf("line %d: cannot evaluate node of kind %s", n.Line, n.Kind)
	}
}

func (it *Interpreter) evalIndex(n *parser.Node) (value.Value, bool, error) {
	container, isReturn, err := it.eval(n.Children[0])
	if err != nil || isReturn {
		return container, isReturn, err
	}
	idxVal, isReturn, err := it.eval(n.Children[1])
	if err != nil || isReturn {
		return idxVal, isReturn, err
	}
	idxNum, ok := idxVal.(value.Number)
	if !ok {
		return nil, false, fmt.Errorf("line %d: index must be a number, got %s", n.Line, idxVal.Kind())
	}
	idx := int(idxNum)
	switch c := container.(type) {
	case value.List:
		if idx < 0 || idx >= len(c) {
			return nil, false, fmt.Errorf("line %d: index out of range", n.Line)
		}
		return c[idx], false, nil
	case value.String:
		s := string(c)
		if idx < 0 || idx >= len(s) {
			return nil, false, fmt.Errorf("line %d: index out of range", n.Line)
		}
		return value.String(s[idx : idx+1]), false, nil
	default:
		return nil, false, fmt.Errorf("line %d: cannot index a %s", n.Line, container.Kind())
	}
}

// evalCall resolves the callee against the scope stack first, falling
// back to the built-in table only if no such binding exists.
func (it *Interpreter) evalCall(n *parser.Node) (value.Value, bool, error) {
	name := n.Value
	args := make([]value.Value, 0, len(n.Children[0].Children))
	for _, a := range n.Children[0].Children {
		v, isReturn, err := it.eval(a)
		if err != nil || isReturn {
			return v, isReturn, err
		}
		args = append(args, v)
	}

	if fnVal, ok := it.scopes.Lookup(name); ok {
		fn, ok := fnVal.(function.Function)
		if !ok {
			return nil, false, fmt.Errorf("line %d: %s is not a function", n.Line, name)
		}
		v, err := it.callFunction(fn, args)
		return v, false, err
	}

	if handler, ok := builtins.Table[name]; ok {
		v, err := handler(it, args)
		return v, false, err
	}

	return nil, false, fmt.Errorf("line %d: unknown function: %s", n.Line, name)
}

// callFunction evaluates fn's body with a scope stack reset to exactly
// [global, call-frame] — the body sees only its own frame and the global
// one below it, never the caller's intermediate frames.
func (it *Interpreter) callFunction(fn function.Function, args []value.Value) (value.Value, error) {
	params := fn.Args()
	frame := make(scope.Frame, len(params))
	for i, p := range params {
		var v value.Value = value.NullValue
		if i < len(args) {
			v = value.Copy(args[i])
		}
		frame[p] = v
	}

	saved := it.scopes.Snapshot()
	it.scopes.EnterCall(frame)
	result, _, err := it.eval(fn.Body())
	it.scopes.Restore(saved)
	if err != nil {
		return nil, err
	}
	return result, nil
}
