package interp

import (
	"fmt"

	"github.com/akashmaji946/lumen/parser"
	"github.com/akashmaji946/lumen/value"
)

// evalOperation implements the Operation node's contract:
// evaluate all operand children left-to-right, then apply the operator
// per the type matrix. A single child means unary minus; two means a
// binary operator.
func (it *Interpreter) evalOperation(n *parser.Node) (value.Value, bool, error) {
	if len(n.Children) == 1 {
		v, isReturn, err := it.eval(n.Children[0])
		if err != nil || isReturn {
			return v, isReturn, err
		}
		num, ok := v.(value.Number)
		if !ok || n.Value != "-" {
			return nil, false, fmt.Errorf("line %d: unary %q not supported on %s", n.Line, n.Value, v.Kind())
		}
		return -num, false, nil
	}

	left, isReturn, err := it.eval(n.Children[0])
	if err != nil || isReturn {
		return left, isReturn, err
	}
	right, isReturn, err := it.eval(n.Children[1])
	if err != nil || isReturn {
		return right, isReturn, err
	}
	v, err := applyOperator(n.Line, n.Value, left, right)
	return v, false, err
}

func applyOperator(line int, op string, left, right value.Value) (value.Value, error) {
	switch op {
	case "+":
		switch l := left.(type) {
		case value.Number:
			if r, ok := right.(value.Number); ok {
				return l + r, nil
			}
		case value.String:
			if r, ok := right.(value.String); ok {
				return l + r, nil
			}
		case value.List:
			if r, ok := right.(value.List); ok {
				out := make(value.List, 0, len(l)+len(r))
				out = append(out, l...)
				out = append(out, r...)
				return out, nil
			}
		}
		return nil, typeError(line, op, left, right)

	case "-":
		if l, ok := left.(value.Number); ok {
			if r, ok := right.(value.Number); ok {
				return l - r, nil
			}
		}
		return nil, typeError(line, op, left, right)

	case "*":
		if l, ok := left.(value.Number); ok {
			if r, ok := right.(value.Number); ok {
				return l * r, nil
			}
		}
		return nil, typeError(line, op, left, right)

	case "/":
		if l, ok := left.(value.Number); ok {
			if r, ok := right.(value.Number); ok {
				if r == 0 {
					return nil, fmt.Errorf("line %d: division by zero", line)
				}
				return l / r, nil // truncating, per Go's int division
			}
		}
		return nil, typeError(line, op, left, right)

	case "%":
		if l, ok := left.(value.Number); ok {
			if r, ok := right.(value.Number); ok {
				if r == 0 {
					return nil, fmt.Errorf("line %d: modulo by zero", line)
				}
				return l % r, nil // host-defined sign, per Go's %
			}
		}
		return nil, typeError(line, op, left, right)

	case "==", "!=":
		eq, ok := valuesEqual(left, right)
		if !ok {
			return nil, typeError(line, op, left, right)
		}
		if op == "!=" {
			eq = !eq
		}
		return value.Boolean(eq), nil

	case "<", "<=", ">", ">=":
		l, ok1 := left.(value.Number)
		r, ok2 := right.(value.Number)
		if !ok1 || !ok2 {
			return nil, typeError(line, op, left, right)
		}
		switch op {
		case "<":
			return value.Boolean(l < r), nil
		case "<=":
			return value.Boolean(l <= r), nil
		case ">":
			return value.Boolean(l > r), nil
		default:
			return value.Boolean(l >= r), nil
		}

	default:
		return nil, fmt.Errorf("line %d: unknown operator: %s", line, op)
	}
}

// valuesEqual implements ==/!='s type-restricted equality: Number/Number,
// String/String, Boolean/Boolean only. ok is false for any other pairing,
// which the caller turns into a type error.
func valuesEqual(left, right value.Value) (eq bool, ok bool) {
	switch l := left.(type) {
	case value.Number:
		if r, match := right.(value.Number); match {
			return l == r, true
		}
	case value.String:
		if r, match := right.(value.String); match {
			return l == r, true
		}
	case value.Boolean:
		if r, match := right.(value.Boolean); match {
			return l == r, true
		}
	}
	return false, false
}

func typeError(line int, op string, left, right value.Value) error {
	return fmt.Errorf("line %d: type error: cannot apply %s to %s and %s", line, op, left.Kind(), right.Kind())
}
