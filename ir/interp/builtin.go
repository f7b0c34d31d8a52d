package interp

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// builtin calls a method that is not defined by the program.
func builtin(interp *Interp, recv Val, method string, args []Val, block Val) (Val, error) {
	switch method {
	case "==":
		if len(args) != 1 {
			return nil, arityError(method, args, 1)
		}
		return Bool(equal(recv, args[0])), nil
	case "!=":
		if len(args) != 1 {
			return nil, arityError(method, args, 1)
		}
		return Bool(!equal(recv, args[0])), nil
	case "nil?":
		_, ok := recv.(Nil)
		return Bool(ok), nil
	case "to_s":
		return Str(recv.String()), nil
	case "inspect":
		return Str(inspect(recv)), nil
	}
	switch recv := recv.(type) {
	case Main:
		return kernel(interp, method, args)
	case Int, Float:
		return number(recv, method, args)
	case Str:
		return str(recv, method, args)
	case *Array:
		return array(interp, recv, method, args, block)
	}
	return nil, errors.Errorf("undefined method %s for %s", method, inspect(recv))
}

func arityError(method string, args []Val, want int) error {
	return errors.Errorf("%s: wrong number of arguments (given %d, expected %d)", method, len(args), want)
}

func kernel(interp *Interp, method string, args []Val) (Val, error) {
	switch method {
	case "puts":
		if len(args) == 0 {
			fmt.Fprintln(interp.Out)
		}
		for _, a := range args {
			if a, ok := a.(*Array); ok {
				for _, e := range a.Elems {
					fmt.Fprintln(interp.Out, e)
				}
				continue
			}
			fmt.Fprintln(interp.Out, a)
		}
		return Nil{}, nil
	case "print":
		for _, a := range args {
			fmt.Fprint(interp.Out, a)
		}
		return Nil{}, nil
	case "p":
		var ss []string
		for _, a := range args {
			ss = append(ss, inspect(a))
		}
		fmt.Fprintln(interp.Out, strings.Join(ss, ", "))
		switch len(args) {
		case 0:
			return Nil{}, nil
		case 1:
			return args[0], nil
		default:
			return &Array{Elems: args}, nil
		}
	}
	return nil, errors.Errorf("undefined method %s for main", method)
}

func number(recv Val, method string, args []Val) (Val, error) {
	if method == "to_f" {
		if i, ok := recv.(Int); ok {
			return Float(i), nil
		}
		return recv, nil
	}
	if len(args) != 1 {
		return nil, arityError(method, args, 1)
	}
	x, xok := recv.(Int)
	y, yok := args[0].(Int)
	if xok && yok {
		switch method {
		case "+":
			return x + y, nil
		case "-":
			return x - y, nil
		case "*":
			return x * y, nil
		case "/", "%":
			if y == 0 {
				return nil, errors.New("divided by 0")
			}
			// Integer division rounds toward negative infinity.
			q, m := x/y, x%y
			if m != 0 && (m < 0) != (y < 0) {
				q, m = q-1, m+y
			}
			if method == "/" {
				return q, nil
			}
			return m, nil
		case "<":
			return Bool(x < y), nil
		case "<=":
			return Bool(x <= y), nil
		case ">":
			return Bool(x > y), nil
		case ">=":
			return Bool(x >= y), nil
		}
		return nil, errors.Errorf("undefined method %s for %s", method, x)
	}
	a, aok := toFloat(recv)
	b, bok := toFloat(args[0])
	if !aok || !bok {
		return nil, errors.Errorf("%s: %s can't be coerced into %s", method, inspect(args[0]), recv)
	}
	switch method {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		return a / b, nil
	case "<":
		return Bool(a < b), nil
	case "<=":
		return Bool(a <= b), nil
	case ">":
		return Bool(a > b), nil
	case ">=":
		return Bool(a >= b), nil
	}
	return nil, errors.Errorf("undefined method %s for %s", method, a)
}

func toFloat(v Val) (Float, bool) {
	switch v := v.(type) {
	case Int:
		return Float(v), true
	case Float:
		return v, true
	}
	return 0, false
}

func str(recv Str, method string, args []Val) (Val, error) {
	switch method {
	case "size", "length":
		return Int(len(recv)), nil
	case "+":
		if len(args) != 1 {
			return nil, arityError(method, args, 1)
		}
		s, ok := args[0].(Str)
		if !ok {
			return nil, errors.Errorf("no implicit conversion of %s into String", inspect(args[0]))
		}
		return recv + s, nil
	case "*":
		if len(args) != 1 {
			return nil, arityError(method, args, 1)
		}
		n, ok := args[0].(Int)
		if !ok || n < 0 {
			return nil, errors.Errorf("bad string repetition %s", inspect(args[0]))
		}
		return Str(strings.Repeat(string(recv), int(n))), nil
	}
	return nil, errors.Errorf("undefined method %s for %s", method, inspect(recv))
}

func array(interp *Interp, recv *Array, method string, args []Val, block Val) (Val, error) {
	switch method {
	case "size", "length":
		return Int(len(recv.Elems)), nil
	case "to_a":
		return recv, nil
	case "first":
		return element(recv, 0, false), nil
	case "last":
		return element(recv, len(recv.Elems)-1, false), nil
	case "[]":
		if len(args) != 1 {
			return nil, arityError(method, args, 1)
		}
		i, ok := args[0].(Int)
		if !ok {
			return nil, errors.Errorf("no implicit conversion of %s into Integer", inspect(args[0]))
		}
		if i < 0 {
			i += Int(len(recv.Elems))
		}
		return element(recv, int(i), false), nil
	case "[]=":
		if len(args) != 2 {
			return nil, arityError(method, args, 2)
		}
		i, ok := args[0].(Int)
		if !ok || i < 0 {
			return nil, errors.Errorf("bad index %s", inspect(args[0]))
		}
		for int(i) >= len(recv.Elems) {
			recv.Elems = append(recv.Elems, Nil{})
		}
		recv.Elems[i] = args[1]
		return args[1], nil
	case "<<", "push":
		recv.Elems = append(recv.Elems, args...)
		return recv, nil
	case "each":
		p, ok := block.(*Proc)
		if !ok {
			return nil, errors.New("each: no block given")
		}
		for i := 0; i < len(recv.Elems); i++ {
			interp.yield(p, toAry(recv.Elems[i]).Elems)
		}
		return recv, nil
	}
	return nil, errors.Errorf("undefined method %s for %s", method, inspect(recv))
}
