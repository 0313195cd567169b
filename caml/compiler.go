package caml

import "fmt"

const whereTag = "Where"

// Compile converts an expression to its CAML body, without the Where envelope.
// A nil expression compiles to the empty string.
func Compile(expr Expression) (string, error) {
	switch e := expr.(type) {
	case nil:
		return "", nil
	case Comparison:
		return compileComparison(e)
	case *Comparison:
		if e == nil {
			return "", nil
		}
		return compileComparison(*e)
	case Chain:
		return compileChain(e)
	case *Chain:
		if e == nil {
			return "", nil
		}
		return compileChain(*e)
	default:
		return "", &UnsupportedExpressionError{Value: expr}
	}
}

// ToQueryString compiles the expression and wraps it in the Where envelope. The envelope is
// always emitted, so a nil expression gives "<Where></Where>".
func ToQueryString(expr Expression) (string, error) {
	body, err := Compile(expr)
	if err != nil {
		return "", err
	}
	return wrap(whereTag, body), nil
}

// MustQueryString is like ToQueryString but panics if the expression cannot be compiled.
func MustQueryString(expr Expression) string {
	query, err := ToQueryString(expr)
	if err != nil {
		panic(err)
	}
	return query
}

func compileComparison(c Comparison) (string, error) {
	if !c.Operator.Valid() {
		return "", &UnsupportedExpressionError{Value: c.Operator}
	}

	// The value is deliberately not escaped: the list engine reads it as CDATA
	fieldRef := fmt.Sprintf(`<FieldRef Name="%s" %s/><Value Type="%s"><![CDATA[%s]]></Value>`,
		c.Field, c.ExtraAttributes, c.ValueType, c.Value)

	return wrap(c.Operator.String(), fieldRef), nil
}

// compileChain pushes the compiled children on a stack in order, then repeatedly pops two,
// joins them with the chain condition and pushes the result back. The last two children are
// therefore combined first.
func compileChain(chain Chain) (string, error) {
	if !chain.Condition.Valid() {
		return "", &UnsupportedExpressionError{Value: chain.Condition}
	}

	stack := make([]string, 0, len(chain.Children))
	for _, child := range chain.Children {
		statement, err := compileComparison(child)
		if err != nil {
			return "", err
		}
		stack = append(stack, statement)
	}

	if len(stack) == 0 {
		return "", nil
	}

	tag := chain.Condition.String()
	for len(stack) > 1 {
		n := len(stack)
		first, second := stack[n-1], stack[n-2]
		stack = append(stack[:n-2], wrap(tag, first+second))
	}

	return stack[0], nil
}

func wrap(tag string, body string) string {
	return "<" + tag + ">" + body + "</" + tag + ">"
}
