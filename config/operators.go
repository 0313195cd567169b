package config

import (
	"fmt"

	"github.com/spcommon/caml-data-apis/caml"
	"go.uber.org/atomic"
)

// Operators is a set of CAML comparison operators accepted by the endpoints
type Operators uint32

const (
	OpEq Operators = 1 << iota
	OpContains
	OpNeq
	OpLike
)

const AllOperators = OpEq | OpContains | OpNeq | OpLike

var operatorFlags = map[caml.Operator]Operators{
	caml.Eq:       OpEq,
	caml.Contains: OpContains,
	caml.Neq:      OpNeq,
	caml.Like:     OpLike,
}

func Ops(ops ...string) (Operators, error) {
	var o Operators
	err := o.Add(ops...)
	return o, err
}

func (o *Operators) Set(ops Operators)             { *o |= ops }
func (o *Operators) Clear(ops Operators)           { *o &= ^ops }
func (o Operators) IsSupported(ops Operators) bool { return o&ops != 0 }

// Allows reports whether the CAML operator is part of the set.
func (o Operators) Allows(op caml.Operator) bool {
	flag, ok := operatorFlags[op]
	return ok && o.IsSupported(flag)
}

func (o *Operators) Add(ops ...string) error {
	for _, name := range ops {
		op, err := caml.ParseOperator(name)
		if err != nil {
			return fmt.Errorf("invalid operator: %s", name)
		}
		o.Set(operatorFlags[op])
	}
	return nil
}

// Operators returns the members of the set in declaration order.
func (o Operators) Operators() []caml.Operator {
	result := make([]caml.Operator, 0, len(caml.Operators))
	for _, op := range caml.Operators {
		if o.Allows(op) {
			result = append(result, op)
		}
	}
	return result
}

// SupportedOperators holds the active operator set. It can be replaced while requests are
// being served, e.g. when the config file changes.
type SupportedOperators struct {
	value *atomic.Uint32
}

func NewSupportedOperators(ops Operators) *SupportedOperators {
	return &SupportedOperators{value: atomic.NewUint32(uint32(ops))}
}

func (s *SupportedOperators) Load() Operators {
	return Operators(s.value.Load())
}

func (s *SupportedOperators) Store(ops Operators) {
	s.value.Store(uint32(ops))
}

// Names returns the CAML names of the members of the set.
func (o Operators) Names() []string {
	ops := o.Operators()
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.String())
	}
	return names
}
