package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/supernode/ga"
)

// kindValue is a --type flag that only accepts known strategy names.
type kindValue struct {
	kind *string
}

var _ pflag.Value = kindValue{}

func newKindValue(p *string) kindValue { return kindValue{kind: p} }

func (v kindValue) String() string {
	if v.kind == nil {
		return ""
	}
	return *v.kind
}

func (v kindValue) Set(s string) error {
	k, err := ga.ParseKind(s)
	if err != nil {
		return err
	}
	*v.kind = string(k)
	return nil
}

func (v kindValue) Type() string {
	names := make([]string, 0, len(ga.Kinds()))
	for _, k := range ga.Kinds() {
		names = append(names, strings.ToLower(string(k)))
	}
	return strings.Join(names, "|")
}
