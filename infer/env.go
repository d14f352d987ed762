// Copyright © 2020 The Pea Authors under an MIT-style license.

package infer

import (
	"fmt"
	"io"
	"sort"

	"github.com/eaburns/pycheck/diag"
	"github.com/eaburns/pycheck/syntax"
	"github.com/eaburns/pycheck/types"
	"gopkg.in/yaml.v3"
)

// An Env is the environment in which expressions are inferred.
type Env struct {
	// Self is the name of the enclosing class, or "" if none.
	Self string

	classes map[string]*types.Class
	aliases map[string]types.Type
	vars    map[string]types.TypeInfo
	funcs   map[string]*types.Callable

	solver       *types.Solver
	placeholders map[string]*types.Var
}

// NewEnv returns a new Env containing only the builtin classes.
func NewEnv() *Env {
	env := &Env{
		classes:      make(map[string]*types.Class),
		aliases:      make(map[string]types.Type),
		vars:         make(map[string]types.TypeInfo),
		funcs:        make(map[string]*types.Callable),
		solver:       types.NewSolver(),
		placeholders: make(map[string]*types.Var),
	}
	for _, c := range []struct {
		name   string
		params []string
	}{
		{"object", nil},
		{"int", nil},
		{"float", nil},
		{"bool", nil},
		{"str", nil},
		{"bytes", nil},
		{"list", []string{"T"}},
		{"set", []string{"T"}},
		{"frozenset", []string{"T"}},
		{"dict", []string{"K", "V"}},
	} {
		env.AddClass(c.name, c.params...)
	}
	return env
}

// Solver returns the Env's inference-variable solver.
func (env *Env) Solver() *types.Solver { return env.solver }

// AddClass adds a class definition.
func (env *Env) AddClass(name string, tparams ...string) {
	env.classes[name] = &types.Class{Name: name, TParams: tparams}
}

// AddAlias adds a type alias.
func (env *Env) AddAlias(name string, t types.Type) { env.aliases[name] = t }

// AddVar adds a variable.
func (env *Env) AddVar(name string, info types.TypeInfo) { env.vars[name] = info }

// AddFunc adds a named function.
func (env *Env) AddFunc(c *types.Callable) { env.funcs[c.Name] = c }

// Placeholder returns the inference variable named ?name,
// allocating a fresh one the first time the name is seen.
func (env *Env) Placeholder(name string) *types.Var {
	v, ok := env.placeholders[name]
	if !ok {
		v = env.solver.Fresh()
		env.placeholders[name] = v
	}
	return v
}

func (env *Env) class(name string) *types.Class {
	c, ok := env.classes[name]
	if !ok {
		return nil
	}
	return &types.Class{Name: c.Name, TParams: c.TParams}
}

// envFile is the YAML representation of an Env.
type envFile struct {
	Self      string              `yaml:"self"`
	Classes   []classSpec         `yaml:"classes"`
	Aliases   map[string]string   `yaml:"aliases"`
	Vars      map[string]infoSpec `yaml:"vars"`
	Functions map[string]funcSpec `yaml:"functions"`
	// Solutions maps placeholder names to their solutions.
	// A solution that is itself a placeholder links the two.
	Solutions yaml.Node `yaml:"solutions"`
}

type classSpec struct {
	Name   string   `yaml:"name"`
	Params []string `yaml:"params"`
}

type funcSpec struct {
	Params  []paramSpec `yaml:"params"`
	Returns string      `yaml:"returns"`
	Flags   []string    `yaml:"flags"`
}

type paramSpec struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Type string `yaml:"type"`
}

// An infoSpec is either a type expression
// or a mapping with a type and ordered facets.
type infoSpec struct {
	Type   string
	Facets []facetSpec
}

type facetSpec struct {
	Key  string
	Info infoSpec
}

func (s *infoSpec) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		s.Type = n.Value
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			switch k.Value {
			case "type":
				if err := v.Decode(&s.Type); err != nil {
					return err
				}
			case "facets":
				if v.Kind != yaml.MappingNode {
					return fmt.Errorf("line %d: facets must be a mapping", v.Line)
				}
				for j := 0; j+1 < len(v.Content); j += 2 {
					var f facetSpec
					f.Key = v.Content[j].Value
					if err := v.Content[j+1].Decode(&f.Info); err != nil {
						return err
					}
					s.Facets = append(s.Facets, f)
				}
			default:
				return fmt.Errorf("line %d: unknown field %s", k.Line, k.Value)
			}
		}
		return nil
	default:
		return fmt.Errorf("line %d: expected a type or a mapping", n.Line)
	}
}

// LoadEnv reads an Env from YAML.
func LoadEnv(r io.Reader) (*Env, error) {
	var f envFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, err
	}
	env := NewEnv()
	env.Self = f.Self
	for _, c := range f.Classes {
		if c.Name == "" {
			return nil, fmt.Errorf("class with no name")
		}
		env.AddClass(c.Name, c.Params...)
	}
	if env.Self != "" && env.classes[env.Self] == nil {
		env.AddClass(env.Self)
	}

	eng := New(env)
	var sink diag.Collector
	parse := func(what, src string) (types.Type, error) {
		x, err := syntax.ParseExpr(src)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", what, err)
		}
		t := eng.annotation(x, &sink)
		if sink.Len() > 0 {
			return nil, fmt.Errorf("%s: %s", what, sink.Diags[0].Msg)
		}
		return t, nil
	}

	for _, name := range sortedKeys(f.Aliases) {
		t, err := parse("alias "+name, f.Aliases[name])
		if err != nil {
			return nil, err
		}
		env.AddAlias(name, t)
	}
	for _, name := range sortedKeys(f.Functions) {
		c, err := loadFunc(name, f.Functions[name], parse)
		if err != nil {
			return nil, err
		}
		env.AddFunc(c)
	}
	for _, name := range sortedKeys(f.Vars) {
		info, err := loadInfo("var "+name, f.Vars[name], parse)
		if err != nil {
			return nil, err
		}
		env.AddVar(name, info)
	}
	if err := loadSolutions(env, &f.Solutions, parse); err != nil {
		return nil, err
	}
	return env, nil
}

func loadFunc(name string, spec funcSpec, parse func(string, string) (types.Type, error)) (*types.Callable, error) {
	c := &types.Callable{Name: name, Ret: types.None()}
	for _, p := range spec.Params {
		t, err := parse("function "+name+" parameter "+p.Name, p.Type)
		if err != nil {
			return nil, err
		}
		kind, err := paramKind(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("function %s parameter %s: %v", name, p.Name, err)
		}
		c.Params = append(c.Params, types.Param{Name: p.Name, Kind: kind, Type: t})
	}
	if spec.Returns != "" {
		t, err := parse("function "+name+" result", spec.Returns)
		if err != nil {
			return nil, err
		}
		c.Ret = t
	}
	for _, f := range spec.Flags {
		switch f {
		case "overload":
			c.Flags |= types.Overload
		case "deprecated":
			c.Flags |= types.Deprecated
		case "final":
			c.Flags |= types.Final
		default:
			return nil, fmt.Errorf("function %s: unknown flag %s", name, f)
		}
	}
	return c, nil
}

func paramKind(s string) (types.ParamKind, error) {
	switch s {
	case "", "positional":
		return types.PosOrKw, nil
	case "posonly":
		return types.PosOnly, nil
	case "kwonly":
		return types.KwOnly, nil
	case "varargs":
		return types.VarArgs, nil
	case "kwargs":
		return types.KwArgs, nil
	default:
		return 0, fmt.Errorf("unknown parameter kind %s", s)
	}
}

func loadInfo(what string, spec infoSpec, parse func(string, string) (types.Type, error)) (types.TypeInfo, error) {
	t, err := parse(what, spec.Type)
	if err != nil {
		return types.TypeInfo{}, err
	}
	info := types.Info(t)
	for _, f := range spec.Facets {
		fi, err := loadInfo(what+" facet "+f.Key, f.Info, parse)
		if err != nil {
			return types.TypeInfo{}, err
		}
		info.Facets = append(info.Facets, types.Facet{Key: f.Key, Info: fi})
	}
	return info, nil
}

func loadSolutions(env *Env, n *yaml.Node, parse func(string, string) (types.Type, error)) error {
	if n.Kind == 0 {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: solutions must be a mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		name, src := n.Content[i].Value, n.Content[i+1].Value
		v := env.Placeholder(name)
		x, err := syntax.ParseExpr(src)
		if err != nil {
			return fmt.Errorf("solution %s: %v", name, err)
		}
		if ph, ok := x.(*syntax.Placeholder); ok {
			if err := env.solver.Link(v, env.Placeholder(ph.Name)); err != nil {
				return fmt.Errorf("solution %s: %v", name, err)
			}
			continue
		}
		t, err := parse("solution "+name, src)
		if err != nil {
			return err
		}
		if err := env.solver.Solve(v, t); err != nil {
			return fmt.Errorf("solution %s: %v", name, err)
		}
	}
	return nil
}

func sortedKeys(m interface{}) []string {
	var keys []string
	switch m := m.(type) {
	case map[string]string:
		for k := range m {
			keys = append(keys, k)
		}
	case map[string]infoSpec:
		for k := range m {
			keys = append(keys, k)
		}
	case map[string]funcSpec:
		for k := range m {
			keys = append(keys, k)
		}
	default:
		panic(fmt.Sprintf("impossible type %T", m))
	}
	sort.Strings(keys)
	return keys
}
