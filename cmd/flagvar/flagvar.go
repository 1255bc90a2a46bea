// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flagvar registers the tagged fields of a struct as flags on a
// pflag.FlagSet, so that one struct can hold a command's flags alongside
// any other encoding of the same settings, such as a YAML config file.
//
// A field is selected by a tag of the form
//
//	<name>,<default-value>,<usage>
//
// where <default-value> may be empty. Any part may be quoted with ' to
// contain a comma, and \ escapes the next character.
package flagvar

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

var pflagValueType = reflect.TypeOf((*pflag.Value)(nil)).Elem()

// nextField splits off the leading, possibly quoted, field of t.
func nextField(t, what string) (field, rest string, err error) {
	var sb strings.Builder
	quoted := strings.HasPrefix(t, "'")
	if quoted {
		t = t[1:]
	}
	escaped := false
	for i, r := range t {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
			continue
		case quoted && r == '\'':
			rest = t[i+1:]
			if len(rest) > 0 && rest[0] != ',' {
				return "", "", fmt.Errorf("spurious text after %v", what)
			}
			return sb.String(), rest, nil
		case !quoted && r == ',':
			return sb.String(), t[i:], nil
		}
		sb.WriteRune(r)
	}
	if quoted {
		return "", "", fmt.Errorf("missing close quote (') for %v", what)
	}
	return sb.String(), "", nil
}

// ParseFlagTag splits a tag into its name, default value and usage.
func ParseFlagTag(t string) (name, value, usage string, err error) {
	if len(t) == 0 {
		return "", "", "", fmt.Errorf("empty or missing tag")
	}
	fields := [3]string{}
	what := [3]string{"<name>", "<default-value>", "<usage>"}
	rest := t
	for i := range fields {
		if fields[i], rest, err = nextField(rest, what[i]); err != nil {
			return "", "", "", err
		}
		if i < 2 {
			if len(rest) == 0 {
				return "", "", "", fmt.Errorf("more fields expected after %v", what[i])
			}
			rest = rest[1:]
		}
		if i != 1 && len(fields[i]) == 0 {
			return "", "", "", fmt.Errorf("empty field for %v", what[i])
		}
	}
	if len(rest) > 0 {
		return "", "", "", fmt.Errorf("spurious text after <usage>")
	}
	return fields[0], fields[1], fields[2], nil
}

// RegisterFlagsInStruct registers every field of the struct pointed to by
// structWithFlags that carries the named tag. Supported field types are
// int, int64, uint64, float64, bool, string and any pointer-receiver
// pflag.Value. Untagged embedded structs are searched too. valueDefaults,
// keyed by flag name, overrides the literal defaults in the tags.
func RegisterFlagsInStruct(fs *pflag.FlagSet, tag string, structWithFlags interface{}, valueDefaults map[string]interface{}) error {
	val := reflect.ValueOf(structWithFlags)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%T is not a pointer to a struct", structWithFlags)
	}
	if err := register(fs, tag, val.Elem(), valueDefaults); err != nil {
		return err
	}
	for k := range valueDefaults {
		if fs.Lookup(k) == nil {
			return fmt.Errorf("flag %v does not exist but specified as a value default", k)
		}
	}
	return nil
}

func register(fs *pflag.FlagSet, tag string, val reflect.Value, valueDefaults map[string]interface{}) error {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tags, ok := field.Tag.Lookup(tag)
		if !ok {
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				if err := register(fs, tag, val.Field(i), valueDefaults); err != nil {
					return err
				}
			}
			continue
		}
		name, literal, usage, err := ParseFlagTag(tags)
		if err != nil {
			return fmt.Errorf("field %v: %v", field.Name, err)
		}
		if fs.Lookup(name) != nil {
			return fmt.Errorf("field %v: flag %v already defined", field.Name, name)
		}
		if err := define(fs, val.Field(i).Addr().Interface(), name, literal, usage, valueDefaults[name]); err != nil {
			return fmt.Errorf("field %v of type %v for flag %v: %v", field.Name, field.Type, name, err)
		}
	}
	return nil
}

// define registers ptr as flag name. def, when non-nil, takes precedence
// over literal.
func define(fs *pflag.FlagSet, ptr interface{}, name, literal, usage string, def interface{}) error {
	var err error
	switch p := ptr.(type) {
	case *int:
		v, _ := def.(int)
		if def == nil && literal != "" {
			v, err = strconv.Atoi(literal)
		}
		fs.IntVar(p, name, v, usage)
	case *int64:
		v, _ := def.(int64)
		if def == nil && literal != "" {
			v, err = strconv.ParseInt(literal, 10, 64)
		}
		fs.Int64Var(p, name, v, usage)
	case *uint64:
		v, _ := def.(uint64)
		if def == nil && literal != "" {
			v, err = strconv.ParseUint(literal, 10, 64)
		}
		fs.Uint64Var(p, name, v, usage)
	case *float64:
		v, _ := def.(float64)
		if def == nil && literal != "" {
			v, err = strconv.ParseFloat(literal, 64)
		}
		fs.Float64Var(p, name, v, usage)
	case *bool:
		v, _ := def.(bool)
		if def == nil && literal != "" {
			v, err = strconv.ParseBool(literal)
		}
		fs.BoolVar(p, name, v, usage)
	case *string:
		v, ok := def.(string)
		if !ok {
			v = literal
		}
		fs.StringVar(p, name, v, usage)
	default:
		if !reflect.TypeOf(ptr).Implements(pflagValueType) {
			return fmt.Errorf("does not implement pflag.Value")
		}
		pv := ptr.(pflag.Value)
		if literal != "" {
			err = pv.Set(literal)
		}
		fs.Var(pv, name, usage)
	}
	if err != nil {
		return fmt.Errorf("invalid default %q: %v", literal, err)
	}
	return nil
}

// Changed returns the value of every flag set on the command line.
func Changed(fs *pflag.FlagSet) map[string]string {
	out := map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		out[f.Name] = f.Value.String()
	})
	return out
}

// Reapply sets each named flag to its recorded value. Used with Changed it
// lets command line flags take precedence over values loaded after parsing.
func Reapply(fs *pflag.FlagSet, values map[string]string) error {
	for name, v := range values {
		if err := fs.Set(name, v); err != nil {
			return err
		}
	}
	return nil
}
