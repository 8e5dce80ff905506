// Package config loads and serializes block policy tables.
//
// The external representation is a JSON document with a "blockTypes"
// object mapping each block type to its structural rules:
//
//	{
//	  "blockTypes": {
//	    "paragraph": {"canBeChild": true, "canHaveChildren": false},
//	    "bulleted":  {"canBeChild": true, "canHaveChildren": true, "maxDepth": 6}
//	  }
//	}
//
// Omitted fields default to false (zero for maxDepth), so a type listed
// with an empty object nests in no direction.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/bullet-to/bullet-editor-sub002/internal/engine/block"
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/policy"
)

// Errors returned by policy configuration operations.
var (
	// ErrInvalidJSON indicates the input is not well-formed policy JSON.
	ErrInvalidJSON = errors.New("invalid policy JSON")

	// ErrMissingTable indicates the "blockTypes" object is absent.
	ErrMissingTable = errors.New("missing blockTypes object")
)

// ParsePolicies builds a policy table from its JSON representation.
func ParsePolicies(data []byte) (policy.Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	types := gjson.ParseBytes(data).Get("blockTypes")
	if !types.IsObject() {
		return nil, ErrMissingTable
	}

	tbl := policy.Table{}
	var err error
	types.ForEach(func(key, val gjson.Result) bool {
		if !val.IsObject() {
			err = fmt.Errorf("block type %q: %w", key.String(), ErrInvalidJSON)
			return false
		}
		depth := val.Get("maxDepth")
		if depth.Exists() && depth.Int() < 0 {
			err = fmt.Errorf("block type %q: negative maxDepth: %w", key.String(), ErrInvalidJSON)
			return false
		}
		tbl[block.Type(key.String())] = policy.Policy{
			CanBeChild:      val.Get("canBeChild").Bool(),
			CanHaveChildren: val.Get("canHaveChildren").Bool(),
			MaxDepth:        int(depth.Int()),
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return tbl, nil
}

// LoadPolicies reads a policy table from a JSON file.
func LoadPolicies(path string) (policy.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy config: %w", err)
	}
	tbl, err := ParsePolicies(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}

// MarshalPolicies renders a policy table as JSON, with block types in
// sorted order so the output is stable. MaxDepth is omitted when
// unlimited.
func MarshalPolicies(tbl policy.Table) ([]byte, error) {
	names := make([]string, 0, len(tbl))
	for t := range tbl {
		names = append(names, string(t))
	}
	sort.Strings(names)

	out := `{"blockTypes":{}}`
	var err error
	for _, name := range names {
		p := tbl[block.Type(name)]
		base := "blockTypes." + name
		if out, err = sjson.Set(out, base+".canBeChild", p.CanBeChild); err != nil {
			return nil, err
		}
		if out, err = sjson.Set(out, base+".canHaveChildren", p.CanHaveChildren); err != nil {
			return nil, err
		}
		if p.MaxDepth > 0 {
			if out, err = sjson.Set(out, base+".maxDepth", p.MaxDepth); err != nil {
				return nil, err
			}
		}
	}
	return []byte(out), nil
}
