// Package policylua loads custom block policy tables from Lua schema
// scripts, the seam through which a host replaces the stock table.
//
// A schema script returns a table keyed by block type name:
//
//	return {
//	  paragraph = { can_be_child = true },
//	  bulleted  = { can_be_child = true, can_have_children = true, max_depth = 6 },
//	}
//
// Omitted fields default to false (zero for max_depth).
package policylua

import (
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/bullet-to/bullet-editor-sub002/internal/engine/block"
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/policy"
)

// ErrNoTable indicates the script did not return a table.
var ErrNoTable = errors.New("policy script did not return a table")

// Rule field names recognized in a schema table entry.
const (
	fieldCanBeChild      = "can_be_child"
	fieldCanHaveChildren = "can_have_children"
	fieldMaxDepth        = "max_depth"
)

// Load runs a schema script and builds a policy table from its return
// value. The Lua state is created with the standard libraries skipped;
// schema scripts are plain data and get no OS access.
func Load(script string) (policy.Table, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	if err := L.DoString(script); err != nil {
		return nil, fmt.Errorf("policy script: %w", err)
	}

	ret, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return nil, ErrNoTable
	}

	tbl := policy.Table{}
	var err error
	ret.ForEach(func(key, val lua.LValue) {
		if err != nil {
			return
		}
		name, ok := key.(lua.LString)
		if !ok {
			err = fmt.Errorf("policy script: non-string block type key %s", key.String())
			return
		}
		rules, ok := val.(*lua.LTable)
		if !ok {
			err = fmt.Errorf("policy script: block type %q: expected a table, got %s", name, val.Type())
			return
		}
		p := policy.Policy{
			CanBeChild:      lua.LVAsBool(rules.RawGetString(fieldCanBeChild)),
			CanHaveChildren: lua.LVAsBool(rules.RawGetString(fieldCanHaveChildren)),
		}
		if dv := rules.RawGetString(fieldMaxDepth); dv != lua.LNil {
			n, ok := dv.(lua.LNumber)
			if !ok || n < 0 {
				err = fmt.Errorf("policy script: block type %q: invalid max_depth %s", name, dv.String())
				return
			}
			p.MaxDepth = int(n)
		}
		tbl[block.Type(string(name))] = p
	})
	if err != nil {
		return nil, err
	}
	return tbl, nil
}

// LoadFile runs a schema script from disk.
func LoadFile(path string) (policy.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy script: %w", err)
	}
	tbl, err := Load(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}
