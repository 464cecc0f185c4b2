// Package native bridges the catalog capability contract to Lua provider scripts.
package native

import (
	"strings"

	"github.com/anibridge/anibridge/catalog"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
)

// goValue converts a Lua value into its plain Go form: nil, bool, float64,
// string, []any for array tables and map[string]any for everything else.
// The normalizer handles field selection; this walker only changes shape.
func goValue(val lua.LValue) any {
	switch val.Type() {
	case lua.LTNil:
		return nil
	case lua.LTBool:
		return bool(val.(lua.LBool))
	case lua.LTNumber:
		return float64(val.(lua.LNumber))
	case lua.LTString:
		return val.String()
	case lua.LTTable:
		return goTable(val.(*lua.LTable))
	default:
		return val.String()
	}
}

func goTable(table *lua.LTable) any {
	isArray := true
	table.ForEach(func(k, _ lua.LValue) {
		if k.Type() != lua.LTNumber {
			isArray = false
		}
	})

	if isArray && table.Len() > 0 {
		list := make([]any, 0, table.Len())
		for i := 1; i <= table.Len(); i++ {
			list = append(list, goValue(table.RawGetInt(i)))
		}
		return list
	}

	record := make(map[string]any)
	table.ForEach(func(k, v lua.LValue) {
		record[k.String()] = goValue(v)
	})
	return record
}

// recordOf translates one record table. A table whose walked form is not a
// map (an array slipped into a record position) yields an empty record.
func recordOf(table *lua.LTable) catalog.Raw {
	record, ok := goTable(table).(map[string]any)
	if !ok {
		return catalog.Raw{}
	}
	return record
}

// recordsOf walks the array part of a result table, keeping record entries
// and skipping anything else. Scripts occasionally mix nils or plain strings
// into their lists.
func recordsOf(table *lua.LTable) []catalog.Raw {
	var records []catalog.Raw
	table.ForEach(func(k, v lua.LValue) {
		if k.Type() != lua.LTNumber {
			return // Skip invalid entries
		}

		entry, ok := v.(*lua.LTable)
		if !ok {
			return
		}

		record := recordOf(entry)
		if len(record) == 0 {
			return
		}

		records = append(records, record)
	})

	return records
}

// stringList extracts tag-like values from a table: plain string entries are
// taken as-is, record entries contribute their name or title field. A script
// answering with one comma-separated string also works.
func stringList(table *lua.LTable) []string {
	var list []string
	table.ForEach(func(_, v lua.LValue) {
		switch v.Type() {
		case lua.LTString:
			if strings.Contains(v.String(), ",") {
				list = append(list, lo.Map(strings.Split(v.String(), ","), func(s string, _ int) string {
					return strings.TrimSpace(s)
				})...)
				return
			}
			list = append(list, v.String())
		case lua.LTTable:
			entry := v.(*lua.LTable)
			for _, key := range []string{"name", "title"} {
				if field := entry.RawGetString(key); field.Type() == lua.LTString {
					list = append(list, field.String())
					break
				}
			}
		}
	})

	return list
}
