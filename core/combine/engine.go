package combine

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"precinct-reconciler/core/precinct"
)

// Combine merges the supplied vote-type exports into one wide table keyed by
// (state, county, precinct), validates shared registration columns across
// sources, and coalesces type-dependent columns by priority.
//
// Supplying zero inputs, two inputs for the same vote type, or an input
// missing its identity or triplet columns is a configuration error; no output
// is produced. Shared-column conflicts are not errors: they are returned in
// the Result and the affected keys are omitted from the combined table.
//
// Within a single input, the first row seen for an identity key wins; later
// duplicates are ignored.
func Combine(inputs []Input) (*Result, error) {
	if len(inputs) == 0 {
		return nil, errors.New("no vote-type inputs supplied")
	}
	if err := validate(inputs); err != nil {
		return nil, err
	}

	// Full outer join with explicit provenance: one source row per
	// (key, vote type).
	cells := make(map[precinct.Key]map[precinct.VoteType]precinct.Row)
	labels := make(map[precinct.VoteType]string, len(inputs))
	supplied := suppliedTypes(inputs)
	for _, in := range inputs {
		labels[in.Type] = in.Table.Label(string(in.Type))
		for _, row := range in.Table.Rows {
			key := precinct.KeyOf(row)
			byType := cells[key]
			if byType == nil {
				byType = make(map[precinct.VoteType]precinct.Row, len(inputs))
				cells[key] = byType
			}
			if _, dup := byType[in.Type]; !dup {
				byType[in.Type] = row
			}
		}
	}

	keys := make([]precinct.Key, 0, len(cells))
	for key := range cells {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	conflicts, conflicted := detectConflicts(keys, cells, supplied, labels)

	combined := precinct.NewTable("", precinct.CSVColumns)
	for _, key := range keys {
		if _, drop := conflicted[key]; drop {
			continue
		}
		combined.Append(buildRow(key, cells[key], supplied))
	}

	return &Result{
		Combined:     combined,
		Conflicts:    conflicts,
		RowsCombined: combined.Len(),
		KeysDropped:  len(conflicted),
	}, nil
}

// validate checks the fatal-tier schema requirements of every input.
func validate(inputs []Input) error {
	seen := make(map[precinct.VoteType]struct{}, len(inputs))
	for _, in := range inputs {
		if !in.Type.IsValid() {
			return fmt.Errorf("unknown vote type %q", in.Type)
		}
		if in.Table == nil {
			return fmt.Errorf("vote type %s: no table supplied", in.Type)
		}
		if _, dup := seen[in.Type]; dup {
			return fmt.Errorf("vote type %s supplied twice", in.Type)
		}
		seen[in.Type] = struct{}{}

		label := in.Table.Label(string(in.Type))
		if missing := in.Table.MissingColumns(precinct.IdentityColumns); len(missing) > 0 {
			return fmt.Errorf("%s: missing identity column %q", label, missing[0])
		}
		if missing := in.Table.MissingColumns(in.Type.Columns()); len(missing) > 0 {
			return fmt.Errorf("%s: missing expected columns for %s: %s",
				label, in.Type, strings.Join(missing, ", "))
		}
	}
	return nil
}

// suppliedTypes returns the supplied vote types in coalescing priority order.
func suppliedTypes(inputs []Input) []precinct.VoteType {
	present := make(map[precinct.VoteType]struct{}, len(inputs))
	for _, in := range inputs {
		present[in.Type] = struct{}{}
	}
	ordered := make([]precinct.VoteType, 0, len(present))
	for _, t := range precinct.TypePriority {
		if _, ok := present[t]; ok {
			ordered = append(ordered, t)
		}
	}
	return ordered
}

// detectConflicts finds shared-column disagreements. For each key and shared
// column it collects the non-empty value of every source; if more than one
// distinct value exists, each non-empty source value becomes one Conflict and
// the key is marked for omission. Empty cells are "no opinion".
func detectConflicts(
	keys []precinct.Key,
	cells map[precinct.Key]map[precinct.VoteType]precinct.Row,
	supplied []precinct.VoteType,
	labels map[precinct.VoteType]string,
) ([]Conflict, map[precinct.Key]struct{}) {
	var conflicts []Conflict
	conflicted := make(map[precinct.Key]struct{})

	for _, key := range keys {
		byType := cells[key]
		for _, column := range precinct.SharedColumns {
			distinct := make(map[string]struct{})
			for _, t := range supplied {
				row, ok := byType[t]
				if !ok {
					continue
				}
				if v := row[column]; strings.TrimSpace(v) != "" {
					distinct[v] = struct{}{}
				}
			}
			if len(distinct) <= 1 {
				continue
			}
			conflicted[key] = struct{}{}
			for _, t := range supplied {
				row, ok := byType[t]
				if !ok {
					continue
				}
				v := row[column]
				if strings.TrimSpace(v) == "" {
					continue
				}
				conflicts = append(conflicts, Conflict{
					Key:          key,
					Column:       column,
					SourceType:   t,
					SourceColumn: fmt.Sprintf("%s__from_%s", column, t),
					SourceFile:   labels[t],
					Value:        v,
				})
			}
		}
	}

	sort.SliceStable(conflicts, func(i, j int) bool {
		a, b := conflicts[i], conflicts[j]
		if a.Key != b.Key {
			return a.Key.Less(b.Key)
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.SourceType < b.SourceType
	})
	return conflicts, conflicted
}

// buildRow assembles one combined output row: identity columns, coalesced
// shared and base columns, and each supplied vote type's own triplet.
func buildRow(
	key precinct.Key,
	byType map[precinct.VoteType]precinct.Row,
	supplied []precinct.VoteType,
) precinct.Row {
	row := make(precinct.Row, len(precinct.CSVColumns))
	for _, c := range precinct.CSVColumns {
		row[c] = ""
	}
	row["state"] = key.State
	row["county"] = key.County
	row["precinct"] = key.Precinct

	coalesce := func(column string) string {
		for _, t := range supplied {
			if source, ok := byType[t]; ok {
				if v := source[column]; v != "" {
					return v
				}
			}
		}
		return ""
	}
	for _, c := range precinct.BaseColumns {
		row[c] = coalesce(c)
	}
	for _, c := range precinct.SharedColumns {
		row[c] = coalesce(c)
	}

	// Triplets are union columns: each is populated only from its owning
	// source, never coalesced.
	for _, t := range supplied {
		source, ok := byType[t]
		if !ok {
			continue
		}
		for _, c := range t.Columns() {
			row[c] = source[c]
		}
	}
	return row
}
