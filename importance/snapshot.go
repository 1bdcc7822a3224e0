package importance

// Snapshot exports all aggregated records keyed by kind and method, deep
// copied so the tables stay immutable. The inverse of FromSnapshot; together
// they let callers persist tables and reload them bit-for-bit.
func (t *Tables) Snapshot() map[Kind]map[string][]Record {
	out := make(map[Kind]map[string][]Record)
	for key, records := range t.groups {
		byMethod := out[key.kind]
		if byMethod == nil {
			byMethod = make(map[string][]Record)
			out[key.kind] = byMethod
		}
		byMethod[key.method] = cloneRecords(records)
	}
	return out
}

// FromSnapshot rebuilds tables from a previously exported snapshot.
func FromSnapshot(s map[Kind]map[string][]Record) *Tables {
	groups := make(map[groupKey][]Record)
	for kind, byMethod := range s {
		for method, records := range byMethod {
			groups[groupKey{method: method, kind: kind}] = cloneRecords(records)
		}
	}
	return &Tables{groups: groups}
}

func cloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		out[i] = rec
		out[i].FoldRanks = make(map[int]int, len(rec.FoldRanks))
		for fold, rank := range rec.FoldRanks {
			out[i].FoldRanks[fold] = rank
		}
	}
	return out
}
