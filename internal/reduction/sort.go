package reduction

import (
	"sort"

	"github.com/sunholo/dhallcore/internal/core"
)

// sortRecordTypeFields canonicalizes a RecordType's field order in place
// (spec §4.2 RecordType well-formedness: "record/union types normalize
// to a canonical form by sorting alternatives").
func sortRecordTypeFields(fields []core.RecordTypeField) {
	sort.Slice(fields, func(i, j int) bool { return fields[i].Label < fields[j].Label })
}

// sortAlts canonicalizes a union's alternative order in place.
func sortAlts(alts []core.UnionAlt) {
	sort.Slice(alts, func(i, j int) bool { return alts[i].Label < alts[j].Label })
}
