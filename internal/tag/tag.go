package tag

import "strings"

// Tag is the unified record written by both walker families described in
// SPEC_FULL.md §9: the six hand-written walkers populate Kind and Fields,
// the query-driven walkers leave Kind and Fields empty, and Line then ends
// the address with a bare tab (`;"\t`).
type Tag struct {
	Name     string
	FileName string
	Address  string
	Kind     string // single letter, empty if none
	Fields   *Fields
}

// Line renders the tab-delimited ctags line (without trailing newline) per
// SPEC_FULL.md §6: `name\tfile\taddress[\tkind][\tkey:value]*`. A tag with
// no kind and no fields ends with a tab after the address.
func (t Tag) Line() string {
	var b strings.Builder
	b.WriteString(t.Name)
	b.WriteByte('\t')
	b.WriteString(t.FileName)
	b.WriteByte('\t')
	b.WriteString(t.Address)
	if t.Kind == "" && t.Fields.Len() == 0 {
		b.WriteByte('\t')
	}
	if t.Kind != "" {
		b.WriteByte('\t')
		b.WriteString(t.Kind)
	}
	for _, k := range t.Fields.Keys() {
		v, _ := t.Fields.Get(k)
		b.WriteByte('\t')
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(v)
	}
	return b.String()
}
