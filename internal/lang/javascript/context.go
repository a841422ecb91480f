package javascript

import (
	"strconv"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/treetags/internal/lang/common"
	"github.com/viant/treetags/internal/scope"
	"github.com/viant/treetags/internal/tag"
)

const (
	scopeClass    = "class"
	scopeFunction = "function"
	scopeProperty = "property"
)

// Context wraps the shared common.Context with the class/function/property
// scope stack described in SPEC_FULL.md §4.5, plus the per-file anonymous
// name generator used for IIFEs and callback arguments.
type Context struct {
	*common.Context
	stack           scope.Stack
	filenameHash    string
	sequenceCounter uint16
}

// NewContext builds a JavaScript walking context over base, precomputing
// the DJB2 hash of base.FileName used by generateAnonymousName.
func NewContext(base *common.Context) *Context {
	return &Context{
		Context:         base,
		filenameHash:    calculateFilenameHash(base.FileName),
		sequenceCounter: 1,
	}
}

// calculateFilenameHash is a DJB2 hash (seed 5381, hash = hash*33 + byte,
// wrapping uint32 arithmetic) of filename, formatted as 8 hex digits.
func calculateFilenameHash(filename string) string {
	var hash uint32 = 5381
	for i := 0; i < len(filename); i++ {
		hash = hash*33 + uint32(filename[i])
	}
	return pad8(hash)
}

func pad8(v uint32) string {
	s := strconv.FormatUint(uint64(v), 16)
	for len(s) < 8 {
		s = "0" + s
	}
	return s
}

// generateAnonymousName produces anonymousFunction<hash><counter>, with
// counter a 2-hex-digit value starting at 1 and incrementing per file.
func (c *Context) generateAnonymousName() string {
	name := "anonymousFunction" + c.filenameHash + pad2(c.sequenceCounter)
	c.sequenceCounter++
	return name
}

func pad2(v uint16) string {
	s := strconv.FormatUint(uint64(v), 16)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}

func (c *Context) pushScope(kind, name string) { c.stack.Push(kind, name) }
func (c *Context) popScope()                   { c.stack.Pop() }

func (c *Context) scopeFields() *tag.Fields {
	fields := tag.NewFields()
	for _, f := range c.stack.Frames() {
		switch f.Kind {
		case scopeClass:
			fields.Set("class", f.Name)
		case scopeFunction:
			fields.Set("function", f.Name)
		case scopeProperty:
			fields.Set("property", f.Name)
		}
	}
	return fields
}

// createTag implements JS's own, reduced create_tag: unlike the other five
// walkers it never emits access/file/signature/typeref/end, only kind,
// line and the scope fields, and it does not reject a bare "_" name.
func (c *Context) createTag(name, kind string, node *sitter.Node, extra *tag.Fields) {
	if name == "" {
		return
	}
	if !c.Kinds.IsEnabled(kind) {
		return
	}

	row := int(node.StartPoint().Row)
	address := tag.BuildAddress(row, c.Lines)
	fields := tag.NewFields()
	fc := c.Config.Fields

	if fc.IsEnabled("kind") {
		fields.Set("kind", kind)
	}
	if fc.IsEnabled("line") {
		fields.Set("line", strconv.Itoa(row+1))
	}
	if fc.IsEnabled("scope") || c.Config.Extras.Qualified {
		for _, k := range c.scopeFields().Keys() {
			v, _ := c.scopeFields().Get(k)
			fields.Set(k, v)
		}
	}
	// Unlike the scope fields above, the per-call extra fields (class,
	// property) are gated only by "scope" — qualified never unlocks them,
	// matching original_source/src/parser/js.rs:183-205's two independent checks.
	if fc.IsEnabled("scope") && extra != nil {
		for _, k := range extra.Keys() {
			v, _ := extra.Get(k)
			fields.Set(k, v)
		}
	}

	c.Tags = append(c.Tags, tag.Tag{
		Name:     name,
		FileName: c.FileName,
		Address:  address,
		Kind:     kind,
		Fields:   fields,
	})
}
