package javascript

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/treetags/internal/config"
	"github.com/viant/treetags/internal/lang/common"
	"github.com/viant/treetags/internal/tag"
	"github.com/viant/treetags/internal/walker"
)

// GenerateTags walks root (a parsed JavaScript program node) and returns
// the ctags-compatible tags for src, scoped by fileName.
func GenerateTags(root *sitter.Node, src []byte, fileName string, kinds *config.KindConfig, cfg *config.Config) []tag.Tag {
	base := common.NewContext(src, fileName, kinds, cfg)
	ctx := NewContext(base)
	walker.Walk(root, NewWalker(ctx))
	return ctx.Tags
}
