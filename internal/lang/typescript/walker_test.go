package typescript_test

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	tsts "github.com/smacker/go-tree-sitter/typescript/typescript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/treetags/internal/config"
	"github.com/viant/treetags/internal/lang/typescript"
)

func parseTS(t *testing.T, src string) *sitter.Node {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(tsts.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(src))
	require.NoError(t, err)
	return tree.RootNode()
}

func TestGenerateTags_InterfaceAndMethodSignature(t *testing.T) {
	src := `interface Shape {
    area(): number;
}
`
	root := parseTS(t, src)
	cfg := config.DefaultConfig()
	cfg.Fields = config.ParseFieldsConfig("+a", nil)
	tags := typescript.GenerateTags(root, []byte(src), "shape.ts", typescript.DefaultKindConfig(), cfg)

	byName := make(map[string]string)
	for _, tg := range tags {
		byName[tg.Name] = tg.Kind
	}
	assert.Equal(t, "i", byName["Shape"])
	assert.Equal(t, "m", byName["area"])

	for _, tg := range tags {
		if tg.Name == "area" {
			v, ok := tg.Fields.Get("access")
			assert.True(t, ok)
			assert.Equal(t, "public", v)
			iface, ok := tg.Fields.Get("interface")
			assert.True(t, ok)
			assert.Equal(t, "Shape", iface)
		}
	}
}

func TestGenerateTags_EnumAndTypeAlias(t *testing.T) {
	src := `enum Color {
    Red,
    Green,
}

type Point = { x: number; y: number };
`
	root := parseTS(t, src)
	tags := typescript.GenerateTags(root, []byte(src), "types.ts", typescript.DefaultKindConfig(), config.DefaultConfig())

	byName := make(map[string]string)
	for _, tg := range tags {
		byName[tg.Name] = tg.Kind
	}
	assert.Equal(t, "g", byName["Color"])
	assert.Equal(t, "e", byName["Red"])
	assert.Equal(t, "e", byName["Green"])
	assert.Equal(t, "a", byName["Point"])
}

func TestGenerateTags_LocalVariableInFunction(t *testing.T) {
	src := `function outer() {
    const inner = 1;
}
`
	root := parseTS(t, src)
	tags := typescript.GenerateTags(root, []byte(src), "fn.ts", typescript.DefaultKindConfig(), config.DefaultConfig())

	byName := make(map[string]string)
	for _, tg := range tags {
		byName[tg.Name] = tg.Kind
	}
	assert.Equal(t, "f", byName["outer"])
	assert.Equal(t, "l", byName["inner"])
}
