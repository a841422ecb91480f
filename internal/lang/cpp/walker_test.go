package cpp_test

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	tscpp "github.com/smacker/go-tree-sitter/cpp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/treetags/internal/config"
	"github.com/viant/treetags/internal/lang/cpp"
)

func parseCpp(t *testing.T, src string) *sitter.Node {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(tscpp.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(src))
	require.NoError(t, err)
	return tree.RootNode()
}

func TestGenerateTags_NamespaceClassAndFunction(t *testing.T) {
	src := `namespace shapes {
class Circle {
    double radius;
};
}

int main() {
    return 0;
}
`
	root := parseCpp(t, src)
	tags := cpp.GenerateTags(root, []byte(src), "main.cpp", cpp.DefaultKindConfig(), config.DefaultConfig())

	byName := make(map[string]string)
	for _, tg := range tags {
		byName[tg.Name] = tg.Kind
	}

	assert.Equal(t, "n", byName["shapes"])
	assert.Equal(t, "c", byName["Circle"])
	assert.Equal(t, "m", byName["radius"])
	assert.Equal(t, "f", byName["main"])
}

func TestGenerateTags_Enum(t *testing.T) {
	src := `enum Color {
    RED,
    GREEN,
};
`
	root := parseCpp(t, src)
	tags := cpp.GenerateTags(root, []byte(src), "color.cpp", cpp.DefaultKindConfig(), config.DefaultConfig())

	byName := make(map[string]string)
	for _, tg := range tags {
		byName[tg.Name] = tg.Kind
	}
	require.Equal(t, "g", byName["Color"])
	require.Equal(t, "e", byName["RED"])
	require.Equal(t, "e", byName["GREEN"])
}
