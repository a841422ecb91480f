package rust_test

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	tsrust "github.com/smacker/go-tree-sitter/rust"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/treetags/internal/config"
	"github.com/viant/treetags/internal/lang/rust"
)

func parseRust(t *testing.T, src string) *sitter.Node {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(tsrust.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(src))
	require.NoError(t, err)
	return tree.RootNode()
}

func TestGenerateTags(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		fileName string
		want     []struct {
			name string
			kind string
		}
	}{
		{
			name:     "top level function",
			src:      "fn main() {}\n",
			fileName: "main.rs",
			want: []struct {
				name string
				kind string
			}{
				{name: "main", kind: "f"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parseRust(t, tt.src)
			tags := rust.GenerateTags(root, []byte(tt.src), tt.fileName, rust.DefaultKindConfig(), config.DefaultConfig())

			require.Len(t, tags, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.name, tags[i].Name)
				assert.Equal(t, want.kind, tags[i].Kind)
				assert.Equal(t, tt.fileName, tags[i].FileName)
			}
		})
	}
}

func TestGenerateTags_StructWithMethodAndFields(t *testing.T) {
	src := `struct Point {
    x: i32,
    y: i32,
}

impl Point {
    fn new(x: i32, y: i32) -> Point {
        Point { x, y }
    }
}
`
	root := parseRust(t, src)
	tags := rust.GenerateTags(root, []byte(src), "point.rs", rust.DefaultKindConfig(), config.DefaultConfig())

	byName := make(map[string]string)
	for _, tg := range tags {
		byName[tg.Name] = tg.Kind
	}

	assert.Equal(t, "s", byName["Point"])
	assert.Equal(t, "m", byName["x"])
	assert.Equal(t, "m", byName["y"])
	assert.Equal(t, "P", byName["new"])
}

func TestGenerateTags_ModulePathAndEnumVariants(t *testing.T) {
	src := `mod shapes {
    enum Shape {
        Circle,
        Square,
    }
}
`
	root := parseRust(t, src)
	tags := rust.GenerateTags(root, []byte(src), "shapes.rs", rust.DefaultKindConfig(), config.DefaultConfig())

	var circle *struct {
		scope string
	}
	for _, tg := range tags {
		if tg.Name == "Circle" {
			v, ok := tg.Fields.Get("enum")
			require.True(t, ok)
			assert.Equal(t, "Shape", v)
			circle = &struct{ scope string }{}
		}
	}
	require.NotNil(t, circle)

	var shapeModule string
	for _, tg := range tags {
		if tg.Name == "Shape" {
			v, _ := tg.Fields.Get("module")
			shapeModule = v
		}
	}
	assert.Equal(t, "shapes", shapeModule)
}

func TestGenerateTags_UnderscoreNameRejected(t *testing.T) {
	src := `fn _() {}
fn named() {}
`
	root := parseRust(t, src)
	tags := rust.GenerateTags(root, []byte(src), "f.rs", rust.DefaultKindConfig(), config.DefaultConfig())

	require.Len(t, tags, 1)
	assert.Equal(t, "named", tags[0].Name)
}
