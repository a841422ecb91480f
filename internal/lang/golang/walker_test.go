package golang_test

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	tsgolang "github.com/smacker/go-tree-sitter/golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/treetags/internal/config"
	"github.com/viant/treetags/internal/lang/golang"
)

func parseGo(t *testing.T, src string) *sitter.Node {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(tsgolang.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(src))
	require.NoError(t, err)
	return tree.RootNode()
}

func TestGenerateTags_PackageAndFunction(t *testing.T) {
	src := "package p\nfunc F() {}\n"
	root := parseGo(t, src)
	tags := golang.GenerateTags(root, []byte(src), "p.go", golang.DefaultKindConfig(), config.DefaultConfig())

	require.Len(t, tags, 2)
	assert.Equal(t, "p", tags[0].Name)
	assert.Equal(t, "p", tags[0].Kind)

	assert.Equal(t, "F", tags[1].Name)
	assert.Equal(t, "f", tags[1].Kind)
	scope, ok := tags[1].Fields.Get("package")
	require.True(t, ok)
	assert.Equal(t, "p", scope)
	_, hasEnd := tags[1].Fields.Get("end")
	assert.False(t, hasEnd, "single-line tag must omit end")
}

func TestGenerateTags_StructAndMethod(t *testing.T) {
	src := `package shapes

type Circle struct {
	Radius float64
}

func (c *Circle) Area() float64 {
	return 3.14 * c.Radius * c.Radius
}
`
	root := parseGo(t, src)
	tags := golang.GenerateTags(root, []byte(src), "circle.go", golang.DefaultKindConfig(), config.DefaultConfig())

	byName := make(map[string]tagInfo)
	for _, tg := range tags {
		byName[tg.Name] = tagInfo{kind: tg.Kind, fields: tg.Fields}
	}

	require.Contains(t, byName, "Circle")
	assert.Equal(t, "s", byName["Circle"].kind)

	require.Contains(t, byName, "Radius")
	assert.Equal(t, "m", byName["Radius"].kind)
	structField, _ := byName["Radius"].fields.Get("struct")
	assert.Equal(t, "shapes.Circle", structField)

	require.Contains(t, byName, "Area")
	assert.Equal(t, "f", byName["Area"].kind)
	recv, _ := byName["Area"].fields.Get("struct")
	assert.Equal(t, "shapes.Circle", recv)
	_, hasPackage := byName["Area"].fields.Get("package")
	assert.False(t, hasPackage, "methods do not carry a package field")
}

func TestGenerateTags_InterfaceMethodSpec(t *testing.T) {
	src := `package io

type Reader interface {
	Read(p []byte) (n int, err error)
}
`
	root := parseGo(t, src)
	tags := golang.GenerateTags(root, []byte(src), "reader.go", golang.DefaultKindConfig(), config.DefaultConfig())

	type found struct {
		kind       string
		interface_ string
	}
	var readTag *found
	for _, tg := range tags {
		if tg.Name == "Read" {
			v, _ := tg.Fields.Get("interface")
			readTag = &found{kind: tg.Kind, interface_: v}
		}
	}
	require.NotNil(t, readTag)
	assert.Equal(t, "n", readTag.kind)
	assert.Equal(t, "io.Reader", readTag.interface_)
}

type tagInfo struct {
	kind   string
	fields interface {
		Get(string) (string, bool)
	}
}
