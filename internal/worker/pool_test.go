package worker_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/treetags/internal/tag"
	"github.com/viant/treetags/internal/worker"
)

func TestPool_ProcessAllPaths(t *testing.T) {
	paths := []string{"a.go", "b.go", "c.go", "d.go", "e.go"}
	pool := worker.NewPool(2)

	results := pool.Process(paths, func(workerID int, path string) ([]tag.Tag, error) {
		return []tag.Tag{{Name: path, FileName: path}}, nil
	})

	require.Len(t, results, len(paths))
	var names []string
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, paths[i], r.Path)
		require.Len(t, r.Tags, 1)
		names = append(names, r.Tags[0].Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"a.go", "b.go", "c.go", "d.go", "e.go"}, names)
}

func TestPool_DefaultSize(t *testing.T) {
	pool := worker.NewPool(0)
	assert.Equal(t, worker.DefaultSize, pool.Size)
}

func TestPool_RecoversPanic(t *testing.T) {
	pool := worker.NewPool(3)
	results := pool.Process([]string{"ok.go", "boom.go"}, func(workerID int, path string) ([]tag.Tag, error) {
		if path == "boom.go" {
			panic("exploded")
		}
		return nil, nil
	})

	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
	assert.Contains(t, results[1].Err.Error(), "boom.go")
}

func TestPool_ProcessPropagatesError(t *testing.T) {
	pool := worker.NewPool(1)
	results := pool.Process([]string{"bad.go"}, func(workerID int, path string) ([]tag.Tag, error) {
		return nil, fmt.Errorf("parse failure")
	})
	require.Len(t, results, 1)
	assert.EqualError(t, results[0].Err, "parse failure")
}
