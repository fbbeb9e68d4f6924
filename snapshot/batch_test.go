package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/clems4ever/diffable/formatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAll_PreservesOrder(t *testing.T) {
	var inputs []Input
	for i := 0; i < 50; i++ {
		inputs = append(inputs, Input{
			Name:   fmt.Sprintf("in-%d", i),
			Markup: fmt.Sprintf("<p>%d</p>", i),
		})
	}

	results, err := FormatAll(context.Background(), inputs, formatter.NewPrinter(formatter.DefaultOptions()), 4)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))
	for i, res := range results {
		assert.Equal(t, inputs[i].Name, res.Name)
		assert.Equal(t, fmt.Sprintf("<p>\n  %d\n</p>", i), res.Output)
	}
}

func TestFormatAll_Empty(t *testing.T) {
	results, err := FormatAll(context.Background(), nil, formatter.NewPrinter(formatter.DefaultOptions()), 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFormatAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inputs := []Input{{Name: "a", Markup: "<p>a</p>"}, {Name: "b", Markup: "<p>b</p>"}}
	_, err := FormatAll(ctx, inputs, formatter.NewPrinter(formatter.DefaultOptions()), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.html")
	b := filepath.Join(dir, "b.html")
	require.NoError(t, os.WriteFile(a, []byte(`<br>`), 0644))
	require.NoError(t, os.WriteFile(b, []byte(`<div><span>x</span></div>`), 0644))

	results, err := FormatFiles(context.Background(), []string{a, b}, formatter.NewPrinter(formatter.DefaultOptions()), 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, Result{Name: a, Output: "<br />"}, results[0])
	assert.Equal(t, Result{Name: b, Output: "<div>\n  <span>\n    x\n  </span>\n</div>"}, results[1])
}

func TestFormatFiles_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.html")
	_, err := FormatFiles(context.Background(), []string{missing}, formatter.NewPrinter(formatter.DefaultOptions()), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), missing)
}
