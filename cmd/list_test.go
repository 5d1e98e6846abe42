package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/ifrshub/internal/catalog"
	"github.com/abhisek/ifrshub/internal/render"
)

func TestPrintPage(t *testing.T) {
	lib := catalog.Default()
	r := render.New(nil)

	var buf bytes.Buffer
	printPage(&buf, r.Tests(lib).Page)

	out := buf.String()
	assert.Contains(t, out, "Knowledge Tests")
	assert.Contains(t, out, "ifrs-15-basic")
	assert.Contains(t, out, "Best score 87%")
}

func TestPrintResults(t *testing.T) {
	lib := catalog.Default()

	var buf bytes.Buffer
	printResults(&buf, render.New(nil).Results(lib.Results()))

	out := buf.String()
	assert.Contains(t, out, "passed")
	assert.Contains(t, out, "needs improvement")
}
