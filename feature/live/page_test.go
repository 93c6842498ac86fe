package live

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLivePage(t *testing.T) {
	page, err := renderLivePage(`<h1 class="promo">Sale</h1>`, 1234)
	require.NoError(t, err)

	body := string(page)
	assert.Contains(t, body, `<div id="live-container"><h1 class="promo">Sale</h1></div>`)
	assert.Regexp(t, `var viewer = \s*1234\s*;`, body)
	assert.Contains(t, body, "/ws?viewer=")
}

func TestParseViewer(t *testing.T) {
	assert.Equal(t, int64(0), parseViewer(""))
	assert.Equal(t, int64(0), parseViewer("abc"))
	assert.Equal(t, int64(0), parseViewer("-5"))
	assert.Equal(t, int64(1712345678901), parseViewer("1712345678901"))
}
