package readability

import (
	"strings"
	"testing"

	"webtext/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Test Article</title><script>var tracking = "do not keep";</script></head>
<body>
  <nav><a href="/">Home</a><a href="/about">About us and our navigation menu</a></nav>
  <div class="advertisement">Buy the sponsored thing now</div>
  <article>
    <h1>The Long Walk</h1>
    <p>The river ran quietly past the old mill, carrying leaves that had fallen during the night. Nobody in the village remembered when the wheel had last turned, but everyone agreed it would turn again one day.</p>
    <p>Children gathered on the bank every morning to watch the water, counting the leaves as they drifted toward the bridge. Their parents pretended not to notice the game, though most of them had played it too.</p>
    <p>In the evenings the miller's daughter walked along the path with a lantern, checking the sluice gates and listening for the sound of the wheel that never came.</p>
  </article>
  <footer>Copyright footer text that should disappear</footer>
</body>
</html>`

func TestExtractor_Extract_MainContent(t *testing.T) {
	text, err := NewExtractor().Extract(&domain.RawDownload{
		URL:    "https://example.com/story",
		Body:   articlePage,
		Source: "session",
	})

	require.NoError(t, err)
	assert.Contains(t, text, "The river ran quietly past the old mill")
	assert.Contains(t, text, "miller's daughter")
	assert.NotContains(t, text, "do not keep")
	assert.NotContains(t, text, "sponsored thing")
	assert.NotContains(t, text, "Copyright footer")
	assert.Greater(t, len([]rune(text)), 100)
}

func TestExtractor_Extract_EmptyBody(t *testing.T) {
	text, err := NewExtractor().Extract(&domain.RawDownload{URL: "https://example.com", Body: "   "})

	assert.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractor_Extract_NilDownload(t *testing.T) {
	text, err := NewExtractor().Extract(nil)

	assert.NoError(t, err)
	assert.Empty(t, text)
}

func TestNormalizeText(t *testing.T) {
	input := "  First   line \n\n\n\n  Second\tline  \n   \nThird  "
	assert.Equal(t, "First line\n\nSecond line\n\nThird", normalizeText(input))
	assert.False(t, strings.Contains(normalizeText("a\n\n\n\nb"), "\n\n\n"))
}
