package pdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordTokenCount(t *testing.T) {
	assert.Equal(t, 0, wordTokenCount(""))
	assert.Equal(t, 0, wordTokenCount("a b cd 12 345"))
	assert.Equal(t, 2, wordTokenCount("hello world"))
	// accented words count as word tokens
	assert.Equal(t, 3, wordTokenCount("educación física avanzada"))
	// runs shorter than three letters are ignored
	assert.Equal(t, 1, wordTokenCount("el la con"))
}

func TestAlnumRatio(t *testing.T) {
	assert.Equal(t, 0.0, alnumRatio(""))
	assert.Equal(t, 1.0, alnumRatio("abc123"))
	assert.InDelta(t, 0.5, alnumRatio("ab__"), 0.001)
	// accented characters are valid
	assert.Equal(t, 1.0, alnumRatio("ñandú"))
}

func TestAcceptableQuality(t *testing.T) {
	good := strings.Repeat("palabras con sentido claro para estudiar ", 20)
	assert.True(t, acceptableQuality(good, 50, 0.30))

	// too few words
	assert.False(t, acceptableQuality("pocas palabras sueltas", 50, 0.30))

	// enough words but drowned in noise
	noisy := strings.Repeat("word ", 60) + strings.Repeat("@#$%^&*()!~ ", 200)
	assert.False(t, acceptableQuality(noisy, 50, 0.30))

	assert.False(t, acceptableQuality("", 50, 0.30))
}

func TestTableTextFromHTML(t *testing.T) {
	html := `<html><body>
		<table>
			<tr><td>Cell A</td><td>Cell B</td></tr>
			<tr><th>Header</th><td> </td><td>Cell C</td></tr>
		</table>
	</body></html>`
	got := tableTextFromHTML(html)
	assert.Equal(t, "Cell A Cell B\nHeader Cell C", got)

	assert.Equal(t, "", tableTextFromHTML("<html><body><p>no tables</p></body></html>"))
}
