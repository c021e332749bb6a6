package browser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/net/html"
)

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return root
}

func TestFindByID(t *testing.T) {
	root := parse(t, `<html><body><div id="a"><span id="b">hi</span></div></body></html>`)

	assert.NotNil(t, FindByID(root, "b"))
	assert.Nil(t, FindByID(root, "missing"))
}

func TestCountByID(t *testing.T) {
	root := parse(t, `<html><body><div id="dup"></div><div id="dup"></div></body></html>`)

	assert.Equal(t, 2, CountByID(root, "dup"))
	assert.Equal(t, 0, CountByID(root, "missing"))
}

func TestHasClassMatchesWholeTokens(t *testing.T) {
	n := NewElement("div", "class", "pla-unit extra")

	assert.True(t, HasClass(n, "pla-unit"))
	assert.True(t, HasClass(n, "extra"))
	assert.False(t, HasClass(n, "pla"))
}

func TestSetAttrReplacesExisting(t *testing.T) {
	n := NewElement("div", "style", "display:none")

	SetAttr(n, "style", "display:block")

	v, ok := GetAttr(n, "style")
	require.True(t, ok)
	assert.Equal(t, "display:block", v)
	assert.Len(t, n.Attr, 1)
}

func TestTextContainsIsCaseInsensitive(t *testing.T) {
	root := parse(t, `<html><body><div>Sponsored Products</div></body></html>`)

	assert.True(t, TextContains(root, "sponsored products"))
	assert.False(t, TextContains(root, "organic results"))
}

func TestReplaceChildren(t *testing.T) {
	n := NewElement("div")
	n.AppendChild(NewText("old"))

	ReplaceChildren(n, NewText("new-1"), NewText("new-2"))

	assert.Equal(t, "new-1new-2", Text(n))
}

func TestPrependChild(t *testing.T) {
	n := NewElement("div")
	n.AppendChild(NewText("second"))

	PrependChild(n, NewText("first"))

	assert.Equal(t, "firstsecond", Text(n))
}

func TestRemoveNodeToleratesDetached(t *testing.T) {
	root := parse(t, `<html><body><div id="x"></div></body></html>`)
	x := FindByID(root, "x")

	RemoveNode(x)
	RemoveNode(x) // already detached
	RemoveNode(nil)

	assert.Nil(t, FindByID(root, "x"))
}

func TestSimPageNavigateKeepsDocument(t *testing.T) {
	page := NewSimPage("https://example.com/a", `<html><body><div id="keep"></div></body></html>`)
	before := page.Root()

	page.Navigate("https://example.com/b")

	assert.Equal(t, "https://example.com/b", page.URL())
	assert.Same(t, before, page.Root())
	assert.NotNil(t, FindByID(page.Root(), "keep"))
}

func TestSimPageLoadReplacesDocument(t *testing.T) {
	page := NewSimPage("https://example.com/a", `<html><body><div id="old"></div></body></html>`)

	page.Load("https://example.com/b", `<html><body><div id="new"></div></body></html>`)

	assert.Nil(t, FindByID(page.Root(), "old"))
	assert.NotNil(t, FindByID(page.Root(), "new"))
}
