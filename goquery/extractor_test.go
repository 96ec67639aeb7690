package goquery_test

import (
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagecheck"
	"github.com/fwojciec/pagecheck/bluemonday"
	"github.com/fwojciec/pagecheck/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const hotelPage = `<!DOCTYPE html>
<html>
<body>
<section class="about">
  <div class="about__content">
    <p class="section__description">
      Family run since 1962, our hotel sits between the old harbour and the hills.
    </p>
  </div>
</section>
<div class="feature__card">
  <h4>Quiet rooms</h4>
  <p>Thick stone walls keep every room <em>cool and quiet</em> all summer.</p>
  <p>A second paragraph that the card pattern ignores.</p>
</div>
<div class="room__card">
  <div class="room__card__details">
    <h4>Harbour suite</h4>
    <p>Wake up to fishing boats A&amp;B &lt;test&gt; below your balcony.</p>
  </div>
</div>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("selects regions with CSS selectors", func(t *testing.T) {
		t.Parallel()

		e, err := goquery.NewExtractor(pagecheck.ContentPatternSet(), bluemonday.NewCleaner(), 10)
		require.NoError(t, err)

		regions, err := e.Extract(hotelPage)

		require.NoError(t, err)
		require.Len(t, regions, 4)
		assert.Equal(t, "descriptions", regions[0].Name)
		assert.Equal(t, []string{
			"Family run since 1962, our hotel sits between the old harbour and the hills.",
		}, regions[0].Fragments)
		assert.Equal(t, []string{
			"Thick stone walls keep every room cool and quiet all summer.",
		}, regions.Get("feature_cards"))
		assert.Equal(t, []string{
			"Wake up to fishing boats A&B <test> below your balcony.",
		}, regions.Get("room_descriptions"))
		assert.Equal(t, regions[0].Fragments, regions.Get("about_content"))
	})

	t.Run("no matching structure yields empty map", func(t *testing.T) {
		t.Parallel()

		e, err := goquery.NewExtractor(pagecheck.ContentPatternSet(), bluemonday.NewCleaner(), 10)
		require.NoError(t, err)

		regions, err := e.Extract(`<html><body><p>Nothing to see here at all.</p></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, regions)
	})

	t.Run("skips patterns without selectors", func(t *testing.T) {
		t.Parallel()

		e, err := goquery.NewExtractor(pagecheck.SectionsPatternSet(), bluemonday.NewCleaner(), 10)
		require.NoError(t, err)

		regions, err := e.Extract(`<h4>Rooftop terrace bar</h4><p>Cocktails at sunset with a view.</p>`)

		require.NoError(t, err)
		assert.Nil(t, regions.Get("headings"))
	})
}

func TestExtractor_ExtractDocument(t *testing.T) {
	t.Parallel()

	t.Run("unrenderable element fails extraction", func(t *testing.T) {
		t.Parallel()

		p := &html.Node{
			Type:     html.ElementNode,
			Data:     "p",
			DataAtom: atom.P,
			Attr:     []html.Attribute{{Key: "class", Val: "section__description"}},
		}
		p.AppendChild(&html.Node{Type: html.ErrorNode})
		root := &html.Node{Type: html.DocumentNode}
		root.AppendChild(p)

		e, err := goquery.NewExtractor(pagecheck.ContentPatternSet(), bluemonday.NewCleaner(), 10)
		require.NoError(t, err)

		regions, err := e.ExtractDocument(gq.NewDocumentFromNode(root))

		assert.Equal(t, pagecheck.EINVALID, pagecheck.ErrorCode(err))
		assert.Contains(t, pagecheck.ErrorMessage(err), "descriptions")
		assert.Empty(t, regions)
	})
}

func TestNewExtractor(t *testing.T) {
	t.Parallel()

	t.Run("rejects invalid selector", func(t *testing.T) {
		t.Parallel()

		set := pagecheck.PatternSet{
			Name:     "broken",
			Patterns: []pagecheck.Pattern{{Region: "a", Expr: `<p>(.*?)</p>`, Selector: "p[["}},
		}

		_, err := goquery.NewExtractor(set, bluemonday.NewCleaner(), 10)

		require.Error(t, err)
		assert.Equal(t, pagecheck.EINVALID, pagecheck.ErrorCode(err))
	})

	t.Run("rejects set without selectors", func(t *testing.T) {
		t.Parallel()

		set := pagecheck.PatternSet{
			Name:     "regex-only",
			Patterns: []pagecheck.Pattern{{Region: "a", Expr: `<p>(.*?)</p>`}},
		}

		_, err := goquery.NewExtractor(set, bluemonday.NewCleaner(), 10)

		require.Error(t, err)
		assert.Equal(t, pagecheck.EINVALID, pagecheck.ErrorCode(err))
	})
}
