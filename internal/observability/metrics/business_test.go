package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestUpdateArticlesByStatus(t *testing.T) {
	statuses := []string{"draft", "published", "archived"}

	UpdateArticlesByStatus(map[string]int64{"draft": 3, "published": 12}, statuses)

	assert.Equal(t, 3.0, testutil.ToFloat64(ArticlesByStatus.WithLabelValues("draft")))
	assert.Equal(t, 12.0, testutil.ToFloat64(ArticlesByStatus.WithLabelValues("published")))
	assert.Equal(t, 0.0, testutil.ToFloat64(ArticlesByStatus.WithLabelValues("archived")))

	UpdateArticlesByStatus(map[string]int64{"archived": 1}, statuses)
	assert.Equal(t, 0.0, testutil.ToFloat64(ArticlesByStatus.WithLabelValues("draft")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ArticlesByStatus.WithLabelValues("archived")))
}

func TestUpdateServableAds(t *testing.T) {
	positions := []string{"header", "sidebar", "content", "footer"}
	UpdateServableAds(map[string]int64{"header": 2}, positions)

	assert.Equal(t, 2.0, testutil.ToFloat64(ServableAds.WithLabelValues("header")))
	assert.Equal(t, 0.0, testutil.ToFloat64(ServableAds.WithLabelValues("footer")))
}

func TestUpdateCategoriesTotal(t *testing.T) {
	UpdateCategoriesTotal(7)
	assert.Equal(t, 7.0, testutil.ToFloat64(CategoriesTotal))
}

func TestRecordArticleView(t *testing.T) {
	before := testutil.ToFloat64(ArticleViewsTotal)
	RecordArticleView()
	assert.Equal(t, before+1, testutil.ToFloat64(ArticleViewsTotal))
}

func TestRecordAdClick(t *testing.T) {
	before := testutil.ToFloat64(AdClicksTotal)
	RecordAdClick()
	assert.Equal(t, before+1, testutil.ToFloat64(AdClicksTotal))
}

func TestRecordImpressions(t *testing.T) {
	tests := []struct {
		name   string
		result string
		n      int
		delta  float64
	}{
		{name: "recorded batch", result: "recorded", n: 3, delta: 3},
		{name: "dropped batch", result: "dropped", n: 2, delta: 2},
		{name: "zero is ignored", result: "failed", n: 0, delta: 0},
		{name: "negative is ignored", result: "failed", n: -4, delta: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := AdImpressionsTotal.WithLabelValues(tt.result)
			before := testutil.ToFloat64(c)
			RecordImpressions(tt.result, tt.n)
			assert.Equal(t, before+tt.delta, testutil.ToFloat64(c))
		})
	}
}

func TestRecordSlugConflict(t *testing.T) {
	c := SlugConflictsTotal.WithLabelValues("article")
	before := testutil.ToFloat64(c)
	RecordSlugConflict("article")
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
