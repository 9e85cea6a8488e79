package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopassist/internal/domain"
	"shopassist/internal/faq"
)

func TestExtractOrderID(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		found   bool
	}{
		{"order keyword", "Where is order ORD-100005?", "ORD-100005", true},
		{"order keyword lowercase", "where is my order ord-100005", "ord-100005", true},
		{"hash prefix", "track #ABC123", "ABC123", true},
		{"bare ord id", "ORD-12345 status please", "ORD-12345", true},
		{"order hash", "order #555666", "555666", true},
		{"tracking phrase", "tracking info for order XYZ999888", "XYZ999888", true},
		{"no extraction", "hello there", "", false},
		{"short candidate rejected", "order 12", "", false},
		{"long message no fallback", "i would like to know the status of the thing i bought from you last week sometime", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractOrderID(tt.message)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The keyword fallback grabs any 6+ character token from a short
// tracking-flavored message. That misfires on ordinary words; the
// behavior is pinned here as known rather than tightened.
func TestExtractOrderIDKeywordFallbackFalsePositive(t *testing.T) {
	got, found := ExtractOrderID("where is thing123456")
	require.True(t, found)
	assert.Equal(t, "thing123456", got)

	// Even a plain word is grabbed when the message smells like tracking.
	got, found = ExtractOrderID("package missing")
	require.True(t, found)
	assert.Equal(t, "package", got)
}

func TestClassify(t *testing.T) {
	entries := []domain.FAQEntry{
		{Question: "What is your return policy?", Answer: "30 days."},
	}
	c := NewClassifier(faq.NewRetriever(entries, nil, faq.DefaultThreshold))

	t.Run("order wins over faq", func(t *testing.T) {
		got := c.Classify("Where is order ORD-100005?")
		assert.Equal(t, domain.IntentOrder, got.Kind)
		assert.Equal(t, "ORD-100005", got.OrderID)
	})

	t.Run("faq match", func(t *testing.T) {
		got := c.Classify("What is your return policy?")
		require.Equal(t, domain.IntentFAQ, got.Kind)
		require.NotNil(t, got.FAQMatch)
		assert.Equal(t, "30 days.", got.FAQMatch.Answer)
	})

	t.Run("fallback", func(t *testing.T) {
		got := c.Classify("tell me a joke")
		assert.Equal(t, domain.IntentFallback, got.Kind)
		assert.Nil(t, got.FAQMatch)
	})
}
