package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/skin-triage/internal/domain/triage"
)

func TestExtract_PlainJSON(t *testing.T) {
	obj, err := Extract(`{"label":"Acne","confidence":0.8}`)
	require.NoError(t, err)
	assert.Equal(t, "Acne", obj["label"])
	assert.Equal(t, 0.8, obj["confidence"])
}

func TestExtract_JSONWrappedInProse(t *testing.T) {
	obj, err := Extract(`Sure! {"label":"Acne","confidence":0.8}`)
	require.NoError(t, err)
	assert.Equal(t, "Acne", obj["label"])
	assert.Equal(t, 0.8, obj["confidence"])
}

func TestExtract_MarkdownFencing(t *testing.T) {
	raw := "```json\n{\"label\":\"Rosacea\",\"explanation\":\"redness across cheeks\"}\n```"
	obj, err := Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Rosacea", obj["label"])
	assert.Equal(t, "redness across cheeks", obj["explanation"])
}

func TestExtract_NoBraces(t *testing.T) {
	_, err := Extract("the model refused to answer")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestExtract_BracesButInvalidSpan(t *testing.T) {
	// The first-'{' .. last-'}' span is still not valid JSON.
	_, err := Extract(`model said { this is not json }`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestExtract_TwoObjectsOuterSpanInvalid(t *testing.T) {
	// Two independent objects: the outer span covers both plus the junk
	// between them and fails; the extractor does not pick either one.
	_, err := Extract(`{"a":1} junk {"b":2}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestExtract_NestedBracesTolerated(t *testing.T) {
	obj, err := Extract(`prefix {"outer":{"inner":true}} suffix`)
	require.NoError(t, err)
	inner, ok := obj["outer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, inner["inner"])
}

func TestExtractAny_TopLevelArray(t *testing.T) {
	v, err := ExtractAny(`[{"title":"a"},{"title":"b"}]`)
	require.NoError(t, err)
	arr, ok := v.([]any)
	require.True(t, ok)
	assert.Len(t, arr, 2)
}

func TestExtractAny_ObjectInProse(t *testing.T) {
	v, err := ExtractAny(`Here you go: {"videos":[]}`)
	require.NoError(t, err)
	obj, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, obj, "videos")
}
