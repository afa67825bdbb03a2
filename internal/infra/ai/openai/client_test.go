package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/skin-triage/internal/domain/triage"
)

// fakeVision serves /chat/completions with a fixed message content payload.
// content must be valid JSON for the "content" field (string or part array).
func fakeVision(t *testing.T, content string) (*Client, *map[string]any) {
	t.Helper()
	var gotReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		fmt.Fprintf(w, `{"choices":[{"message":{"role":"assistant","content":%s}}]}`, content)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "not-needed", "lfm2-vl"), &gotReq
}

func TestClassify_PlainContent(t *testing.T) {
	c, req := fakeVision(t, `"{\"label\":\"Acne\",\"confidence\":0.83,\"explanation\":\"comedones visible\"}"`)

	cls, err := c.Classify(context.Background(), []byte{0xFF, 0xD8, 0xFF})
	require.NoError(t, err)
	assert.Equal(t, "Acne", cls.Label)
	require.NotNil(t, cls.Confidence)
	assert.InDelta(t, 0.83, *cls.Confidence, 1e-9)
	assert.Equal(t, "comedones visible", cls.Explanation)

	// The request carries the multimodal user message with a data URL image.
	msgs := (*req)["messages"].([]any)
	require.Len(t, msgs, 2)
	user := msgs[1].(map[string]any)
	parts := user["content"].([]any)
	require.Len(t, parts, 2)
	img := parts[1].(map[string]any)["image_url"].(map[string]any)
	assert.Contains(t, img["url"], "data:image/jpeg;base64,")
}

func TestClassify_ContentWrappedInProse(t *testing.T) {
	c, _ := fakeVision(t, `"Sure thing! {\"label\":\"Psoriasis\"} hope that helps"`)

	cls, err := c.Classify(context.Background(), []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "Psoriasis", cls.Label)
	assert.Nil(t, cls.Confidence)
}

func TestClassify_FragmentedContent(t *testing.T) {
	// Content arrives as typed fragments; only text-typed ones are joined.
	c, _ := fakeVision(t, `[{"type":"text","text":"{\"label\":\"Rosacea\","},{"type":"text","text":"\"confidence\":0.5}"}]`)

	cls, err := c.Classify(context.Background(), []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "Rosacea", cls.Label)
	require.NotNil(t, cls.Confidence)
	assert.InDelta(t, 0.5, *cls.Confidence, 1e-9)
}

func TestClassify_MissingLabelDefaultsToUnknown(t *testing.T) {
	c, _ := fakeVision(t, `"{\"confidence\":0.2}"`)

	cls, err := c.Classify(context.Background(), []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "Unknown", cls.Label)
}

func TestClassify_NonNumericConfidenceIgnored(t *testing.T) {
	c, _ := fakeVision(t, `"{\"label\":\"Acne\",\"confidence\":\"high\"}"`)

	cls, err := c.Classify(context.Background(), []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "Acne", cls.Label)
	assert.Nil(t, cls.Confidence)
}

func TestClassify_MalformedReply(t *testing.T) {
	c, _ := fakeVision(t, `"I cannot classify this image."`)

	_, err := c.Classify(context.Background(), []byte("img"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestClassify_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, "not-needed", "lfm2-vl")

	_, err := c.Classify(context.Background(), []byte("img"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModelCall)
}
