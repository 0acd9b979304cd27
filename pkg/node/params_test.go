package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parseline/parseline-go/pkg/parseline"
)

func TestDecodeParams_WeaklyTyped(t *testing.T) {
	// Host parameter bags carry JSON-decoded values: numbers as float64,
	// booleans occasionally as strings.
	params := map[string]any{
		"documentId":  "doc-1",
		"promptRevId": "rev-7",
		"force":       "true",
	}

	var p runParams
	require.NoError(t, decodeParams(params, &p))
	assert.Equal(t, "doc-1", p.DocumentID)
	assert.Equal(t, "rev-7", p.PromptRevID)
	assert.True(t, p.Force)

	var l listDocumentsParams
	require.NoError(t, decodeParams(map[string]any{"limit": float64(25)}, &l))
	assert.Equal(t, 25, l.Limit)
}

func TestDecodeParams_IgnoresUnknownKeys(t *testing.T) {
	var p tagIDParams
	require.NoError(t, decodeParams(map[string]any{
		"tagId":      "tag-1",
		"irrelevant": "ignored",
	}, &p))
	assert.Equal(t, "tag-1", p.TagID)
}

func TestBinaryAttachment_DefaultsProperty(t *testing.T) {
	item := Item{
		Binary: map[string]Attachment{
			"data": {FileName: "scan.pdf", Data: []byte("x")},
		},
	}

	attachment, err := binaryAttachment(item, "")
	require.NoError(t, err)
	assert.Equal(t, "scan.pdf", attachment.FileName)
}

func TestBinaryAttachment_Missing(t *testing.T) {
	_, err := binaryAttachment(Item{}, "upload")
	require.Error(t, err)
	assert.True(t, parseline.IsMissingInput(err))

	var missing *parseline.MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "upload", missing.Property)
}
