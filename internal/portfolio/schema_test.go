package portfolio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/portfolio/domain"
)

func TestDecodeDocument(t *testing.T) {
	raw, err := json.Marshal(Defaults())
	require.NoError(t, err)

	doc, err := DecodeDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), doc)
}

func TestDecodeDocumentRejectsBadShapes(t *testing.T) {
	tests := map[string]string{
		"missing sections": `{"hero":{}}`,
		"wrong type":       `{"hero":{},"about":{"skills":"Go"},"experience":[],"stats":[],"projects":[],"certificates":[],"blogs":[],"contact":{}}`,
		"not an object":    `[]`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(raw))
			require.Error(t, err)
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
		})
	}
}
