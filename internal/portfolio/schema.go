package portfolio

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/fastygo/portfolio/domain"
)

//go:embed portfolio.schema.json
var documentSchema string

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

// DecodeDocument validates raw against the document schema and decodes it.
// Shape problems are INVALID domain errors listing every violation.
func DecodeDocument(raw []byte) (domain.Portfolio, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchema))
	})
	if schemaErr != nil {
		return domain.Portfolio{}, domain.WrapError(domain.ErrCodeInternal, "document schema unavailable", schemaErr)
	}

	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return domain.Portfolio{}, domain.WrapError(domain.ErrCodeInvalid, "Invalid JSON body", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return domain.Portfolio{}, domain.NewError(domain.ErrCodeInvalid, "Invalid portfolio document: "+strings.Join(msgs, "; "))
	}

	var doc domain.Portfolio
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Portfolio{}, domain.WrapError(domain.ErrCodeInvalid, "Invalid JSON body", err)
	}
	return doc, nil
}
