package presenter

import (
	"encoding/json"
	"io"

	"github.com/anchore/libversion/internal/presenter/models"
)

// JSONPresenter writes the document as JSON.
type JSONPresenter struct {
	document models.Document
}

func NewJSONPresenter(doc models.Document) *JSONPresenter {
	return &JSONPresenter{document: doc}
}

func (p *JSONPresenter) Present(output io.Writer) error {
	enc := json.NewEncoder(output)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(&p.document)
}
