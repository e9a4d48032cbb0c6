package presenter

import (
	"fmt"
	"io"

	"github.com/anchore/libversion/internal/presenter/models"
)

// TextPresenter writes one version per line, preceded by the package name when there is one.
type TextPresenter struct {
	document models.Document
}

func NewTextPresenter(doc models.Document) *TextPresenter {
	return &TextPresenter{document: doc}
}

func (p *TextPresenter) Present(output io.Writer) error {
	for _, v := range p.document.Versions {
		var err error
		if v.Name != "" {
			_, err = fmt.Fprintf(output, "%s %s\n", v.Name, v.Version)
		} else {
			_, err = fmt.Fprintln(output, v.Version)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
