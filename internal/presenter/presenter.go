package presenter

import (
	"io"

	"github.com/anchore/libversion/internal/format"
	"github.com/anchore/libversion/internal/presenter/models"
)

// Presenter writes a version listing in some output format.
type Presenter interface {
	Present(io.Writer) error
}

// Config holds everything a presenter may need besides the document itself.
type Config struct {
	TemplateFilePath string
	// WithColor allows presenters to emit terminal colors.
	WithColor bool
}

// GetPresenter retrieves a Presenter that matches a CLI option, nil for unknown formats.
func GetPresenter(f format.Format, c Config, doc models.Document) Presenter {
	switch f {
	case format.TextFormat:
		return NewTextPresenter(doc)
	case format.JSONFormat:
		return NewJSONPresenter(doc)
	case format.TableFormat:
		return NewTablePresenter(doc, c.WithColor)
	case format.TemplateFormat:
		return NewTemplatePresenter(doc, c.TemplateFilePath)
	default:
		return nil
	}
}
