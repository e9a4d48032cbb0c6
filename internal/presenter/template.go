package presenter

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/mitchellh/go-homedir"

	"github.com/anchore/libversion/internal/presenter/models"
	"github.com/anchore/libversion/libversion"
)

// TemplatePresenter formats output according to a user-provided Go text template.
type TemplatePresenter struct {
	document           models.Document
	pathToTemplateFile string
}

func NewTemplatePresenter(doc models.Document, pathToTemplateFile string) *TemplatePresenter {
	return &TemplatePresenter{
		document:           doc,
		pathToTemplateFile: pathToTemplateFile,
	}
}

// Present creates output using a user-supplied Go template.
func (p *TemplatePresenter) Present(output io.Writer) error {
	expandedPathToTemplateFile, err := homedir.Expand(p.pathToTemplateFile)
	if err != nil {
		return fmt.Errorf("unable to expand path %q", p.pathToTemplateFile)
	}

	templateContents, err := os.ReadFile(expandedPathToTemplateFile)
	if err != nil {
		return fmt.Errorf("unable to get output template: %w", err)
	}

	templateName := expandedPathToTemplateFile
	tmpl, err := template.New(templateName).Funcs(FuncMap).Parse(string(templateContents))
	if err != nil {
		return fmt.Errorf("unable to parse template: %w", err)
	}

	err = tmpl.Execute(output, p.document)
	if err != nil {
		return fmt.Errorf("unable to execute supplied template: %w", err)
	}

	return nil
}

// FuncMap holds the functions available to template authors: the sprig library plus version helpers.
var FuncMap = func() template.FuncMap {
	f := sprig.TxtFuncMap()
	f["getLastIndex"] = func(collection interface{}) int {
		if v := reflect.ValueOf(collection); v.Kind() == reflect.Slice {
			return v.Len() - 1
		}

		return 0
	}
	f["versionCompare"] = libversion.Compare
	return f
}()
