package format

import (
	"strings"

	"github.com/scylladb/go-set/strset"
)

var (
	UnknownFormat  = Format{name: "unknown"}
	TextFormat     = Format{name: "text"}
	JSONFormat     = Format{name: "json"}
	TableFormat    = Format{name: "table"}
	TemplateFormat = Format{name: "template"}
)

// Format is a dedicated type to represent a specific kind of presenter output format.
type Format struct {
	name string
}

func (f Format) String() string {
	return f.name
}

// AvailableFormats is a list of presenter format options available to users.
var AvailableFormats = []Format{
	TextFormat,
	JSONFormat,
	TableFormat,
	TemplateFormat,
}

// Parse returns the presenter format specified by the given user input, an empty input being text.
func Parse(userInput string) Format {
	name := strings.ToLower(strings.TrimSpace(userInput))
	if name == "" {
		return TextFormat
	}
	for _, f := range AvailableFormats {
		if f.name == name {
			return f
		}
	}
	return UnknownFormat
}

// Names lists the formats by name, restricted to the given formats when any are given.
func Names(only ...Format) *strset.Set {
	if len(only) == 0 {
		only = AvailableFormats
	}
	names := strset.New()
	for _, f := range only {
		names.Add(f.name)
	}
	return names
}
