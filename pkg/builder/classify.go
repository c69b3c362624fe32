package builder

import (
	"github.com/jensneuse/abstractlogger"
	"github.com/vektah/gqlparser/v2/ast"
)

// classified is the partitioned view of a schema document: at most one
// schema definition, the type and directive definitions in declaration
// order, and a name table over every type definition.
type classified struct {
	schema     *ast.SchemaDefinition
	types      ast.DefinitionList
	directives ast.DirectiveDefinitionList
	defs       map[string]*ast.Definition
}

// classify partitions the document's top-level definitions. Definition
// kinds outside the build's scope (type and schema extensions) are skipped
// with a debug log, never fatally. Duplicate type names are undefined
// behavior; the first definition wins.
func classify(doc *ast.SchemaDocument, log abstractlogger.Logger) *classified {
	c := &classified{
		types:      doc.Definitions,
		directives: doc.Directives,
		defs:       make(map[string]*ast.Definition, len(doc.Definitions)),
	}

	for _, def := range doc.Definitions {
		if _, exists := c.defs[def.Name]; !exists {
			c.defs[def.Name] = def
		}
	}

	if len(doc.Schema) > 0 {
		c.schema = doc.Schema[0]
		for range doc.Schema[1:] {
			log.Debug("skipping extra schema definition")
		}
	}
	for _, ext := range doc.Extensions {
		log.Debug("skipping type extension", abstractlogger.String("name", ext.Name))
	}
	for range doc.SchemaExtension {
		log.Debug("skipping schema extension")
	}

	return c
}
