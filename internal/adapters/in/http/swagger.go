package http

import (
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

var registerDocOnce sync.Once

// openAPIDoc serves the API document to the Swagger UI.
type openAPIDoc struct {
	doc *openapi3.T
}

func (d openAPIDoc) ReadDoc() string {
	raw, err := json.Marshal(d.doc)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// registerDoc publishes doc under the default swag instance name, once per process.
func registerDoc(doc *openapi3.T) {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{doc: doc})
	})
}
