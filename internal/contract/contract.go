// Package contract embeds the OpenAPI description of the booking API. The
// checks package validates response shapes against it and the fake booking
// service serves it on /openapi.json.
package contract

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	_ "embed"
)

//go:embed openapi.json
var Document []byte

var (
	loadOnce sync.Once
	loaded   *openapi3.T
	loadErr  error
)

// Load parses and validates the embedded document once per process.
func Load() (*openapi3.T, error) {
	loadOnce.Do(func() {
		loader := openapi3.NewLoader()

		loaded, loadErr = loader.LoadFromData(Document)
		if loadErr != nil {
			return
		}

		loadErr = loaded.Validate(loader.Context)
	})

	return loaded, loadErr
}
