package swagger

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	// URL is where the Swagger UI is served.
	URL = "/docs"

	// SpecURL is where the raw OpenAPI document is served.
	SpecURL = "/docs/openapi.yml"

	uiVersion = "5.29.3"
)

// Register serves the Swagger UI and the given OpenAPI document on r.
func Register(r chi.Router, spec []byte) {
	page := []byte(renderPage(SpecURL))

	r.Get(URL, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(page)
	})

	r.Get(SpecURL, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(spec)
	})
}

func renderPage(specPath string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Product API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@%[1]s/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@%[1]s/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '%[2]s',
      dom_id: '#swagger-ui',
      deepLinking: true,
      persistAuthorization: true,
    });
  };
</script>
</body>
</html>
`, uiVersion, specPath)
}
