package api

import (
	"fmt"
	"net/http"
	"travel/pkg/serrors"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
)

// LoadSpec parses and validates the embedded v1 OpenAPI document.
func LoadSpec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(v1Spec)
	if err != nil {
		return nil, fmt.Errorf("could not load v1 spec: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid v1 spec: %w", err)
	}

	return doc, nil
}

// withRequestValidation rejects requests whose parameters or body do not
// match the operation in doc. Requests without a matching operation are passed
// through so the router answers them.
func withRequestValidation(doc *openapi3.T,
	onError func(http.ResponseWriter, *http.Request, error),
) (func(http.Handler) http.Handler, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("could not create openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)

				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				onError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "%s", err))

				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}
