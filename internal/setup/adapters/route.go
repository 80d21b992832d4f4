package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
)

// AdaptRoute converts a controller into an http.Handler
func AdaptRoute(controller presentationProtocols.Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequest := presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		}

		httpResponse := controller.Handle(httpRequest)

		if len(httpResponse.Headers) > 0 {
			for key, value := range httpResponse.Headers {
				w.Header().Set(key, value)
			}
		} else {
			w.Header().Set("Content-Type", "application/json")
		}

		w.WriteHeader(httpResponse.StatusCode)

		if httpResponse.Body != nil {
			defer httpResponse.Body.Close()
			io.Copy(w, httpResponse.Body)
		}
	})
}
