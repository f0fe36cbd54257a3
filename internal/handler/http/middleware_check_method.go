// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-vault-adder/internal/utils"
)

// hideMethodNotAllowed is registered as the router's MethodNotAllowed
// handler. It answers 404 instead of chi's default 405 so that callers
// using an unsupported method cannot tell the route exists.
func hideMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	notFound(w, r)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
