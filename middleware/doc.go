// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Each request gets an X-Request-ID, taken from the incoming
header or generated as a UUID, and echoed on the response.

# CORS Middleware

Allow any origin:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

OPTIONS preflight requests are answered with 200 and never reach the mux.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound)

Error bodies are uniform:

	{"success": false, "error": 404, "message": "resource not found"}

Parse JSON request bodies:

	var req models.QuizRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest)
		return
	}
*/
package middleware
