package handler

import (
	"net/http"

	"listing-wizard/bootstrap"
	"listing-wizard/internal/interfaces/router"
)

var appHandler http.Handler

func init() {
	app, err := bootstrap.New()
	if err != nil {
		panic("app create: " + err.Error())
	}
	appHandler = router.Handler(app)
}

// Handler is the Vercel serverless entry point. All requests are rewritten here.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()
	appHandler.ServeHTTP(w, r)
}
