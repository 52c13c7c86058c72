package handlers

import (
	"net/http"
	"strconv"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/aaravmahajanofficial/storefront/internal/views"
)

// Client hints carrying the browser viewport width.
var viewportHeaders = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}

func viewportWidth(r *http.Request) int {
	for _, h := range viewportHeaders {
		if v, err := strconv.Atoi(r.Header.Get(h)); err == nil && v > 0 {
			return v
		}
	}

	return 0
}

// pathID writes a 400 and returns false when the path parameter is not a
// positive integer.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := utils.PathID(r, name)
	if err != nil {
		response.Error(w, appErrors.BadRequestError("Invalid "+name).WithDetail(err.Error()))
		return 0, false
	}

	return id, true
}

// queryInt reads a positive integer query parameter, falling back to def.
func queryInt(r *http.Request, key string, def int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil && v > 0 {
		return v
	}

	return def
}

// pageFailure renders a failed page load. Missing resources get the
// not-found view.
func pageFailure(w http.ResponseWriter, err error, what, title string) {
	if appErrors.IsNotFound(err) {
		response.Failure(w, err, views.NotFoundView(what))
		return
	}

	response.Failure(w, err, views.NewErrorView(title, err))
}
