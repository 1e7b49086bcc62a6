package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/openpersona/console/internal/session"
	"github.com/openpersona/console/web/src/templates/pages"
)

// HomeHandler handles requests for the landing page.
type HomeHandler struct {
	store *session.Store
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(store *session.Store) *HomeHandler {
	return &HomeHandler{store: store}
}

// HomeGet handles the GET request for the landing page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	return render(c, h.store, "", pages.Home(h.store.Authenticated()))
}
