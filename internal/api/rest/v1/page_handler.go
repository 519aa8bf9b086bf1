package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler answers the informational pages
type PageHandler interface {
	Index(ctx *gin.Context)
	About(ctx *gin.Context)
}

type pageHandler struct{}

// NewPageHandler creates a new PageHandler
func NewPageHandler() PageHandler {
	return &pageHandler{}
}

// Index handles the GET request for the landing page
// @Summary Landing page
// @Description Lists the path of every named route.
// @Tags Pages
// @Produce json
// @Success 200 {object} IndexResponse
// @Router / [get]
func (handler *pageHandler) Index(ctx *gin.Context) {
	links := make(map[string]string, len(Routes))
	for _, route := range Routes {
		path, err := PathFor(route.Name)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
			return
		}
		links[route.Name] = path
	}

	ctx.JSON(http.StatusOK, IndexResponse{Service: ServiceName, Links: links})
}

// About handles the GET request for the about page
func (handler *pageHandler) About(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, AboutResponse{
		Name:        ServiceName,
		Version:     Version,
		Description: "Registro de carreras, asignaturas y docentes, y solicitud de tutorías entre estudiantes y docentes.",
	})
}
