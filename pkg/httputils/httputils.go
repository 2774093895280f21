package httputils

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/fx"
)

// Handler is anything that can register its routes on the shared router.
type Handler interface {
	OnRouter(http.Handler)
}

// AsHandler annotates an fx constructor into the router's handler group.
func AsHandler(groupTag string, handler any) any {
	return fx.Annotate(handler, fx.ResultTags(groupTag), fx.As(new(Handler)))
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, errorMessage ...string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(ErrorResponse{
		Message: strings.Join(errorMessage, " "),
	})
}
