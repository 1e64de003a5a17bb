package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by every HTTP handler group mounted by the Application.
type Handler interface {
	RegisterRoutes(router *httprouter.Router)
}

// Named lets a handler group identify itself in startup logs.
type Named interface {
	Name() string
}
