package router

import "net/http"

type TransactionRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type OperatorRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

func New(
	transactionController TransactionRouteRegistrar,
	operatorController OperatorRouteRegistrar,
	authMiddleware func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()

	if transactionController != nil {
		transactionController.RegisterRoutes(mux, authMiddleware)
	}
	if operatorController != nil {
		operatorController.RegisterRoutes(mux, authMiddleware)
	}
	registerSwaggerRoutes(mux)

	return mux
}
