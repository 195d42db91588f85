package router

import "net/http"

type Middleware = func(next http.Handler) http.Handler

// Router registers method and path patterns in net/http ServeMux syntax.
type Router interface {
	http.Handler

	Use(middleware Middleware)
	Get(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Post(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Put(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Delete(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Options(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
}
