// Package http exposes the article listing surface over net/http. It is a
// thin adapter: handlers translate query parameters into listing requests and
// view models into JSON, with no routing framework underneath.
package http
