// Package grpc implements the gRPC transport layer of the translator service.
//
// [Handler] satisfies translatorv1.TranslatorServer and delegates to the
// service layer. Cross-cutting concerns (trace ids, access logging, metrics, panic
// recovery) are unary interceptors returned by [Handler.UnaryInterceptors].
package grpc
