// Package v1 defines the translator.v1.Translator gRPC service: its method
// names, server and client interfaces, and the service descriptor used to
// register an implementation on a *grpc.Server.
//
// The service uses protobuf well-known types for its messages. Its file
// descriptor is built in code and registered as [FileName], equivalent to:
//
//	syntax = "proto3";
//	package translator.v1;
//	import "google/protobuf/empty.proto";
//	import "google/protobuf/wrappers.proto";
//
//	service Translator {
//	  rpc GetTranslation(google.protobuf.StringValue) returns (google.protobuf.StringValue);
//	  rpc Shutdown(google.protobuf.Empty) returns (google.protobuf.Empty);
//	}
//
// On the wire StringValue is identical to a message with a single
// "string input_word = 1" (or "translated_word") field, so clients generated
// from such a schema interoperate without change.
//
// No channel-level security is applied by this package; see the server
// package for how the listener is built.
package v1
