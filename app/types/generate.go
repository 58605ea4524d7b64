// Package types holds the gRPC contract of the document lock service.
package types

//go:generate protoc --proto_path=. --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative doclocks.proto
