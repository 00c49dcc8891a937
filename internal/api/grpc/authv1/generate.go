// Package authv1 holds the generated protobuf and gRPC bindings for the
// helpdesk.auth.v1 API defined in api/proto.
package authv1

//go:generate protoc -I ../../../../api/proto --go_out=../../../.. --go_opt=module=github.com/dtroode/helpdesk-auth --go-grpc_out=../../../.. --go-grpc_opt=module=github.com/dtroode/helpdesk-auth helpdesk/auth/v1/auth.proto
