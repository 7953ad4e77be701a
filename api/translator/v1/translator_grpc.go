package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "translator.v1.Translator"

const (
	Translator_GetTranslation_FullMethodName = "/" + ServiceName + "/GetTranslation"
	Translator_Shutdown_FullMethodName       = "/" + ServiceName + "/Shutdown"
)

// TranslatorClient is the client API for the Translator service.
type TranslatorClient interface {
	// GetTranslation returns the translation of the request's input word.
	GetTranslation(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	// Shutdown asks the server to end its lifetime early.
	Shutdown(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type translatorClient struct {
	cc grpc.ClientConnInterface
}

// NewTranslatorClient returns a [TranslatorClient] bound to cc.
func NewTranslatorClient(cc grpc.ClientConnInterface) TranslatorClient {
	return &translatorClient{cc}
}

func (c *translatorClient) GetTranslation(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, Translator_GetTranslation_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *translatorClient) Shutdown(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, Translator_Shutdown_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TranslatorServer is the server API for the Translator service.
// Implementations must embed [UnimplementedTranslatorServer] for forward
// compatibility.
type TranslatorServer interface {
	GetTranslation(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Shutdown(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	mustEmbedUnimplementedTranslatorServer()
}

// UnimplementedTranslatorServer returns codes.Unimplemented for every method.
type UnimplementedTranslatorServer struct{}

func (UnimplementedTranslatorServer) GetTranslation(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTranslation not implemented")
}

func (UnimplementedTranslatorServer) Shutdown(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Shutdown not implemented")
}

func (UnimplementedTranslatorServer) mustEmbedUnimplementedTranslatorServer() {}

// RegisterTranslatorServer registers srv on s.
func RegisterTranslatorServer(s grpc.ServiceRegistrar, srv TranslatorServer) {
	s.RegisterService(&Translator_ServiceDesc, srv)
}

func _Translator_GetTranslation_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TranslatorServer).GetTranslation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Translator_GetTranslation_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TranslatorServer).GetTranslation(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Translator_Shutdown_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TranslatorServer).Shutdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Translator_Shutdown_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TranslatorServer).Shutdown(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Translator_ServiceDesc is the grpc.ServiceDesc for the Translator service.
var Translator_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TranslatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetTranslation",
			Handler:    _Translator_GetTranslation_Handler,
		},
		{
			MethodName: "Shutdown",
			Handler:    _Translator_Shutdown_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: FileName,
}
