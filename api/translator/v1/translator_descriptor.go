package v1

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	_ "google.golang.org/protobuf/types/known/emptypb"
	_ "google.golang.org/protobuf/types/known/wrapperspb"
)

// FileName is the path the service's file descriptor is registered under. It
// is also the Metadata of [Translator_ServiceDesc], which is how server
// reflection finds it.
const FileName = "translator/v1/translator.proto"

// File_translator_v1_translator_proto describes the Translator service. It is
// registered in protoregistry.GlobalFiles at init.
var File_translator_v1_translator_proto protoreflect.FileDescriptor

func init() {
	fd, err := protodesc.NewFile(fileDescriptorProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic(fmt.Sprintf("building %s descriptor: %v", FileName, err))
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(fmt.Sprintf("registering %s descriptor: %v", FileName, err))
	}
	File_translator_v1_translator_proto = fd
}

func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(FileName),
		Package: proto.String("translator.v1"),
		Dependency: []string{
			"google/protobuf/empty.proto",
			"google/protobuf/wrappers.proto",
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("Translator"),
			Method: []*descriptorpb.MethodDescriptorProto{
				{
					Name:       proto.String("GetTranslation"),
					InputType:  proto.String(".google.protobuf.StringValue"),
					OutputType: proto.String(".google.protobuf.StringValue"),
				},
				{
					Name:       proto.String("Shutdown"),
					InputType:  proto.String(".google.protobuf.Empty"),
					OutputType: proto.String(".google.protobuf.Empty"),
				},
			},
		}},
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/MKhiriev/go-translator/api/translator/v1;v1"),
		},
		Syntax: proto.String("proto3"),
	}
}
