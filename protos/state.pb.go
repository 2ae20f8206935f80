// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.4
// 	protoc        (unknown)
// source: state.proto

package protos

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type State struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_S0 uint32                 `protobuf:"varint,1,opt,name=s0,proto3"`
	xxx_hidden_S1 uint32                 `protobuf:"varint,2,opt,name=s1,proto3"`
	xxx_hidden_S2 uint32                 `protobuf:"varint,3,opt,name=s2,proto3"`
	xxx_hidden_S3 uint32                 `protobuf:"varint,4,opt,name=s3,proto3"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *State) Reset() {
	*x = State{}
	mi := &file_state_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *State) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*State) ProtoMessage() {}

func (x *State) ProtoReflect() protoreflect.Message {
	mi := &file_state_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *State) GetS0() uint32 {
	if x != nil {
		return x.xxx_hidden_S0
	}
	return 0
}

func (x *State) GetS1() uint32 {
	if x != nil {
		return x.xxx_hidden_S1
	}
	return 0
}

func (x *State) GetS2() uint32 {
	if x != nil {
		return x.xxx_hidden_S2
	}
	return 0
}

func (x *State) GetS3() uint32 {
	if x != nil {
		return x.xxx_hidden_S3
	}
	return 0
}

func (x *State) SetS0(v uint32) {
	x.xxx_hidden_S0 = v
}

func (x *State) SetS1(v uint32) {
	x.xxx_hidden_S1 = v
}

func (x *State) SetS2(v uint32) {
	x.xxx_hidden_S2 = v
}

func (x *State) SetS3(v uint32) {
	x.xxx_hidden_S3 = v
}

type State_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	S0 uint32
	S1 uint32
	S2 uint32
	S3 uint32
}

func (b0 State_builder) Build() *State {
	m0 := &State{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_S0 = b.S0
	x.xxx_hidden_S1 = b.S1
	x.xxx_hidden_S2 = b.S2
	x.xxx_hidden_S3 = b.S3
	return m0
}

var File_state_proto protoreflect.FileDescriptor

var file_state_proto_rawDesc = string([]byte{
	0x0a, 0x0b, 0x73, 0x74, 0x61, 0x74, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x06, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x73, 0x22, 0x47, 0x0a, 0x05, 0x53, 0x74, 0x61, 0x74, 0x65, 0x12, 0x0e,
	0x0a, 0x02, 0x73, 0x30, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x02, 0x73, 0x30, 0x12, 0x0e,
	0x0a, 0x02, 0x73, 0x31, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x02, 0x73, 0x31, 0x12, 0x0e,
	0x0a, 0x02, 0x73, 0x32, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x02, 0x73, 0x32, 0x12, 0x0e,
	0x0a, 0x02, 0x73, 0x33, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x02, 0x73, 0x33, 0x42, 0x29,
	0x5a, 0x27, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x6d, 0x69, 0x6e,
	0x61, 0x76, 0x6f, 0x69, 0x69, 0x2f, 0x75, 0x6e, 0x69, 0x74, 0x79, 0x2d, 0x72, 0x61, 0x6e, 0x64,
	0x6f, 0x6d, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x73, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x33,
})

var file_state_proto_msgTypes = make([]protoimpl.MessageInfo, 1)
var file_state_proto_goTypes = []any{
	(*State)(nil), // 0: protos.State
}
var file_state_proto_depIdxs = []int32{
	0, // [0:0] is the sub-list for method output_type
	0, // [0:0] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_state_proto_init() }
func file_state_proto_init() {
	if File_state_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_state_proto_rawDesc), len(file_state_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   1,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_state_proto_goTypes,
		DependencyIndexes: file_state_proto_depIdxs,
		MessageInfos:      file_state_proto_msgTypes,
	}.Build()
	File_state_proto = out.File
	file_state_proto_goTypes = nil
	file_state_proto_depIdxs = nil
}
