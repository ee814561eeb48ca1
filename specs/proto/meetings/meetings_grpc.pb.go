// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: meetings.proto

package meetings

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	MeetingsService_CreateMeeting_FullMethodName        = "/meetings.MeetingsService/CreateMeeting"
	MeetingsService_CompleteMeeting_FullMethodName      = "/meetings.MeetingsService/CompleteMeeting"
	MeetingsService_FailMeeting_FullMethodName          = "/meetings.MeetingsService/FailMeeting"
	MeetingsService_GetMeeting_FullMethodName           = "/meetings.MeetingsService/GetMeeting"
	MeetingsService_CountMonthlyMeetings_FullMethodName = "/meetings.MeetingsService/CountMonthlyMeetings"
)

// MeetingsServiceClient is the client API for MeetingsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type MeetingsServiceClient interface {
	CreateMeeting(ctx context.Context, in *CreateMeetingReq, opts ...grpc.CallOption) (*CreateMeetingResp, error)
	CompleteMeeting(ctx context.Context, in *CompleteMeetingReq, opts ...grpc.CallOption) (*CompleteMeetingResp, error)
	FailMeeting(ctx context.Context, in *FailMeetingReq, opts ...grpc.CallOption) (*FailMeetingResp, error)
	GetMeeting(ctx context.Context, in *GetMeetingReq, opts ...grpc.CallOption) (*GetMeetingResp, error)
	CountMonthlyMeetings(ctx context.Context, in *CountMonthlyMeetingsReq, opts ...grpc.CallOption) (*CountMonthlyMeetingsResp, error)
}

type meetingsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMeetingsServiceClient(cc grpc.ClientConnInterface) MeetingsServiceClient {
	return &meetingsServiceClient{cc}
}

func (c *meetingsServiceClient) CreateMeeting(ctx context.Context, in *CreateMeetingReq, opts ...grpc.CallOption) (*CreateMeetingResp, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateMeetingResp)
	err := c.cc.Invoke(ctx, MeetingsService_CreateMeeting_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *meetingsServiceClient) CompleteMeeting(ctx context.Context, in *CompleteMeetingReq, opts ...grpc.CallOption) (*CompleteMeetingResp, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CompleteMeetingResp)
	err := c.cc.Invoke(ctx, MeetingsService_CompleteMeeting_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *meetingsServiceClient) FailMeeting(ctx context.Context, in *FailMeetingReq, opts ...grpc.CallOption) (*FailMeetingResp, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FailMeetingResp)
	err := c.cc.Invoke(ctx, MeetingsService_FailMeeting_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *meetingsServiceClient) GetMeeting(ctx context.Context, in *GetMeetingReq, opts ...grpc.CallOption) (*GetMeetingResp, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetMeetingResp)
	err := c.cc.Invoke(ctx, MeetingsService_GetMeeting_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *meetingsServiceClient) CountMonthlyMeetings(ctx context.Context, in *CountMonthlyMeetingsReq, opts ...grpc.CallOption) (*CountMonthlyMeetingsResp, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CountMonthlyMeetingsResp)
	err := c.cc.Invoke(ctx, MeetingsService_CountMonthlyMeetings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MeetingsServiceServer is the server API for MeetingsService service.
// All implementations must embed UnimplementedMeetingsServiceServer
// for forward compatibility
type MeetingsServiceServer interface {
	CreateMeeting(context.Context, *CreateMeetingReq) (*CreateMeetingResp, error)
	CompleteMeeting(context.Context, *CompleteMeetingReq) (*CompleteMeetingResp, error)
	FailMeeting(context.Context, *FailMeetingReq) (*FailMeetingResp, error)
	GetMeeting(context.Context, *GetMeetingReq) (*GetMeetingResp, error)
	CountMonthlyMeetings(context.Context, *CountMonthlyMeetingsReq) (*CountMonthlyMeetingsResp, error)
	mustEmbedUnimplementedMeetingsServiceServer()
}

// UnimplementedMeetingsServiceServer must be embedded to have forward compatible implementations.
type UnimplementedMeetingsServiceServer struct {
}

func (UnimplementedMeetingsServiceServer) CreateMeeting(context.Context, *CreateMeetingReq) (*CreateMeetingResp, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateMeeting not implemented")
}
func (UnimplementedMeetingsServiceServer) CompleteMeeting(context.Context, *CompleteMeetingReq) (*CompleteMeetingResp, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompleteMeeting not implemented")
}
func (UnimplementedMeetingsServiceServer) FailMeeting(context.Context, *FailMeetingReq) (*FailMeetingResp, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FailMeeting not implemented")
}
func (UnimplementedMeetingsServiceServer) GetMeeting(context.Context, *GetMeetingReq) (*GetMeetingResp, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMeeting not implemented")
}
func (UnimplementedMeetingsServiceServer) CountMonthlyMeetings(context.Context, *CountMonthlyMeetingsReq) (*CountMonthlyMeetingsResp, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CountMonthlyMeetings not implemented")
}
func (UnimplementedMeetingsServiceServer) mustEmbedUnimplementedMeetingsServiceServer() {}

// UnsafeMeetingsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MeetingsServiceServer will
// result in compilation errors.
type UnsafeMeetingsServiceServer interface {
	mustEmbedUnimplementedMeetingsServiceServer()
}

func RegisterMeetingsServiceServer(s grpc.ServiceRegistrar, srv MeetingsServiceServer) {
	s.RegisterService(&MeetingsService_ServiceDesc, srv)
}

func _MeetingsService_CreateMeeting_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateMeetingReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MeetingsServiceServer).CreateMeeting(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MeetingsService_CreateMeeting_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MeetingsServiceServer).CreateMeeting(ctx, req.(*CreateMeetingReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _MeetingsService_CompleteMeeting_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteMeetingReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MeetingsServiceServer).CompleteMeeting(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MeetingsService_CompleteMeeting_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MeetingsServiceServer).CompleteMeeting(ctx, req.(*CompleteMeetingReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _MeetingsService_FailMeeting_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FailMeetingReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MeetingsServiceServer).FailMeeting(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MeetingsService_FailMeeting_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MeetingsServiceServer).FailMeeting(ctx, req.(*FailMeetingReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _MeetingsService_GetMeeting_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMeetingReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MeetingsServiceServer).GetMeeting(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MeetingsService_GetMeeting_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MeetingsServiceServer).GetMeeting(ctx, req.(*GetMeetingReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _MeetingsService_CountMonthlyMeetings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CountMonthlyMeetingsReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MeetingsServiceServer).CountMonthlyMeetings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MeetingsService_CountMonthlyMeetings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MeetingsServiceServer).CountMonthlyMeetings(ctx, req.(*CountMonthlyMeetingsReq))
	}
	return interceptor(ctx, in, info, handler)
}

// MeetingsService_ServiceDesc is the grpc.ServiceDesc for MeetingsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MeetingsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "meetings.MeetingsService",
	HandlerType: (*MeetingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateMeeting",
			Handler:    _MeetingsService_CreateMeeting_Handler,
		},
		{
			MethodName: "CompleteMeeting",
			Handler:    _MeetingsService_CompleteMeeting_Handler,
		},
		{
			MethodName: "FailMeeting",
			Handler:    _MeetingsService_FailMeeting_Handler,
		},
		{
			MethodName: "GetMeeting",
			Handler:    _MeetingsService_GetMeeting_Handler,
		},
		{
			MethodName: "CountMonthlyMeetings",
			Handler:    _MeetingsService_CountMonthlyMeetings_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "meetings.proto",
}
