package proto

//go:generate protoc --go_out=../.. --go_opt=module=github.com/meetingmind/backend --go-grpc_out=../.. --go-grpc_opt=module=github.com/meetingmind/backend sso.proto
//go:generate protoc --go_out=../.. --go_opt=module=github.com/meetingmind/backend --go-grpc_out=../.. --go-grpc_opt=module=github.com/meetingmind/backend meetings.proto
