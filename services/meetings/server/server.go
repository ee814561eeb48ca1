package server

import (
	"context"

	"github.com/meetingmind/backend/services/meetings/entity"
	"github.com/meetingmind/backend/services/meetings/usecase"
	pb "github.com/meetingmind/backend/specs/proto/meetings"
	"google.golang.org/grpc"
)

type Server struct {
	pb.UnimplementedMeetingsServiceServer

	usecase usecase.Usecase
}

func NewServerOptions(usecase usecase.Usecase) *Server {
	return &Server{
		usecase: usecase,
	}
}

func (s *Server) NewServer() (*grpc.Server, error) {
	srv := grpc.NewServer()
	pb.RegisterMeetingsServiceServer(srv, s)
	return srv, nil
}

func (s *Server) CreateMeeting(ctx context.Context, req *pb.CreateMeetingReq) (*pb.CreateMeetingResp, error) {
	meeting, err := s.usecase.CreateMeeting(ctx, &entity.CreateMeetingRequest{
		OwnerUserID: req.OwnerUserId,
		Title:       req.Title,
		InputKind:   entity.InputKind(req.InputKind),
	})
	if err != nil {
		return nil, err
	}

	return &pb.CreateMeetingResp{
		MeetingId: meeting.ID,
	}, nil
}

func (s *Server) CompleteMeeting(ctx context.Context, req *pb.CompleteMeetingReq) (*pb.CompleteMeetingResp, error) {
	if err := s.usecase.CompleteMeeting(ctx, req.MeetingId, makeResultPbToEntity(req.Result)); err != nil {
		return nil, err
	}

	return &pb.CompleteMeetingResp{
		Success:   true,
		MeetingId: req.MeetingId,
	}, nil
}

func (s *Server) FailMeeting(ctx context.Context, req *pb.FailMeetingReq) (*pb.FailMeetingResp, error) {
	if err := s.usecase.FailMeeting(ctx, req.MeetingId, req.ErrorMessage); err != nil {
		return nil, err
	}

	return &pb.FailMeetingResp{
		Success:   true,
		MeetingId: req.MeetingId,
	}, nil
}

func (s *Server) GetMeeting(ctx context.Context, req *pb.GetMeetingReq) (*pb.GetMeetingResp, error) {
	meeting, err := s.usecase.GetMeeting(ctx, req.MeetingId)
	if err != nil {
		return nil, err
	}

	return &pb.GetMeetingResp{
		Meeting: &pb.Meeting{
			Id:           meeting.ID,
			OwnerUserId:  meeting.OwnerUserID,
			Title:        meeting.Title,
			InputKind:    string(meeting.InputKind),
			Status:       string(meeting.Status),
			Result:       makeResultEntityToPb(meeting.Result),
			ErrorMessage: meeting.ErrorMessage,
			CreatedAt:    meeting.CreatedAt.Unix(),
		},
	}, nil
}

func (s *Server) CountMonthlyMeetings(ctx context.Context, req *pb.CountMonthlyMeetingsReq) (*pb.CountMonthlyMeetingsResp, error) {
	count, err := s.usecase.CountMonthlyMeetings(ctx, req.OwnerUserId)
	if err != nil {
		return nil, err
	}

	return &pb.CountMonthlyMeetingsResp{
		Count: int64(count),
	}, nil
}

func makeResultPbToEntity(result *pb.AnalysisResult) *entity.AnalysisResult {
	if result == nil {
		return nil
	}

	items := make([]entity.ActionItem, len(result.ActionItems))
	for i, item := range result.ActionItems {
		items[i] = entity.ActionItem{
			Owner:       item.Owner,
			Description: item.Description,
			DueDate:     item.DueDate,
		}
	}

	return &entity.AnalysisResult{
		Transcript:    result.Transcript,
		SummaryPoints: result.SummaryPoints,
		Decisions:     result.Decisions,
		ActionItems:   items,
	}
}

func makeResultEntityToPb(result *entity.AnalysisResult) *pb.AnalysisResult {
	if result == nil {
		return nil
	}

	items := make([]*pb.ActionItem, len(result.ActionItems))
	for i, item := range result.ActionItems {
		items[i] = &pb.ActionItem{
			Owner:       item.Owner,
			Description: item.Description,
			DueDate:     item.DueDate,
		}
	}

	return &pb.AnalysisResult{
		Transcript:    result.Transcript,
		SummaryPoints: result.SummaryPoints,
		Decisions:     result.Decisions,
		ActionItems:   items,
	}
}
