package server

import (
	"context"

	config "github.com/meetingmind/backend/config/sso"
	"github.com/meetingmind/backend/services/sso/entity"
	"github.com/meetingmind/backend/services/sso/usecase"
	pb "github.com/meetingmind/backend/specs/proto/sso"
	"google.golang.org/grpc"
)

type Server struct {
	pb.UnimplementedSsoServiceServer

	cfg     *config.Config
	usecase usecase.Usecase
}

func NewServerOptions(cfg *config.Config, usecase usecase.Usecase) *Server {
	return &Server{
		cfg:     cfg,
		usecase: usecase,
	}
}

func (s *Server) NewServer() (*grpc.Server, error) {
	srv := grpc.NewServer()
	pb.RegisterSsoServiceServer(srv, s)

	return srv, nil
}

func (s *Server) Login(ctx context.Context, req *pb.LoginReq) (*pb.LoginResp, error) {
	result, err := s.usecase.Login(ctx, &entity.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return &pb.LoginResp{
		Token: result.Token,
	}, nil
}

func (s *Server) Register(ctx context.Context, req *pb.RegisterReq) (*pb.RegisterResp, error) {
	result, err := s.usecase.Register(ctx, &entity.RegisterRequest{
		Name:            req.Name,
		Surname:         req.Surname,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return nil, err
	}

	return &pb.RegisterResp{
		Token: result.Token,
	}, nil
}

func (s *Server) GetUser(ctx context.Context, req *pb.GetUserReq) (*pb.GetUserResp, error) {
	user, err := s.usecase.GetUser(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	return &pb.GetUserResp{
		User: &pb.User{
			Id:      user.ID,
			Name:    user.Name,
			Surname: user.Surname,
			Email:   user.Email,
		},
	}, nil
}

func (s *Server) GetProfile(ctx context.Context, req *pb.GetProfileReq) (*pb.GetProfileResp, error) {
	profile, err := s.usecase.GetProfile(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	return &pb.GetProfileResp{
		Profile: &pb.Profile{
			UserId: profile.UserID,
			IsPro:  profile.IsPro,
		},
	}, nil
}

func (s *Server) UpgradeProfile(ctx context.Context, req *pb.UpgradeProfileReq) (*pb.UpgradeProfileResp, error) {
	profile, err := s.usecase.UpgradeProfile(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	return &pb.UpgradeProfileResp{
		Profile: &pb.Profile{
			UserId: profile.UserID,
			IsPro:  profile.IsPro,
		},
	}, nil
}
