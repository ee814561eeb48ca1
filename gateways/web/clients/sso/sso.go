package sso

import (
	"context"
	"fmt"

	config "github.com/meetingmind/backend/config/web"
	"github.com/meetingmind/backend/gateways/web/entity"
	pb "github.com/meetingmind/backend/specs/proto/sso"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Client struct {
	conn *grpc.ClientConn
	pb.SsoServiceClient
}

func New(cfg *config.ServiceConfig) (*Client, error) {
	address := fmt.Sprintf("%s:%d", cfg.Url, cfg.Port)

	conn, err := grpc.NewClient(
		address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create grpc connection: %w", err)
	}

	return &Client{
		conn:             conn,
		SsoServiceClient: pb.NewSsoServiceClient(conn),
	}, nil
}

// GetProfile adapts the grpc call for the session controller.
func (c *Client) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	resp, err := c.SsoServiceClient.GetProfile(ctx, &pb.GetProfileReq{UserId: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &entity.Profile{
		UserID: resp.Profile.UserId,
		IsPro:  resp.Profile.IsPro,
	}, nil
}

func (c *Client) UpgradeProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	resp, err := c.SsoServiceClient.UpgradeProfile(ctx, &pb.UpgradeProfileReq{UserId: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade profile: %w", err)
	}

	return &entity.Profile{
		UserID: resp.Profile.UserId,
		IsPro:  resp.Profile.IsPro,
	}, nil
}

func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
