package meetings

import (
	"context"
	"fmt"

	config "github.com/meetingmind/backend/config/web"
	"github.com/meetingmind/backend/gateways/web/entity"
	pb "github.com/meetingmind/backend/specs/proto/meetings"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Client struct {
	conn *grpc.ClientConn
	pb.MeetingsServiceClient
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
		conn:                  conn,
		MeetingsServiceClient: pb.NewMeetingsServiceClient(conn),
	}, nil
}

func (c *Client) CreateMeeting(ctx context.Context, ownerUserID, title string, kind entity.InputKind) (string, error) {
	req := &pb.CreateMeetingReq{
		Title:     title,
		InputKind: string(kind),
	}
	if ownerUserID != "" {
		req.OwnerUserId = &ownerUserID
	}

	resp, err := c.MeetingsServiceClient.CreateMeeting(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create meeting: %w", err)
	}

	return resp.MeetingId, nil
}

func (c *Client) CompleteMeeting(ctx context.Context, meetingID string, result *entity.AnalysisResult) error {
	items := make([]*pb.ActionItem, len(result.ActionItems))
	for i, item := range result.ActionItems {
		items[i] = &pb.ActionItem{
			Owner:       item.Owner,
			Description: item.Description,
			DueDate:     item.DueDate,
		}
	}

	_, err := c.MeetingsServiceClient.CompleteMeeting(ctx, &pb.CompleteMeetingReq{
		MeetingId: meetingID,
		Result: &pb.AnalysisResult{
			Transcript:    result.Transcript,
			SummaryPoints: result.SummaryPoints,
			Decisions:     result.Decisions,
			ActionItems:   items,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to complete meeting: %w", err)
	}

	return nil
}

func (c *Client) FailMeeting(ctx context.Context, meetingID, message string) error {
	_, err := c.MeetingsServiceClient.FailMeeting(ctx, &pb.FailMeetingReq{
		MeetingId:    meetingID,
		ErrorMessage: message,
	})
	if err != nil {
		return fmt.Errorf("failed to fail meeting: %w", err)
	}

	return nil
}

func (c *Client) CountMonthlyMeetings(ctx context.Context, ownerUserID string) (int, error) {
	resp, err := c.MeetingsServiceClient.CountMonthlyMeetings(ctx, &pb.CountMonthlyMeetingsReq{
		OwnerUserId: ownerUserID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count meetings: %w", err)
	}

	return int(resp.Count), nil
}

func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
