// Package camundatest provides an in-memory zeebe job client for handler tests.
package camundatest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/camunda/zeebe/clients/go/v8/pkg/commands"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"google.golang.org/grpc"
)

// Gateway records the job commands sent through it. Commands sent on a done context
// are rejected with the context error, as a real gateway call would be. Unimplemented
// gateway calls panic.
type Gateway struct {
	pb.GatewayClient

	mu        sync.Mutex
	Completed []*pb.CompleteJobRequest
	Failed    []*pb.FailJobRequest
	Thrown    []*pb.ThrowErrorRequest

	// CompleteErr, when set, is returned by CompleteJob.
	CompleteErr error
}

func (g *Gateway) CompleteJob(ctx context.Context, in *pb.CompleteJobRequest, _ ...grpc.CallOption) (*pb.CompleteJobResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.CompleteErr != nil {
		return nil, g.CompleteErr
	}
	g.Completed = append(g.Completed, in)
	return &pb.CompleteJobResponse{}, nil
}

func (g *Gateway) FailJob(ctx context.Context, in *pb.FailJobRequest, _ ...grpc.CallOption) (*pb.FailJobResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Failed = append(g.Failed, in)
	return &pb.FailJobResponse{}, nil
}

func (g *Gateway) ThrowError(ctx context.Context, in *pb.ThrowErrorRequest, _ ...grpc.CallOption) (*pb.ThrowErrorResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Thrown = append(g.Thrown, in)
	return &pb.ThrowErrorResponse{}, nil
}

// JobClient implements worker.JobClient on top of a Gateway.
type JobClient struct {
	Gateway *Gateway
}

// NewJobClient returns a JobClient with an empty recording gateway.
func NewJobClient() *JobClient {
	return &JobClient{Gateway: &Gateway{}}
}

func noRetry(context.Context, error) bool { return false }

func (c *JobClient) NewCompleteJobCommand() commands.CompleteJobCommandStep1 {
	return commands.NewCompleteJobCommand(c.Gateway, noRetry)
}

func (c *JobClient) NewFailJobCommand() commands.FailJobCommandStep1 {
	return commands.NewFailJobCommand(c.Gateway, noRetry)
}

func (c *JobClient) NewThrowErrorCommand() commands.ThrowErrorCommandStep1 {
	return commands.NewThrowErrorCommand(c.Gateway, noRetry)
}

// CompletedVariables decodes the variables of the i-th completed job.
func (c *JobClient) CompletedVariables(i int) (map[string]interface{}, error) {
	c.Gateway.mu.Lock()
	raw := c.Gateway.Completed[i].Variables
	c.Gateway.mu.Unlock()

	var vars map[string]interface{}
	err := json.Unmarshal([]byte(raw), &vars)
	return vars, err
}

// NewJob builds an activated job carrying variables encoded as JSON.
func NewJob(key int64, taskType string, retries int32, variables interface{}) entities.Job {
	raw := "{}"
	switch v := variables.(type) {
	case string:
		raw = v
	case nil:
	default:
		if b, err := json.Marshal(v); err == nil {
			raw = string(b)
		}
	}
	return entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key:                key,
		Type:               taskType,
		Retries:            retries,
		ProcessInstanceKey: key * 10,
		Variables:          raw,
	}}
}
