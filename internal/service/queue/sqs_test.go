package queue

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

type fakeSQS struct {
	sent     []*sqs.SendMessageInput
	received []types.Message
	deleted  []*sqs.DeleteMessageInput
}

func (f *fakeSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.sent = append(f.sent, params)
	return &sqs.SendMessageOutput{}, nil
}

func (f *fakeSQS) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	return &sqs.ReceiveMessageOutput{Messages: f.received}, nil
}

func (f *fakeSQS) DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.deleted = append(f.deleted, params)
	return &sqs.DeleteMessageOutput{}, nil
}

func newTestService(client *fakeSQS) *SQSService {
	return NewSQSService(client, &config.SQSConfig{JobQueueURL: "https://sqs/jobs", IndexQueueURL: "https://sqs/index"})
}

func TestSQSService_RoutesMessagesToQueues(t *testing.T) {
	// Arrange
	client := &fakeSQS{}
	service := newTestService(client)

	// Act
	require.NoError(t, service.SendJobMessage(context.Background(), "sweep", "admin-1"))
	require.NoError(t, service.SendIndexMessage(context.Background(), &domain.Property{ID: "p-1", City: "Pune"}))
	require.NoError(t, service.SendDeleteMessage(context.Background(), "p-2"))

	// Assert
	require.Len(t, client.sent, 3)
	assert.Equal(t, "https://sqs/jobs", aws.ToString(client.sent[0].QueueUrl))
	assert.Equal(t, "https://sqs/index", aws.ToString(client.sent[1].QueueUrl))
	assert.Equal(t, "https://sqs/index", aws.ToString(client.sent[2].QueueUrl))

	var job Message
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(client.sent[0].MessageBody)), &job))
	assert.Equal(t, MessageTypeRunJob, job.Type)
	assert.Equal(t, "sweep", job.Job)
	assert.Equal(t, "admin-1", job.RequestedBy)

	var index Message
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(client.sent[1].MessageBody)), &index))
	assert.Equal(t, MessageTypeIndexProperty, index.Type)
	assert.Equal(t, "p-1", index.PropertyID)
	assert.Equal(t, "Pune", index.Property.City)
}

func TestSQSService_ReceiveMessages(t *testing.T) {
	// Arrange
	client := &fakeSQS{received: []types.Message{
		{Body: aws.String(`{"type":"DELETE_PROPERTY","property_id":"p-9"}`), ReceiptHandle: aws.String("rh-1")},
	}}
	service := newTestService(client)

	// Act
	messages, err := service.ReceiveMessages(context.Background(), service.IndexQueueURL(), 10, 0)

	// Assert
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, MessageTypeDeleteProperty, messages[0].Message.Type)
	assert.Equal(t, "p-9", messages[0].Message.PropertyID)
	assert.Equal(t, "rh-1", aws.ToString(messages[0].ReceiptHandle))
}

func TestSQSService_ReceiveRejectsMalformedBody(t *testing.T) {
	client := &fakeSQS{received: []types.Message{{Body: aws.String("not json"), ReceiptHandle: aws.String("rh")}}}

	_, err := newTestService(client).ReceiveMessages(context.Background(), "https://sqs/jobs", 10, 0)

	assert.Error(t, err)
}
