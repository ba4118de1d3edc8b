package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

type MessageType string

const (
	MessageTypeIndexProperty  MessageType = "INDEX_PROPERTY"
	MessageTypeDeleteProperty MessageType = "DELETE_PROPERTY"
	MessageTypeRunJob         MessageType = "RUN_JOB"
)

type Message struct {
	Type       MessageType      `json:"type"`
	Property   *domain.Property `json:"property,omitempty"`
	PropertyID string           `json:"property_id,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`

	// Fields for on-demand job runs
	Job         string `json:"job,omitempty"`
	RequestedBy string `json:"requested_by,omitempty"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

// API is the subset of the SQS client the service uses.
type API interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type SQSService struct {
	client        API
	jobQueueURL   string
	indexQueueURL string
}

func NewSQSService(client API, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:        client,
		jobQueueURL:   config.JobQueueURL,
		indexQueueURL: config.IndexQueueURL,
	}
}

func (s *SQSService) JobQueueURL() string {
	return s.jobQueueURL
}

func (s *SQSService) IndexQueueURL() string {
	return s.indexQueueURL
}

func (s *SQSService) SendIndexMessage(ctx context.Context, property *domain.Property) error {
	msg := Message{
		Type:       MessageTypeIndexProperty,
		Property:   property,
		PropertyID: property.ID,
		Timestamp:  time.Now().UTC(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendDeleteMessage(ctx context.Context, propertyID string) error {
	msg := Message{
		Type:       MessageTypeDeleteProperty,
		PropertyID: propertyID,
		Timestamp:  time.Now().UTC(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendJobMessage(ctx context.Context, job, requestedBy string) error {
	msg := Message{
		Type:        MessageTypeRunJob,
		Job:         job,
		RequestedBy: requestedBy,
		Timestamp:   time.Now().UTC(),
	}

	return s.sendMessage(ctx, msg, s.jobQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var messages []ReceivedMessage
	for _, msg := range output.Messages {
		var message Message
		if err := json.Unmarshal([]byte(*msg.Body), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
