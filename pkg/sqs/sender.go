package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// BatchMessage represents a message to be sent in batch
type BatchMessage struct {
	MessageID string `json:"messageId"`
	Body      any    `json:"body"`
}

// BatchResult represents the result of a batch send operation
type BatchResult struct {
	Successful []string `json:"successful"`
	Failed     []string `json:"failed"`
}

// SQSClient defines the interface for SQS operations
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	SendMessageBatch(ctx context.Context, params *sqs.SendMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error)
}

// Sender handles sending messages to SQS queues
type Sender struct {
	sqsClient SQSClient

	mu        sync.Mutex
	queueURLs map[string]string
}

// NewSender creates and returns a new Sender
func NewSender(sqsClient SQSClient) *Sender {
	return &Sender{
		sqsClient: sqsClient,
		queueURLs: make(map[string]string),
	}
}

// SendMessage serializes the provided body to JSON and sends it to the specified queue
func (s *Sender) SendMessage(queueName string, body any) error {
	ctx := context.Background()

	queueURL, err := s.getQueueURL(ctx, queueName)
	if err != nil {
		return fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	messageBody := string(jsonBody)
	_, err = s.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &queueURL,
		MessageBody: &messageBody,
	})
	if err != nil {
		return fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}

	return nil
}

// SendMessageBatch sends the messages in chunks of 10 (the SQS batch limit).
// Returns a BatchResult with successful and failed message IDs.
func (s *Sender) SendMessageBatch(queueName string, messages []BatchMessage) (*BatchResult, error) {
	result := &BatchResult{
		Successful: []string{},
		Failed:     []string{},
	}

	if len(messages) == 0 {
		return result, nil
	}

	ctx := context.Background()

	queueURL, err := s.getQueueURL(ctx, queueName)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	for start := 0; start < len(messages); start += 10 {
		end := start + 10
		if end > len(messages) {
			end = len(messages)
		}
		chunk := messages[start:end]

		entries := make([]types.SendMessageBatchRequestEntry, 0, len(chunk))
		for _, msg := range chunk {
			jsonBody, err := json.Marshal(msg.Body)
			if err != nil {
				result.Failed = append(result.Failed, msg.MessageID)
				continue
			}
			body := string(jsonBody)
			id := msg.MessageID
			entries = append(entries, types.SendMessageBatchRequestEntry{
				Id:          &id,
				MessageBody: &body,
			})
		}

		if len(entries) == 0 {
			continue
		}

		output, err := s.sqsClient.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
			QueueUrl: &queueURL,
			Entries:  entries,
		})
		if err != nil {
			for _, entry := range entries {
				result.Failed = append(result.Failed, *entry.Id)
			}
			continue
		}

		for _, ok := range output.Successful {
			result.Successful = append(result.Successful, *ok.Id)
		}
		for _, failed := range output.Failed {
			result.Failed = append(result.Failed, *failed.Id)
		}
	}

	return result, nil
}

// getQueueURL resolves and memoizes the queue URL for a queue name.
func (s *Sender) getQueueURL(ctx context.Context, queueName string) (string, error) {
	s.mu.Lock()
	if url, ok := s.queueURLs[queueName]; ok {
		s.mu.Unlock()
		return url, nil
	}
	s.mu.Unlock()

	output, err := s.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.queueURLs[queueName] = *output.QueueUrl
	s.mu.Unlock()

	return *output.QueueUrl, nil
}
