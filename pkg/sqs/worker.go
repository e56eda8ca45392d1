package sqs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"auth-api/pkg/log"
)

// HandlerFunc defines a function that handles a SQS message
type HandlerFunc func(msg types.Message) error

// HandleMessage implements the Handler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(msg types.Message) error {
	return f(msg)
}

// Handler defines an interface that processes a SQS message
type Handler interface {
	HandleMessage(msg types.Message) error
}

// WorkerConfig defines the configuration options for a Worker
type WorkerConfig struct {
	MaxNumberOfMessages int32
	WaitTimeSeconds     int32
	PoolSize            int
}

// HealthStatus represents the health status of a worker
type HealthStatus string

const (
	// StatusUp indicates the worker is polling successfully
	StatusUp HealthStatus = "UP"
	// StatusDown indicates the worker's last poll failed
	StatusDown HealthStatus = "DOWN"
)

// WorkerHealth is the health snapshot of a worker
type WorkerHealth struct {
	Status  HealthStatus
	Details map[string]string
}

// Worker polls and processes messages from a SQS queue
type Worker struct {
	sqsClient           Client
	queueName           string
	queueURL            string
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	poolSize            int
	handler             Handler

	pollers      sync.WaitGroup
	processed    atomic.Int64
	failed       atomic.Int64
	lastPollErr  atomic.Value // string
	lastPollTime atomic.Int64 // unix seconds
}

// NewWorker creates and returns a new Worker.
//
// Defaults when the config is nil or a field is zero:
//   - MaxNumberOfMessages: 10
//   - WaitTimeSeconds: 20
//   - PoolSize: 1
//
// MaxNumberOfMessages must be between 1 and 10, WaitTimeSeconds between
// 1 and 20, and PoolSize positive.
func NewWorker(ctx context.Context, sqsClient Client, queueName string, handler Handler, config *WorkerConfig) (*Worker, error) {
	var maxMessages int32 = 10
	var waitTime int32 = 20
	poolSize := 1

	if config != nil {
		if config.MaxNumberOfMessages != 0 {
			maxMessages = config.MaxNumberOfMessages
		}
		if config.WaitTimeSeconds != 0 {
			waitTime = config.WaitTimeSeconds
		}
		if config.PoolSize != 0 {
			poolSize = config.PoolSize
		}
	}

	if maxMessages < 1 || maxMessages > 10 {
		return nil, errors.New("maxNumberOfMessages must be between 1 and 10")
	}
	if waitTime < 1 || waitTime > 20 {
		return nil, errors.New("waitTimeSeconds must be between 1 and 20")
	}
	if poolSize < 1 {
		return nil, errors.New("poolSize must be greater than 0")
	}

	result, err := sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to get queue URL: %w", err)
	}

	w := &Worker{
		sqsClient:           sqsClient,
		queueName:           queueName,
		queueURL:            *result.QueueUrl,
		maxNumberOfMessages: maxMessages,
		waitTimeSeconds:     waitTime,
		poolSize:            poolSize,
		handler:             handler,
	}
	w.lastPollErr.Store("")
	return w, nil
}

// Start begins polling messages and processing them concurrently. It spawns
// PoolSize pollers and returns immediately; the pollers run until the
// context is canceled. Wait blocks until they have all exited.
func (w *Worker) Start(ctx context.Context) {
	for i := 0; i < w.poolSize; i++ {
		w.pollers.Add(1)
		go func() {
			defer w.pollers.Done()
			w.pollMessages(ctx)
		}()
	}
}

// Wait blocks until every poller started by Start has exited.
func (w *Worker) Wait() {
	w.pollers.Wait()
}

func (w *Worker) pollMessages(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			output, err := w.sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
				QueueUrl:            &w.queueURL,
				MaxNumberOfMessages: w.maxNumberOfMessages,
				WaitTimeSeconds:     w.waitTimeSeconds,
			})
			w.lastPollTime.Store(time.Now().Unix())
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				w.lastPollErr.Store(err.Error())
				log.Errorf("failed to receive messages from %s: %v", w.queueName, err)
				continue
			}
			w.lastPollErr.Store("")

			for _, msg := range output.Messages {
				go w.handleMessage(ctx, msg)
			}
		}
	}
}

func (w *Worker) handleMessage(ctx context.Context, msg types.Message) {
	if err := w.handler.HandleMessage(msg); err != nil {
		w.failed.Add(1)
		log.Errorf("error processing message ID %s: %v", safeMessageID(msg), err)
		return
	}

	_, err := w.sqsClient.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      &w.queueURL,
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		w.failed.Add(1)
		log.Errorf("failed to delete message ID %s: %v", safeMessageID(msg), err)
		return
	}
	w.processed.Add(1)
}

// HealthCheck reports the worker's polling health and counters.
func (w *Worker) HealthCheck() WorkerHealth {
	lastErr, _ := w.lastPollErr.Load().(string)

	status := StatusUp
	if lastErr != "" {
		status = StatusDown
	}

	details := map[string]string{
		"queue":     w.queueName,
		"pool_size": strconv.Itoa(w.poolSize),
		"processed": strconv.FormatInt(w.processed.Load(), 10),
		"failed":    strconv.FormatInt(w.failed.Load(), 10),
	}
	if lastErr != "" {
		details["last_error"] = lastErr
	}
	if lastPoll := w.lastPollTime.Load(); lastPoll > 0 {
		details["last_poll"] = time.Unix(lastPoll, 0).UTC().Format(time.RFC3339)
	}

	return WorkerHealth{Status: status, Details: details}
}

func safeMessageID(msg types.Message) string {
	if msg.MessageId == nil {
		return ""
	}
	return *msg.MessageId
}
