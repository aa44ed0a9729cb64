package publishers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/samvad-hq/dogceo-go/internal/domain"
)

type fakeSQSClient struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-123")}, nil
}

func TestSQSPublisherSendSuccess(t *testing.T) {
	client := &fakeSQSClient{}
	pub := &sqsPublisher{id: "q", queueURL: "https://example.com/queue", client: client, log: noopLogger{}}

	err := pub.Publish(context.Background(), NewEvent(domain.Image{ID: "i1", TargetID: "hounds", Breed: "hound"}))
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://example.com/queue" {
		t.Fatalf("QueueUrl = %s", got)
	}
	attr, ok := client.input.MessageAttributes["target_id"]
	if !ok || aws.ToString(attr.StringValue) != "hounds" || aws.ToString(attr.DataType) != "String" {
		t.Fatalf("target_id attribute missing or wrong: %#v", attr)
	}
	if _, ok := client.input.MessageAttributes["sub_breed"]; ok {
		t.Fatalf("empty sub_breed should not be sent as attribute")
	}
	if !strings.Contains(aws.ToString(client.input.MessageBody), `"target_id":"hounds"`) {
		t.Fatalf("MessageBody missing target_id: %s", aws.ToString(client.input.MessageBody))
	}
}

func TestSQSPublisherSendError(t *testing.T) {
	client := &fakeSQSClient{err: errors.New("boom")}
	pub := &sqsPublisher{id: "q", queueURL: "https://example.com/queue", client: client, log: noopLogger{}}

	if err := pub.Publish(context.Background(), Event{TargetID: "t"}); err == nil {
		t.Fatalf("expected error from Publish")
	}
}
