package messagestream

import (
	stderrors "errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

var ErrPublisherUnavailable = stderrors.New("message publisher unavailable")

type nopPublisher struct {
	logger watermill.LoggerAdapter
}

// NewNopPublisher stands in when the broker is down at startup. Every
// publish is dropped and reported as ErrPublisherUnavailable.
func NewNopPublisher(logger watermill.LoggerAdapter) message.Publisher {
	return &nopPublisher{logger: logger}
}

func (p *nopPublisher) Publish(topic string, messages ...*message.Message) error {
	p.logger.Error("dropping messages", ErrPublisherUnavailable, watermill.LogFields{
		"topic":    topic,
		"messages": len(messages),
	})
	return ErrPublisherUnavailable
}

func (p *nopPublisher) Close() error {
	return nil
}
